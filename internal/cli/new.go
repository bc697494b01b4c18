package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hdlman/hdlman/internal/cli/wizard"
	"github.com/hdlman/hdlman/internal/config"
	"github.com/hdlman/hdlman/internal/core/project"
	"github.com/hdlman/hdlman/internal/hardware"
	"github.com/hdlman/hdlman/internal/ui"
	"github.com/hdlman/hdlman/pkg/version"
)

// runWizard is replaced in tests.
var runWizard = wizard.Run

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new HDL project",
		Long: `Create a new HDL project directory for a target FPGA and, optionally,
a dev-board.

The target and dev-board fall back to the defaults in ~/.hdlman.yaml
(keys default-target and default-dev-board). When the project name or
target is still missing and stdin is a terminal, hdlman asks for them.

Examples:
  hdlman new -n blinky -t ecp5-85k -d ulx3s
  hdlman new --name blinky --target ecp5-85k`,
		Args:    cobra.NoArgs,
		PreRunE: validateNewFlags,
		RunE:    runNew,
	}

	cmd.Flags().StringP("name", "n", "", "Project name, also the directory created")
	cmd.Flags().StringP("target", "t", "", "Target FPGA (see targets-help)")
	cmd.Flags().StringP("dev-board", "d", "", "Dev-board carrying the target (see dev-boards-help)")
	cmd.Flags().String("root", "", "Parent directory of the project (default: current directory)")

	_ = cmd.RegisterFlagCompletionFunc("target", completeEntities(hardware.SupportedTargets))
	_ = cmd.RegisterFlagCompletionFunc("dev-board", completeEntities(hardware.SupportedDevBoards))
	_ = cmd.MarkFlagDirname("root")

	return cmd
}

// completeEntities offers catalog identifiers with the first description
// line as the completion hint.
func completeEntities(list func() []hardware.SupportedEntity) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		entities := list()
		out := make([]cobra.Completion, len(entities))
		for i, e := range entities {
			out[i] = cobra.CompletionWithDesc(e.Name, firstLine(e.Description))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// validateNewFlags rejects unknown identifiers before anything is resolved.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	if raw := getStringFlag(cmd, "target"); raw != "" {
		if _, err := hardware.ParseTarget(raw); err != nil {
			return fmt.Errorf("invalid --target value: %w (see 'hdlman targets-help')", err)
		}
	}
	if raw := getStringFlag(cmd, "dev-board"); raw != "" {
		if _, err := hardware.ParseDevBoard(raw); err != nil {
			return fmt.Errorf("invalid --dev-board value: %w (see 'hdlman dev-boards-help')", err)
		}
	}
	if name := getStringFlag(cmd, "name"); name != "" {
		if err := project.ValidateName(project.NormalizeName(name)); err != nil {
			return fmt.Errorf("invalid --name value: %w", err)
		}
	}
	return nil
}

// selection is the resolved input of the new command and where each part
// came from.
type selection struct {
	name     string
	target   hardware.Target
	devBoard hardware.DevBoard
	notices  []string
}

// resolveSelection combines flags with config defaults. Flags win.
func resolveSelection(cmd *cobra.Command, cfg *config.Config) selection {
	sel := selection{name: getStringFlag(cmd, "name")}

	// Flags were checked in validateNewFlags.
	sel.target, _ = hardware.ParseTarget(getStringFlag(cmd, "target"))
	if raw := getStringFlag(cmd, "dev-board"); raw != "" {
		sel.devBoard, _ = hardware.ParseDevBoard(raw)
	}

	if !cfg.HasDefaults() {
		return sel
	}
	if !sel.target.Valid() && cfg.DefaultTarget.Valid() {
		sel.target = cfg.DefaultTarget
		sel.notices = append(sel.notices, fmt.Sprintf("Using default target '%s' from %s", sel.target, cfg.TargetSource))
	}
	if !sel.devBoard.Valid() && cfg.DefaultDevBoard.Valid() {
		sel.devBoard = cfg.DefaultDevBoard
		sel.notices = append(sel.notices, fmt.Sprintf("Using default dev-board '%s' from %s", sel.devBoard, cfg.DevBoardSource))
	}
	return sel
}

// complete asks for whatever the selection still lacks. It returns
// wizard.ErrCancelled when the user aborts.
func (sel *selection) complete(headless bool) error {
	if sel.name != "" && sel.target.Valid() {
		return nil
	}
	if headless {
		if sel.name == "" {
			return errors.New(`required flag "name" not set`)
		}
		return errors.New(`required flag "target" not set and no default-target configured`)
	}

	known := wizard.WizardResult{ProjectName: sel.name}
	if sel.target.Valid() {
		known.Target = sel.target.String()
	}
	if sel.devBoard.Valid() {
		known.DevBoard = sel.devBoard.String()
	}

	answers, err := runWizard(wizard.Questions(known))
	if err != nil {
		return err
	}

	if answers.ProjectName != "" {
		sel.name = answers.ProjectName
	}
	if answers.Target != "" {
		t, err := hardware.ParseTarget(answers.Target)
		if err != nil {
			return err
		}
		sel.target = t
	}
	if answers.DevBoard != "" {
		b, err := hardware.ParseDevBoard(answers.DevBoard)
		if err != nil {
			return err
		}
		sel.devBoard = b
	}
	return nil
}

// runNew resolves the selection and creates the project.
func runNew(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()

	sel := resolveSelection(cmd, deps.loadConfig())
	if err := sel.complete(deps.Headless.IsHeadless()); err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderWarning("Project creation cancelled."))
			return nil
		}
		return err
	}
	cmd.SilenceUsage = true

	for _, n := range sel.notices {
		_, _ = fmt.Fprintln(out, cliMuted.Render(n))
	}

	var opts []project.Option
	finish := func() {}
	if !deps.Headless.IsHeadless() {
		bar := ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr(), project.CreateSteps)
		opts = append(opts, project.WithProgress(bar.Advance))
		finish = bar.Done
	}
	m := project.NewMaterializer(deps.Registry, deps.Deployer, version.GetVersion(), deps.Logger, opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := m.Create(ctx, project.Spec{
		Name:     sel.name,
		Root:     getStringFlag(cmd, "root"),
		Target:   sel.target,
		DevBoard: sel.devBoard,
	})
	finish()
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard(successMessage(filepath.Base(result.Dir), sel), renderKeyValueLines([]kvPair{
		{"Directory", result.Dir},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		{"Next", cliPrimary.Render(fmt.Sprintf("cd %s && make", result.Dir))},
	})))
	return nil
}

// successMessage names the project and the hardware it was created for.
func successMessage(name string, sel selection) string {
	msg := fmt.Sprintf("Created new HDL project '%s' with target '%s'", name, sel.target)
	if sel.devBoard.Valid() {
		msg += fmt.Sprintf(" and dev-board '%s'", sel.devBoard)
	}
	return msg
}
