package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hdlman/hdlman/pkg/version"
)

var rootCmd = newRootCmd()

// newRootCmd builds the complete command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hdlman",
		Short: "Generate HDL projects for FPGA toolchains",
		Long: `hdlman creates ready-to-build HDL projects for open FPGA toolchains.

A project contains a Verilog topfile, a yosys synthesis script, a Makefile
driving synthesis, place-and-route, bitstream packing and programming, and
the pin constraints of the chosen dev-board.`,
		Version:           version.GetVersion(),
		SilenceErrors:     true,
		PersistentPreRunE: configureLogging,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("hdlman %s\n", version.GetFullVersion()))

	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newTargetsHelpCmd())
	cmd.AddCommand(newDevBoardsHelpCmd())
	return cmd
}

// Execute initializes dependencies and runs the root command. Errors are
// printed to stderr as a styled line.
func Execute() error {
	if err := InitDependencies(); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
		return err
	}
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
		return err
	}
	return nil
}

// configureLogging applies --verbose to the shared log level.
func configureLogging(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if getBoolFlag(cmd, "verbose") {
		deps.LogLevel.Set(slog.LevelDebug)
	}
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
