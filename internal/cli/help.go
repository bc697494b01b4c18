package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/hdlman/hdlman/internal/hardware"
	"github.com/hdlman/hdlman/internal/ui"
)

func newTargetsHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets-help",
		Short: "List the supported target FPGAs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printEntities(cmd.OutOrStdout(), "Supported targets", hardware.SupportedTargets())
		},
	}
}

func newDevBoardsHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dev-boards-help",
		Short: "List the supported dev-boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printEntities(cmd.OutOrStdout(), "Supported dev-boards", hardware.SupportedDevBoards())
		},
	}
}

// printEntities writes the listing as rendered markdown on a terminal and
// as plain aligned text otherwise.
func printEntities(w io.Writer, title string, entities []hardware.SupportedEntity) error {
	if f, ok := w.(*os.File); ok && ui.IsTerminal(f) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			return fmt.Errorf("create markdown renderer: %w", err)
		}
		rendered, err := r.Render(entitiesMarkdown(title, entities))
		if err != nil {
			return fmt.Errorf("render %s: %w", strings.ToLower(title), err)
		}
		_, err = io.WriteString(w, rendered)
		return err
	}
	_, err := io.WriteString(w, entitiesText(title, entities))
	return err
}

// entitiesMarkdown lists entities as a markdown document.
func entitiesMarkdown(title string, entities []hardware.SupportedEntity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, e := range entities {
		desc, rest, _ := strings.Cut(e.Description, "\n")
		fmt.Fprintf(&b, "- **%s**: %s", e.Name, desc)
		if rest != "" {
			fmt.Fprintf(&b, " <%s>", rest)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// entitiesText lists entities with descriptions in an indented column.
func entitiesText(title string, entities []hardware.SupportedEntity) string {
	width := 0
	for _, e := range entities {
		width = max(width, len(e.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	for _, e := range entities {
		lines := strings.Split(e.Description, "\n")
		fmt.Fprintf(&b, "  %-*s  %s\n", width, e.Name, lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(&b, "  %*s  %s\n", width, "", l)
		}
	}
	return b.String()
}

// firstLine returns s up to the first newline.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
