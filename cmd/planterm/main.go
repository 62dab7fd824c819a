package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/planterm/planterm/internal/logger"
	"github.com/planterm/planterm/internal/tui/theme"
)

const (
	logoText1 = "█▀█ █   ▄▀█ █▄ █ ▀█▀ █▀▀ █▀█ █▄ ▄█"
	logoText2 = "█▀▀ █▄▄ █▀█ █ ▀█  █  ██▄ █▀▄ █ ▀ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planterm",
	Short: "Interactive terminal wizards from declarative YAML plans",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

planterm runs interactive, multi-step terminal wizards from declarative
YAML plan definitions. A plan names its sections and their prompts;
planterm compiles it into a full-screen TUI with section tabs, a
collapsible details panel, and a completion dialog, then emits the
collected values as YAML or JSON.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./planterm.yml
Global config: ~/.config/planterm/planterm.yml`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(setupCmd)
}
