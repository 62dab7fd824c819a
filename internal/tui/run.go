package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/planterm/planterm/internal/logger"
	"github.com/planterm/planterm/internal/plan"
)

// Options configure a wizard run.
type Options struct {
	// DataDir is where UI preferences persist between runs.
	DataDir string
}

// Run executes the wizard for a loaded plan and blocks until the user
// confirms or cancels. It refuses to start without an interactive
// terminal on both ends, since the screen takes over the terminal and
// answers arrive by key press.
func Run(def *plan.Definition, opts Options) (Result, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return Result{}, fmt.Errorf("wizard %q requires an interactive terminal", def.Title)
	}

	// Match styling to what the terminal can actually display.
	lipgloss.Writer.Profile = colorprofile.Detect(os.Stdout, os.Environ())

	app, err := NewApp(def, opts.DataDir)
	if err != nil {
		return Result{}, err
	}

	logger.Info("starting wizard %q (%d prompts)", def.Title, def.PromptCount())

	p := tea.NewProgram(app)
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("wizard failed: %w", err)
	}

	final, ok := finalModel.(*App)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", finalModel)
	}
	return final.Result(), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
