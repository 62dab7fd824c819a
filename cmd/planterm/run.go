package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planterm/planterm/internal/config"
	"github.com/planterm/planterm/internal/logger"
	"github.com/planterm/planterm/internal/output"
	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui"
	"github.com/planterm/planterm/internal/tui/theme"
)

var runFlags struct {
	output  string
	save    bool
	copy    bool
	dataDir string
}

var runCmd = &cobra.Command{
	Use:   "run <plan.yaml>",
	Short: "Run a wizard and emit the collected values",
	Long: `Run the wizard described by a plan file.

The wizard takes over the terminal until every prompt is answered and
the completion dialog confirms. The collected values are then written
to stdout in the configured output format; nothing is emitted when the
wizard is cancelled.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "", "Output format: yaml or json (default: from config)")
	runCmd.Flags().BoolVar(&runFlags.save, "save", false, "Also save values to <save_dir>/<plan-title>.<ext>")
	runCmd.Flags().BoolVar(&runFlags.copy, "copy", false, "Copy the emitted values to the clipboard")
	runCmd.Flags().StringVar(&runFlags.dataDir, "data-dir", "", "Data directory for UI state (default: from config)")
}

// loadConfig loads and validates configuration, applies the configured
// theme, and raises the logger level when one is set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	theme.SetCurrent(th)

	if cfg.LogLevel != "" {
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			logger.Default.SetLevel(level)
		}
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Output
	if runFlags.output != "" {
		format = runFlags.output
	}
	if format != output.FormatYAML && format != output.FormatJSON {
		return fmt.Errorf("invalid output format %q (want yaml or json)", format)
	}

	dataDir := cfg.DataDir
	if runFlags.dataDir != "" {
		dataDir = runFlags.dataDir
	}

	def, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	res, err := tui.Run(def, tui.Options{DataDir: dataDir})
	if err != nil {
		return err
	}

	if res.Cancelled {
		fmt.Fprintln(os.Stderr, "wizard cancelled")
		_ = logger.Close()
		os.Exit(res.Code)
	}

	data, err := output.Render(res.Values, format)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}

	if runFlags.save {
		path := output.SavePath(cfg.SaveDir, def.Title, format)
		if err := output.Write(path, data); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved to %s\n", path)
	}

	if runFlags.copy {
		if err := output.CopyToClipboard(data); err != nil {
			// Emission already succeeded; a missing clipboard helper
			// should not fail the run.
			logger.Warn("failed to copy values to clipboard: %v", err)
			fmt.Fprintf(os.Stderr, "warning: could not copy to clipboard: %v\n", err)
		}
	}

	return nil
}
