package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui"
)

var validateFlags struct {
	print bool
}

var validateCmd = &cobra.Command{
	Use:   "validate <plan.yaml>",
	Short: "Check a plan without running it",
	Long: `Check a plan without running it.

validate loads the plan and dry-builds the full wizard screen, so it
catches everything run would reject: YAML problems, duplicate sections
or prompts, a missing terminal section, and malformed or unknown
completion-dialog options.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateFlags.print, "print", false, "Print the normalized plan after validation")
}

// validatePlan loads a plan and dry-builds the wizard screen from it,
// surfacing every construction-time error run would hit.
func validatePlan(path string) (*plan.Definition, error) {
	def, err := plan.Load(path)
	if err != nil {
		return nil, err
	}
	if _, err := tui.NewApp(def, ""); err != nil {
		return nil, err
	}
	return def, nil
}

func planSummary(def *plan.Definition) string {
	return fmt.Sprintf("plan OK: %q, %d sections, %d prompts", def.Title, len(def.Sections), def.PromptCount())
}

func runValidate(cmd *cobra.Command, args []string) error {
	def, err := validatePlan(args[0])
	if err != nil {
		return err
	}

	fmt.Println(planSummary(def))

	if validateFlags.print {
		data, err := def.Marshal()
		if err != nil {
			return err
		}
		out := string(data)
		if isatty.IsTerminal(os.Stdout.Fd()) {
			out = highlightYAML(out)
		}
		fmt.Print(out)
	}
	return nil
}
