package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <plan.yaml>",
	Short: "Edit a plan in your editor, then re-validate it",
	Long: `Open a plan in the editor named by $VISUAL or $EDITOR, then re-validate
it the way the validate command does once the editor exits.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("plan not found: %s", path)
	}

	ed, err := editor.Command("planterm", path)
	if err != nil {
		return fmt.Errorf("no editor available: %w", err)
	}
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	def, err := validatePlan(path)
	if err != nil {
		return err
	}
	fmt.Println(planSummary(def))
	return nil
}
