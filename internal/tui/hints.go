package tui

import (
	"github.com/planterm/planterm/internal/tui/theme"
)

// Standard key representations for consistent hints across the wizard.
const (
	KeyUpDown = "↑/↓"
	KeyArrows = "←/→"
	KeyEnter  = "enter"
	KeyTab    = "tab"
	KeyCtrlC  = "ctrl+c"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "submit") -> "enter submit"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs,
// separated by bullet points.
// Example: RenderHintBar("↑/↓", "move", "enter", "select")
// Returns: "↑/↓ move . enter select"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string

	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + s.HintSeparator.Render(".") + " "
		}

		result += s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
	}

	return result
}

// Common hint bar presets for consistency.

// HintTextPrompt returns hints for the single-line answer field.
// "enter submit"
func HintTextPrompt() string {
	return RenderHint(KeyEnter, "submit")
}

// HintSelectPrompt returns hints for the choice list.
// "type filter . ↑/↓ move . enter select"
func HintSelectPrompt() string {
	return RenderHintBar("type", "filter", KeyUpDown, "move", KeyEnter, "select")
}
