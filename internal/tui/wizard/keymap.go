package wizard

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// ActionKeyMap binds keys for moving focus along a dialog's action row.
// The arrow keys are directional and stop at the row's edges; tab and
// shift+tab cycle and wrap around them.
type ActionKeyMap struct {
	Advance  key.Binding
	Retreat  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// DefaultActionKeyMap returns the standard dialog bindings.
func DefaultActionKeyMap() ActionKeyMap {
	return ActionKeyMap{
		Advance: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next action"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous action"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle forward"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "cycle back"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "activate"),
		),
	}
}

// Route applies a key press to the focus cycle and reports whether the
// focused action should be activated. Arrow moves past an edge fall
// through as no-ops rather than wrapping.
func (m ActionKeyMap) Route(msg tea.KeyPressMsg, cycle *FocusCycle) (activate bool) {
	switch {
	case key.Matches(msg, m.Advance):
		cycle.Advance()
	case key.Matches(msg, m.Retreat):
		cycle.Retreat()
	case key.Matches(msg, m.Next):
		cycle.Next()
	case key.Matches(msg, m.Prev):
		cycle.Prev()
	case key.Matches(msg, m.Activate):
		return true
	}
	return false
}
