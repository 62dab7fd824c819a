package wizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Action is one activatable button on the completion dialog. Actions
// carry no text cursor; the dialog suppresses it while they render.
type Action struct {
	// Kind is the registered action kind this button was built from.
	Kind string

	// Label is the button text.
	Label string

	// Invoke runs the action's effect. It returns the command the host
	// should execute, or nil when the effect is purely internal.
	Invoke func() tea.Cmd
}

// Builder constructs an action of one kind. A non-empty label
// overrides the kind's default button text.
type Builder func(label string, deps Deps) *Action

// ActionFactory maps action kinds to builders. Dispatch is a plain map
// lookup; every kind a plan may name must be registered before the
// layout is constructed.
type ActionFactory struct {
	builders map[string]Builder
}

// NewActionFactory returns a factory with the built-in yes and back
// actions registered.
func NewActionFactory() *ActionFactory {
	f := &ActionFactory{builders: make(map[string]Builder)}
	f.Register(ActionYes, buildYes)
	f.Register(ActionBack, buildBack)
	return f
}

// Built-in action kinds.
const (
	ActionYes  = "yes"
	ActionBack = "back"
)

// Register adds or replaces the builder for a kind.
func (f *ActionFactory) Register(kind string, b Builder) {
	f.builders[kind] = b
}

// Kinds returns the registered kinds in no particular order.
func (f *ActionFactory) Kinds() []string {
	kinds := make([]string, 0, len(f.builders))
	for kind := range f.builders {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Create builds the action registered under kind, or fails naming the
// unrecognized kind.
func (f *ActionFactory) Create(kind, label string, deps Deps) (*Action, error) {
	b, ok := f.builders[kind]
	if !ok {
		return nil, fmt.Errorf("action %q: %w", kind, ErrUnknownAction)
	}
	return b(label, deps), nil
}

// buildYes accepts the collected answers. Activating it hands the host
// the finish command with exit code 0.
func buildYes(label string, deps Deps) *Action {
	if label == "" {
		label = "Yes"
	}
	return &Action{
		Kind:  ActionYes,
		Label: label,
		Invoke: func() tea.Cmd {
			if deps.Finish == nil {
				return nil
			}
			return deps.Finish(0)
		},
	}
}

// buildBack reopens the most recently answered prompt. The traversal
// absorbs repeated activations at the first prompt, so the action
// needs no guard of its own.
func buildBack(label string, deps Deps) *Action {
	if label == "" {
		label = "Back"
	}
	return &Action{
		Kind:  ActionBack,
		Label: label,
		Invoke: func() tea.Cmd {
			deps.Traversal.MovePrevious()
			return nil
		},
	}
}
