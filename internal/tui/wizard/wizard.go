// Package wizard composes the full-screen plan runner: a tab column
// tracking section progress, stacked section bodies of which at most
// one is visible per frame, a details panel with its hint toolbar, and
// the completion dialog that appears once every prompt has an answer.
//
// The package owns geometry and per-frame projection only. Traversal
// state, prompt rendering, and details content are injected through
// the Deps struct, so the same layout code runs under a live terminal
// program and under a headless screen buffer in tests.
package wizard

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
)

// Traversal is the host-owned cursor over the plan's prompts. The
// layout never advances it; it only reads completion state and asks it
// to step back when the dialog's back action fires.
type Traversal interface {
	// HasNoRemainingPrompts reports whether every prompt has been
	// answered. The completion dialog is visible exactly while this
	// holds, re-evaluated on every frame.
	HasNoRemainingPrompts() bool

	// MovePrevious reopens the most recently answered prompt. Safe to
	// call at any time; before the first answer it is a no-op.
	MovePrevious()
}

// DetailsSource feeds the details panel and its toolbar. Both
// predicates are evaluated per frame and are independent: the toolbar
// shows whenever the current prompt carries details, while the panel
// additionally needs the user-toggled visibility bit.
type DetailsSource interface {
	HasDetails() bool
	DetailsVisible() bool
	DetailsTitle() string
	DetailsContent() string
}

// SectionRenderer builds the tab and body for each non-terminal
// section. The terminal section never reaches it; the layout renders
// that one itself as the completion dialog.
type SectionRenderer interface {
	RenderTab(sec *plan.Section) Tab
	RenderBody(sec *plan.Section) Body
}

// Tab is one entry in the section column.
type Tab interface {
	// Label is the tab text before state markers are applied. The
	// layout sizes the column from the widest label.
	Label() string
	Draw(scr uv.Screen, area uv.Rectangle)
}

// Body renders a section's content. Bodies share one rectangle;
// Visible decides which of them owns the frame.
type Body interface {
	Visible() bool
	Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor
}

// Deps carries the host-owned collaborators wired into a layout at
// construction time.
type Deps struct {
	Traversal Traversal
	Renderer  SectionRenderer
	Details   DetailsSource

	// Finish produces the command that ends the program with the
	// given exit code. The built-in yes action invokes it with 0.
	Finish func(code int) tea.Cmd

	// Actions overrides the action factory. Nil selects the built-in
	// factory carrying the yes and back actions.
	Actions *ActionFactory
}

func (d Deps) factory() *ActionFactory {
	if d.Actions != nil {
		return d.Actions
	}
	return NewActionFactory()
}
