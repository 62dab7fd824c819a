package wizard

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
)

// fakeTraversal is a hand-cranked Traversal: tests flip done to
// simulate answering or reopening prompts.
type fakeTraversal struct {
	done      bool
	backCalls int
}

func (f *fakeTraversal) HasNoRemainingPrompts() bool { return f.done }

func (f *fakeTraversal) MovePrevious() {
	f.backCalls++
	f.done = false
}

// fakeDetails is a scripted DetailsSource.
type fakeDetails struct {
	has     bool
	open    bool
	title   string
	content string
}

func (f *fakeDetails) HasDetails() bool       { return f.has }
func (f *fakeDetails) DetailsVisible() bool   { return f.has && f.open }
func (f *fakeDetails) DetailsTitle() string   { return f.title }
func (f *fakeDetails) DetailsContent() string { return f.content }

// fakeTab renders its label in the pending state.
type fakeTab struct {
	label string
}

func (f *fakeTab) Label() string { return f.label }

func (f *fakeTab) Draw(scr uv.Screen, area uv.Rectangle) {
	DrawTab(scr, area, f.label, TabPending)
}

// fakeBody draws a recognizable marker and counts its draws.
type fakeBody struct {
	section string
	visible func() bool
	draws   int
}

func (f *fakeBody) Visible() bool { return f.visible() }

func (f *fakeBody) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	f.draws++
	DrawText(scr, area, "["+f.section+" body]")
	return nil
}

// fakeRenderer builds fake tabs and bodies; the body for current is
// the visible one.
type fakeRenderer struct {
	current string
}

func (r *fakeRenderer) RenderTab(sec *plan.Section) Tab {
	return &fakeTab{label: sec.Tab()}
}

func (r *fakeRenderer) RenderBody(sec *plan.Section) Body {
	name := sec.Name
	return &fakeBody{
		section: name,
		visible: func() bool { return r.current == name },
	}
}

// finished is the message testDeps' Finish command produces.
type finished struct {
	code int
}

// testDeps wires fakes into a Deps value ready for dialog and layout
// construction.
func testDeps(trav *fakeTraversal) Deps {
	return Deps{
		Traversal: trav,
		Renderer:  &fakeRenderer{},
		Details:   &fakeDetails{},
		Finish: func(code int) tea.Cmd {
			return func() tea.Msg { return finished{code: code} }
		},
	}
}
