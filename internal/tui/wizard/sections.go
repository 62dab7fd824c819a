package wizard

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui/theme"
)

// TabState is the progress marker of one section tab.
type TabState int

const (
	TabPending TabState = iota
	TabCurrent
	TabVisited
)

// DrawTab renders a tab line with its state marker. Host-rendered tabs
// and the terminal section's tab both go through this, so the column
// stays visually uniform.
func DrawTab(scr uv.Screen, area uv.Rectangle, label string, state TabState) {
	s := theme.Current().S()
	var style lipgloss.Style
	var marker string
	switch state {
	case TabCurrent:
		style, marker = s.TabCurrent, "▸ "
	case TabVisited:
		style, marker = s.TabVisited, "✓ "
	default:
		style, marker = s.TabPending, "  "
	}
	DrawStyled(scr, area, style, marker+label)
}

// DoneTabLabel is the terminal section's tab text when the plan gives
// it no shortname.
const DoneTabLabel = "Done"

// doneTab is the terminal section's entry in the tab column. It reads
// as current exactly while the completion dialog is visible and as
// pending before that; it is never marked visited.
type doneTab struct {
	label string
	trav  Traversal
}

func (t *doneTab) Label() string { return t.label }

func (t *doneTab) Draw(scr uv.Screen, area uv.Rectangle) {
	state := TabPending
	if t.trav.HasNoRemainingPrompts() {
		state = TabCurrent
	}
	DrawTab(scr, area, t.label, state)
}

// compileSections builds one tab and one body per plan section,
// preserving plan order. Non-terminal sections go through the injected
// renderer; the terminal section's body is the completion dialog, the
// same instance the layout exposes to the host.
func compileSections(def *plan.Definition, dialog *RunDialog, deps Deps) (tabs []Tab, bodies []Body) {
	for _, sec := range def.Sections {
		if sec.Name == plan.DoneSectionName {
			label := sec.Shortname
			if label == "" {
				label = DoneTabLabel
			}
			tabs = append(tabs, &doneTab{label: label, trav: deps.Traversal})
			bodies = append(bodies, dialog)
			continue
		}
		tabs = append(tabs, deps.Renderer.RenderTab(sec))
		bodies = append(bodies, deps.Renderer.RenderBody(sec))
	}
	return tabs, bodies
}
