package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/traverse"
	"github.com/planterm/planterm/internal/tui/theme"
	"github.com/planterm/planterm/internal/tui/wizard"
)

// sectionTab is a non-terminal section's entry in the tab column. Its
// state is read from the traverser on every draw.
type sectionTab struct {
	label string
	name  string
	trav  *traverse.Traverser
}

func (t *sectionTab) Label() string { return t.label }

func (t *sectionTab) Draw(scr uv.Screen, area uv.Rectangle) {
	state := wizard.TabPending
	switch t.trav.SectionState(t.name) {
	case traverse.SectionCurrent:
		state = wizard.TabCurrent
	case traverse.SectionVisited:
		state = wizard.TabVisited
	}
	wizard.DrawTab(scr, area, t.label, state)
}

// sectionBody renders one section's content: the answers already
// collected in it, and the active widget while the cursor is inside.
type sectionBody struct {
	app *App
	sec *plan.Section
}

func (b *sectionBody) Visible() bool {
	return b.app.trav.CurrentSection() == b.sec.Name
}

func (b *sectionBody) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	s := theme.Current().S()
	var lines []string

	if b.sec.Description != "" {
		lines = append(lines, s.PromptDescription.Render(b.sec.Description), "")
	}

	for _, ans := range b.app.trav.SectionAnswers(b.sec.Name) {
		lines = append(lines, s.AnswerName.Render(ans.Name+": ")+s.AnswerValue.Render(ans.Value))
	}

	if pos := b.app.trav.Current(); pos != nil && pos.Section == b.sec.Name {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		desc := pos.Prompt.Description
		if desc == "" {
			desc = pos.Prompt.Name
		}
		lines = append(lines, s.PromptDescription.Render(desc), "")
		if b.app.widget != nil {
			lines = append(lines, b.app.widget.View(area.Dx()))
		}
	}

	wizard.DrawText(scr, area, strings.Join(lines, "\n"))
	return nil
}

// RenderTab builds the tab for a non-terminal section.
func (a *App) RenderTab(sec *plan.Section) wizard.Tab {
	return &sectionTab{label: sec.Tab(), name: sec.Name, trav: a.trav}
}

// RenderBody builds the body for a non-terminal section.
func (a *App) RenderBody(sec *plan.Section) wizard.Body {
	return &sectionBody{app: a, sec: sec}
}
