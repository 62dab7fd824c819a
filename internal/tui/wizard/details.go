package wizard

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/tui/theme"
)

const (
	// DefaultDetailsTitle is used when the current prompt does not
	// name its details.
	DefaultDetailsTitle = "Details panel"

	// DetailsPreferredHeight and DetailsMaxHeight bound the details
	// panel: it aims for the preferred height, never exceeds the max,
	// and never takes more than half of the body column.
	DetailsPreferredHeight = 30
	DetailsMaxHeight       = 40
)

// DetailsPanel shows the current prompt's long-form help below the
// section bodies. Content scrolls in a viewport; switching prompts
// resets the scroll position.
type DetailsPanel struct {
	source  DetailsSource
	vp      viewport.Model
	content string
}

// NewDetailsPanel creates a panel fed by source.
func NewDetailsPanel(source DetailsSource) *DetailsPanel {
	return &DetailsPanel{source: source, vp: viewport.New()}
}

// Visible reports whether the panel renders this frame.
func (p *DetailsPanel) Visible() bool { return p.source.DetailsVisible() }

// Title returns the panel heading, falling back to the default.
func (p *DetailsPanel) Title() string {
	if t := p.source.DetailsTitle(); t != "" {
		return t
	}
	return DefaultDetailsTitle
}

// Height returns the rows the panel claims from a body column of the
// given height.
func (p *DetailsPanel) Height(available int) int {
	if available <= 0 {
		return 0
	}
	h := DetailsPreferredHeight
	if h > DetailsMaxHeight {
		h = DetailsMaxHeight
	}
	if half := available / 2; h > half {
		h = half
	}
	if h < 3 {
		h = 3
		if h > available {
			h = available
		}
	}
	return h
}

// Update forwards scroll keys to the viewport. The host routes input
// here only while the panel holds focus.
func (p *DetailsPanel) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := p.vp.Update(msg)
	p.vp = vp
	return cmd
}

// ScrollPercent reports the viewport's vertical scroll position.
func (p *DetailsPanel) ScrollPercent() float64 { return p.vp.ScrollPercent() }

// Draw renders the header rule and the scrolled content.
func (p *DetailsPanel) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	s := theme.Current().S()
	inner := DrawPanel(scr, area, p.Title(), s.DetailsTitle, s.Rule)

	if content := p.source.DetailsContent(); content != p.content {
		p.content = content
		p.vp.SetContent(content)
		p.vp.GotoTop()
	}
	p.vp.SetWidth(inner.Dx())
	p.vp.SetHeight(inner.Dy())
	DrawText(scr, inner, p.vp.View())
}

// DetailsToolbar is the one-line hint bar for the details panel. It
// shows whenever the current prompt carries details, regardless of
// whether the panel itself is open.
type DetailsToolbar struct {
	source DetailsSource
}

// NewDetailsToolbar creates a toolbar fed by source.
func NewDetailsToolbar(source DetailsSource) *DetailsToolbar {
	return &DetailsToolbar{source: source}
}

// Visible reports whether the toolbar renders this frame.
func (t *DetailsToolbar) Visible() bool { return t.source.HasDetails() }

// Draw renders the F2/F3 key hints, naming the details panel the way
// the panel header does.
func (t *DetailsToolbar) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	title := t.source.DetailsTitle()
	if title == "" {
		title = DefaultDetailsTitle
	}
	s := theme.Current().S()
	hints := s.HintKey.Render("[F2]") + " " + s.HintDesc.Render("Switch to "+title) +
		"  " + s.HintKey.Render("[F3]") + " " + s.HintDesc.Render("Show/Hide "+title)
	DrawText(scr, area, hints)
}
