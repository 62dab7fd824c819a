package wizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui/theme"
)

// Layout dimensions
const (
	// TitleHeight is the rows reserved for the centered plan title.
	TitleHeight = 2
	// RuleHeight is the closing rule at the bottom of the screen.
	RuleHeight = 1
	// TabColumnMinWidth is the narrowest the tab column gets.
	TabColumnMinWidth = 12
	// TabColumnMaxWidth caps the tab column against long shortnames.
	TabColumnMaxWidth = 28

	// tabMarkerWidth is the "▸ " prefix DrawTab adds to every label.
	tabMarkerWidth = 2
)

// Regions are the rectangles of one wizard frame.
type Regions struct {
	Area    uv.Rectangle
	Title   uv.Rectangle
	Tabs    uv.Rectangle
	Body    uv.Rectangle
	Details uv.Rectangle
	Toolbar uv.Rectangle
	Rule    uv.Rectangle
}

// Factory builds wizard layouts from loaded plans. The deps given at
// construction are shared by every layout it creates.
type Factory struct {
	deps Deps
}

// NewFactory wires the host collaborators into a layout factory.
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// CreateWizardLayout compiles the plan into a drawable screen. It
// fails when the plan lacks its terminal section, or when that
// section's options are malformed or name unregistered action kinds.
func (f *Factory) CreateWizardLayout(def *plan.Definition) (*Layout, error) {
	done := def.Done()
	if done == nil {
		return nil, fmt.Errorf("plan %q: %w", def.Title, ErrMissingDoneSection)
	}

	dialog, err := newRunDialog(done, f.deps)
	if err != nil {
		return nil, err
	}

	tabs, bodies := compileSections(def, dialog, f.deps)

	return &Layout{
		title:   def.Title,
		tabs:    tabs,
		bodies:  bodies,
		dialog:  dialog,
		details: NewDetailsPanel(f.deps.Details),
		toolbar: NewDetailsToolbar(f.deps.Details),
	}, nil
}

// Layout is one compiled wizard screen: the title row, the tab column,
// the stacked section bodies, the details panel with its toolbar, and
// the closing rule. Which parts render is re-decided every frame from
// the injected predicates; the layout itself holds no progress state.
type Layout struct {
	title   string
	tabs    []Tab
	bodies  []Body
	dialog  *RunDialog
	details *DetailsPanel
	toolbar *DetailsToolbar
}

// Dialog exposes the completion dialog so the host can route key
// presses to it while it is visible.
func (l *Layout) Dialog() *RunDialog { return l.dialog }

// Details exposes the details panel for focus and scroll routing.
func (l *Layout) Details() *DetailsPanel { return l.details }

// Tabs returns the compiled tab column in plan order.
func (l *Layout) Tabs() []Tab { return l.tabs }

// Bodies returns the compiled section bodies in plan order.
func (l *Layout) Bodies() []Body { return l.bodies }

// Title returns the plan title shown in the header row.
func (l *Layout) Title() string { return l.title }

func (l *Layout) tabColumnWidth() int {
	w := 0
	for _, t := range l.tabs {
		if lw := lipgloss.Width(t.Label()); lw > w {
			w = lw
		}
	}
	w += tabMarkerWidth
	if w < TabColumnMinWidth {
		w = TabColumnMinWidth
	}
	if w > TabColumnMaxWidth {
		w = TabColumnMaxWidth
	}
	return w
}

// Regions computes the frame's rectangles for the given area.
func (l *Layout) Regions(area uv.Rectangle) Regions {
	r := Regions{Area: area}

	titleRect, rest := uv.SplitVertical(area, uv.Fixed(TitleHeight))
	r.Title = titleRect

	content, ruleRect := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-RuleHeight))
	r.Rule = ruleRect

	tabsRect, bodyCol := uv.SplitHorizontal(content, uv.Fixed(l.tabColumnWidth()+1))
	tabsRect.Max.X -= 1 // 1-char gap before the body column
	r.Tabs = tabsRect

	detailsHeight := 0
	if l.details.Visible() {
		detailsHeight = l.details.Height(bodyCol.Dy())
	}
	toolbarHeight := 0
	if l.toolbar.Visible() {
		toolbarHeight = 1
	}

	bodyRect, lower := uv.SplitVertical(bodyCol, uv.Fixed(bodyCol.Dy()-detailsHeight-toolbarHeight))
	r.Body = bodyRect
	r.Details, r.Toolbar = uv.SplitVertical(lower, uv.Fixed(detailsHeight))
	return r
}

// Draw renders one frame into the screen. Every body is consulted but
// at most one is visible; the cursor of the visible body, when it has
// one, is returned for the host to place.
func (l *Layout) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	r := l.Regions(area)
	s := theme.Current().S()

	DrawStyled(scr, r.Title, s.Title.Align(lipgloss.Center), l.title)

	for i, tab := range l.tabs {
		if i >= r.Tabs.Dy() {
			break
		}
		tab.Draw(scr, uv.Rect(r.Tabs.Min.X, r.Tabs.Min.Y+i, r.Tabs.Dx(), 1))
	}

	var cursor *tea.Cursor
	for _, body := range l.bodies {
		if !body.Visible() {
			continue
		}
		if c := body.Draw(scr, r.Body); c != nil {
			cursor = c
		}
	}

	if l.details.Visible() {
		l.details.Draw(scr, r.Details)
	}
	if l.toolbar.Visible() {
		l.toolbar.Draw(scr, r.Toolbar)
	}

	DrawHorizontalRule(scr, r.Rule, s.Rule)
	return cursor
}
