package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui/theme"
)

const (
	// DefaultDialogTitle is shown when the terminal section carries no
	// description of its own.
	DefaultDialogTitle = "Run wizard?"

	// DialogTopOffset is the fixed gap in rows between the body area's
	// top edge and the dialog frame.
	DialogTopOffset = 5
)

// VisibilityPredicate reports whether a component should render this
// frame. The dialog re-evaluates it on every frame and every key press
// instead of caching the answer.
type VisibilityPredicate func() bool

// RunDialog is the completion dialog: a framed, shadowed box of action
// buttons that appears once the plan has no remaining prompts and
// disappears again the moment the back action reopens one. It renders
// as the terminal section's body.
type RunDialog struct {
	title   string
	actions []*Action
	cycle   *FocusCycle
	keys    ActionKeyMap
	visible VisibilityPredicate
}

// newRunDialog builds the dialog for the plan's terminal section. Every
// malformed or unknown option fails construction, naming the offender.
func newRunDialog(sec *plan.Section, deps Deps) (*RunDialog, error) {
	title := sec.Description
	if title == "" {
		title = DefaultDialogTitle
	}

	opts := sec.Options
	if len(opts) == 0 {
		opts = []plan.Option{{Name: ActionYes}, {Name: ActionBack}}
	}

	factory := deps.factory()
	actions := make([]*Action, 0, len(opts))
	for i, opt := range opts {
		if opt.Name == "" {
			return nil, fmt.Errorf("option %d of section %q: %w", i+1, sec.Name, plan.ErrMalformedOption)
		}
		action, err := factory.Create(opt.Name, opt.Description, deps)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.Name, err)
		}
		actions = append(actions, action)
	}

	return &RunDialog{
		title:   title,
		actions: actions,
		cycle:   NewFocusCycle(len(actions)),
		keys:    DefaultActionKeyMap(),
		visible: deps.Traversal.HasNoRemainingPrompts,
	}, nil
}

// Title returns the dialog's heading text.
func (d *RunDialog) Title() string { return d.title }

// Actions returns the dialog's buttons in plan order.
func (d *RunDialog) Actions() []*Action { return d.actions }

// FocusedIndex returns the index of the focused button.
func (d *RunDialog) FocusedIndex() int { return d.cycle.Index() }

// Visible reports whether the dialog owns the body area this frame.
func (d *RunDialog) Visible() bool { return d.visible() }

// Update moves focus or activates the focused action. Keys arriving
// while the dialog is hidden are ignored.
func (d *RunDialog) Update(msg tea.KeyPressMsg) tea.Cmd {
	if !d.Visible() {
		return nil
	}
	if d.keys.Route(msg, d.cycle) {
		return d.actions[d.cycle.Index()].Invoke()
	}
	return nil
}

// Draw renders the dialog centered in the area, a fixed offset below
// its top edge, with a drop shadow underneath. The text cursor stays
// hidden; focus is conveyed by button styling alone.
func (d *RunDialog) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if !d.Visible() {
		return nil
	}
	s := theme.Current().S()

	row := make([]string, 0, len(d.actions))
	for i, a := range d.actions {
		st := s.ActionBlurred
		if i == d.cycle.Index() {
			st = s.ActionFocused
		}
		row = append(row, st.Render(a.Label))
	}
	buttons := strings.Join(row, "  ")

	inner := lipgloss.JoinVertical(lipgloss.Center,
		s.DialogTitle.Render(d.title),
		"",
		buttons,
	)
	frame := s.DialogFrame.Render(inner)

	w := lipgloss.Width(frame)
	h := lipgloss.Height(frame)

	x := area.Min.X + (area.Dx()-w)/2
	if x < area.Min.X {
		x = area.Min.X
	}
	y := area.Min.Y + DialogTopOffset
	if y+h > area.Max.Y {
		y = area.Max.Y - h
	}
	if y < area.Min.Y {
		y = area.Min.Y
	}

	shadow := uv.Rect(x+1, y+1, w, h)
	if shadow.Max.X > area.Max.X {
		shadow.Max.X = area.Max.X
	}
	if shadow.Max.Y > area.Max.Y {
		shadow.Max.Y = area.Max.Y
	}
	FillArea(scr, shadow, s.DialogShadow)

	uv.NewStyledString(frame).Draw(scr, uv.Rect(x, y, w, h))
	return nil
}
