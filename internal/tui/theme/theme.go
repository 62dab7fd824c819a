package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is built from these hex strings
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgCrust    string
	BgSurface0 string
	BgSurface1 string
	BgShadow   string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		TabCurrent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		TabVisited: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		TabPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),

		DialogFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Background(lipgloss.Color(t.BgSurface0)).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Background(lipgloss.Color(t.BgSurface0)).
			Bold(true),
		DialogShadow: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgShadow)),

		ActionFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 3),
		ActionBlurred: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface1)).
			Padding(0, 3),

		DetailsTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		DetailsBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),

		PromptDescription: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),
		AnswerName: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		AnswerValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Tertiary)),

		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),
	}
}
