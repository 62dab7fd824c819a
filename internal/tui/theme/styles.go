package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Wizard title row
	Title lipgloss.Style

	// Section tab column
	TabCurrent lipgloss.Style
	TabVisited lipgloss.Style
	TabPending lipgloss.Style

	// Completion dialog
	DialogFrame  lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogShadow lipgloss.Style

	// Dialog action buttons
	ActionFocused lipgloss.Style
	ActionBlurred lipgloss.Style

	// Details panel
	DetailsTitle lipgloss.Style
	DetailsBody  lipgloss.Style

	// Hint toolbar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Prompt area
	PromptDescription lipgloss.Style
	AnswerName        lipgloss.Style
	AnswerValue       lipgloss.Style

	// Horizontal separator
	Rule lipgloss.Style
}
