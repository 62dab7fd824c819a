package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui/theme"
)

// promptWidget is the interactive control for the current prompt. The
// widget owns editing state only; recording the answer and moving the
// cursor stay with the App.
type promptWidget interface {
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Value() string
	Focus() tea.Cmd
	Blur()
}

// newPromptWidget builds the widget for a prompt. prefill is the
// previously recorded answer when the prompt is being reopened, or the
// prompt's default on first visit.
func newPromptWidget(p *plan.Prompt, prefill string) promptWidget {
	if p.Kind == plan.KindSelect {
		return newSelectPrompt(p, prefill)
	}
	return newTextPrompt(p, prefill)
}

// answerInputStyles builds the shared textinput styling from the
// current theme.
func answerInputStyles() textinput.Styles {
	t := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBright)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// textPrompt is a single-line free-text answer field.
type textPrompt struct {
	input textinput.Model
}

func newTextPrompt(p *plan.Prompt, prefill string) *textPrompt {
	input := textinput.New()
	input.Prompt = "> "
	input.SetStyles(answerInputStyles())
	input.SetWidth(48)
	if prefill != "" {
		input.SetValue(prefill)
	}
	return &textPrompt{input: input}
}

func (w *textPrompt) Update(msg tea.Msg) tea.Cmd {
	if paste, ok := msg.(tea.PasteMsg); ok {
		msg = tea.PasteMsg{Content: sanitizeAnswer(paste.Content)}
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *textPrompt) View(width int) string {
	inputWidth := width - 4
	if inputWidth > 64 {
		inputWidth = 64
	}
	if inputWidth > 0 {
		w.input.SetWidth(inputWidth)
	}
	return w.input.View() + "\n\n" + HintTextPrompt()
}

func (w *textPrompt) Value() string { return w.input.Value() }

func (w *textPrompt) Focus() tea.Cmd { return w.input.Focus() }

func (w *textPrompt) Blur() { w.input.Blur() }

// maxVisibleChoices bounds the choice window so long lists scroll
// instead of pushing the hint line off screen.
const maxVisibleChoices = 8

// selectPrompt is a filterable choice list. Typing narrows the list
// with fuzzy matching over the labels; up/down move the cursor.
type selectPrompt struct {
	choices  []plan.Choice
	filter   textinput.Model
	filtered []int // indexes into choices
	cursor   int   // index into filtered
}

// choiceLabels adapts a choice list to fuzzy.Source.
type choiceLabels []plan.Choice

func (c choiceLabels) String(i int) string { return c[i].Label }
func (c choiceLabels) Len() int            { return len(c) }

func newSelectPrompt(p *plan.Prompt, prefill string) *selectPrompt {
	filter := textinput.New()
	filter.Placeholder = "Type to filter..."
	filter.Prompt = "> "
	filter.SetStyles(answerInputStyles())
	filter.SetWidth(48)

	w := &selectPrompt{
		choices: p.Choices,
		filter:  filter,
	}
	w.applyFilter()

	// Reopening lands the cursor on the previously chosen value.
	for pos, idx := range w.filtered {
		if w.choices[idx].Value == prefill {
			w.cursor = pos
			break
		}
	}
	return w
}

// applyFilter recomputes the visible choices from the filter text.
func (w *selectPrompt) applyFilter() {
	query := strings.TrimSpace(w.filter.Value())
	if query == "" {
		w.filtered = make([]int, len(w.choices))
		for i := range w.choices {
			w.filtered[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(query, choiceLabels(w.choices))
		w.filtered = make([]int, len(matches))
		for i, m := range matches {
			w.filtered[i] = m.Index
		}
	}
	if w.cursor >= len(w.filtered) {
		w.cursor = 0
	}
}

func (w *selectPrompt) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.PasteMsg:
		msg.Content = sanitizeAnswer(msg.Content)
		var cmd tea.Cmd
		w.filter, cmd = w.filter.Update(msg)
		w.applyFilter()
		return cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			if w.cursor > 0 {
				w.cursor--
			}
			return nil
		case "down":
			if w.cursor < len(w.filtered)-1 {
				w.cursor++
			}
			return nil
		}
	}

	var cmd tea.Cmd
	w.filter, cmd = w.filter.Update(msg)
	w.applyFilter()
	return cmd
}

func (w *selectPrompt) View(width int) string {
	var b strings.Builder
	b.WriteString(w.filter.View())
	b.WriteString("\n\n")

	s := theme.Current().S()
	if len(w.filtered) == 0 {
		b.WriteString(s.AnswerName.Render("No choices match your filter"))
		b.WriteString("\n\n")
		b.WriteString(HintSelectPrompt())
		return b.String()
	}

	// Window the list around the cursor.
	start := 0
	if w.cursor >= maxVisibleChoices {
		start = w.cursor - maxVisibleChoices + 1
	}
	end := start + maxVisibleChoices
	if end > len(w.filtered) {
		end = len(w.filtered)
	}

	for pos := start; pos < end; pos++ {
		label := w.choices[w.filtered[pos]].Label
		if pos == w.cursor {
			b.WriteString(s.TabCurrent.Render("▸ " + label))
		} else {
			b.WriteString(s.AnswerName.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if len(w.filtered) > maxVisibleChoices {
		b.WriteString(s.AnswerName.Render("  …"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HintSelectPrompt())
	return b.String()
}

// Value returns the cursor's choice value, or empty when the filter
// matched nothing.
func (w *selectPrompt) Value() string {
	if w.cursor < 0 || w.cursor >= len(w.filtered) {
		return ""
	}
	return w.choices[w.filtered[w.cursor]].Value
}

func (w *selectPrompt) Focus() tea.Cmd { return w.filter.Focus() }

func (w *selectPrompt) Blur() { w.filter.Blur() }
