// Package traverse tracks a wizard run through a plan: which prompt is
// current, which answers were given, and whether any prompts remain.
// The UI owns a single Traverser and consults it every frame; all
// mutation happens through Advance and MovePrevious on the event loop,
// so no locking is involved.
package traverse

import "github.com/planterm/planterm/internal/plan"

// SectionState describes how a section relates to the cursor, for tab
// highlighting.
type SectionState int

const (
	SectionPending SectionState = iota
	SectionCurrent
	SectionVisited
)

// Position is the cursor's place in the flattened prompt list.
type Position struct {
	Index   int
	Section string
	Prompt  *plan.Prompt
}

// Answer is one collected value, in prompt order.
type Answer struct {
	Name  string
	Value string
}

type promptRef struct {
	section string
	prompt  *plan.Prompt
}

// Traverser walks the prompts of every non-terminal section in plan
// order. Once the cursor moves past the final prompt the wizard is
// complete; MovePrevious from there re-opens the last prompt.
type Traverser struct {
	def      *plan.Definition
	prompts  []promptRef
	position int
	answers  map[string]string
}

// New builds a traverser over the plan's non-terminal prompts.
func New(def *plan.Definition) *Traverser {
	t := &Traverser{
		def:     def,
		answers: make(map[string]string),
	}
	for _, sec := range def.Sections {
		if sec.Name == plan.DoneSectionName {
			continue
		}
		for _, p := range sec.Prompts {
			t.prompts = append(t.prompts, promptRef{section: sec.Name, prompt: p})
		}
	}
	return t
}

// Definition returns the plan this traverser walks.
func (t *Traverser) Definition() *plan.Definition {
	return t.def
}

// Current returns the cursor position, or nil once every prompt has
// been answered.
func (t *Traverser) Current() *Position {
	if t.position >= len(t.prompts) {
		return nil
	}
	ref := t.prompts[t.position]
	return &Position{Index: t.position, Section: ref.section, Prompt: ref.prompt}
}

// HasNoRemainingPrompts reports whether the cursor moved past the final
// prompt. Pure read; the completion dialog's visibility is exactly this
// predicate.
func (t *Traverser) HasNoRemainingPrompts() bool {
	return t.position >= len(t.prompts)
}

// Advance records the answer for the current prompt and moves the
// cursor forward. No-op when the wizard is already complete.
func (t *Traverser) Advance(value string) {
	if t.position >= len(t.prompts) {
		return
	}
	t.answers[t.prompts[t.position].prompt.Name] = value
	t.position++
}

// MovePrevious moves the cursor back one prompt. Safe at the first
// prompt, where it does nothing; from the completed state it re-opens
// the final prompt.
func (t *Traverser) MovePrevious() {
	if t.position > 0 {
		t.position--
	}
}

// Value returns the recorded answer for a prompt.
func (t *Traverser) Value(name string) (string, bool) {
	v, ok := t.answers[name]
	return v, ok
}

// Values returns every prompt's value in prompt order. Unanswered
// prompts fall back to their default.
func (t *Traverser) Values() []Answer {
	out := make([]Answer, 0, len(t.prompts))
	for _, ref := range t.prompts {
		v, ok := t.answers[ref.prompt.Name]
		if !ok {
			v = ref.prompt.Default
		}
		out = append(out, Answer{Name: ref.prompt.Name, Value: v})
	}
	return out
}

// CurrentSection returns the section the cursor is in; once complete it
// reports the terminal section.
func (t *Traverser) CurrentSection() string {
	if pos := t.Current(); pos != nil {
		return pos.Section
	}
	return plan.DoneSectionName
}

// SectionState classifies a section for tab styling.
func (t *Traverser) SectionState(name string) SectionState {
	if name == t.CurrentSection() {
		return SectionCurrent
	}
	if name == plan.DoneSectionName {
		return SectionPending
	}
	for i, ref := range t.prompts {
		if ref.section != name {
			continue
		}
		if i >= t.position {
			return SectionPending
		}
	}
	return SectionVisited
}

// SectionAnswers returns the answered prompts of a section, in order,
// up to the cursor.
func (t *Traverser) SectionAnswers(name string) []Answer {
	var out []Answer
	for i, ref := range t.prompts {
		if i >= t.position || ref.section != name {
			continue
		}
		out = append(out, Answer{Name: ref.prompt.Name, Value: t.answers[ref.prompt.Name]})
	}
	return out
}

// HasDetails reports whether the current prompt carries details
// content. False once the wizard is complete.
func (t *Traverser) HasDetails() bool {
	pos := t.Current()
	return pos != nil && pos.Prompt.HasDetails()
}

// Details returns the current prompt's details title and body. The
// title is the prompt description, falling back to its name.
func (t *Traverser) Details() (title, body string) {
	pos := t.Current()
	if pos == nil || !pos.Prompt.HasDetails() {
		return "", ""
	}
	title = pos.Prompt.Description
	if title == "" {
		title = pos.Prompt.Name
	}
	return title, pos.Prompt.Details
}
