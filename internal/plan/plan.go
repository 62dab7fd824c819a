// Package plan defines the declarative wizard plan model: an ordered
// list of named sections, each holding ordered prompts, plus one
// reserved terminal section that closes the wizard. Plans are authored
// as YAML; section and prompt order always match the document.
package plan

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DoneSectionName is the reserved name of the terminal section. The
// section under this key carries no prompts; it configures the
// completion dialog shown once every other prompt is answered.
const DoneSectionName = "__DONE__"

// ErrMalformedOption reports a completion-dialog option that is neither
// a plain action name nor a name/description mapping.
var ErrMalformedOption = errors.New("malformed option")

// Definition is a fully loaded wizard plan.
type Definition struct {
	Title    string
	Sections []*Section
}

// Section groups prompts under a tab. The terminal section has no
// prompts and may carry Options for the completion dialog instead.
type Section struct {
	Name        string
	Shortname   string
	Description string
	Prompts     []*Prompt
	Options     []Option
}

// Kind selects the input widget for a prompt.
type Kind string

const (
	KindText   Kind = "text"
	KindSelect Kind = "select"
)

// Prompt is a single question inside a section.
type Prompt struct {
	Name        string
	Description string
	Kind        Kind
	Default     string
	Details     string
	Choices     []Choice
}

// HasDetails reports whether the prompt carries details panel content.
func (p *Prompt) HasDetails() bool {
	return p.Details != ""
}

// Choice is one selectable answer of a select prompt.
type Choice struct {
	Value string
	Label string
}

// UnmarshalYAML accepts either a plain scalar ("vpc-1", label equals
// value) or a value/label mapping.
func (c *Choice) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		c.Value = node.Value
		c.Label = node.Value
		return nil
	case yaml.MappingNode:
		var doc struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		}
		if err := node.Decode(&doc); err != nil {
			return err
		}
		if doc.Value == "" {
			return fmt.Errorf("line %d: choice requires a value", node.Line)
		}
		c.Value = doc.Value
		c.Label = doc.Label
		if c.Label == "" {
			c.Label = c.Value
		}
		return nil
	default:
		return fmt.Errorf("line %d: choice must be a scalar or a mapping", node.Line)
	}
}

// Option names an action of the completion dialog, optionally with a
// label override.
type Option struct {
	Name        string
	Description string
}

// UnmarshalYAML accepts either a plain action name ("yes") or a
// name/description mapping. Everything else is malformed.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		o.Name = node.Value
	case yaml.MappingNode:
		var doc struct {
			Name        string `yaml:"name"`
			Description string `yaml:"description"`
		}
		if err := node.Decode(&doc); err != nil {
			return err
		}
		o.Name = doc.Name
		o.Description = doc.Description
	default:
		return fmt.Errorf("line %d: option must be a name or a name/description mapping: %w", node.Line, ErrMalformedOption)
	}
	if o.Name == "" {
		return fmt.Errorf("line %d: option requires a name: %w", node.Line, ErrMalformedOption)
	}
	return nil
}

// Done returns the terminal section, or nil when the plan has none.
func (d *Definition) Done() *Section {
	for _, s := range d.Sections {
		if s.Name == DoneSectionName {
			return s
		}
	}
	return nil
}

// Section returns the named section, or nil.
func (d *Definition) Section(name string) *Section {
	for _, s := range d.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// PromptCount counts the prompts across all non-terminal sections.
func (d *Definition) PromptCount() int {
	n := 0
	for _, s := range d.Sections {
		if s.Name == DoneSectionName {
			continue
		}
		n += len(s.Prompts)
	}
	return n
}

// Tab returns the label for the section's tab: the shortname when set,
// otherwise the section name.
func (s *Section) Tab() string {
	if s.Shortname != "" {
		return s.Shortname
	}
	return s.Name
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
