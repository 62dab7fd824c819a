package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a plan file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", path, err)
	}
	return def, nil
}

// Parse parses a plan document. Section and prompt order follow the
// document; duplicates and unknown prompt kinds are rejected here so
// the UI can assume a well-formed definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// UnmarshalYAML decodes the document root. Mappings are walked by hand
// because encoding through a Go map would lose the author's section and
// prompt order.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: plan must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i].Value
		val := resolveAlias(node.Content[i+1])
		switch key {
		case "title":
			if err := val.Decode(&d.Title); err != nil {
				return err
			}
		case "sections":
			sections, err := decodeSections(val)
			if err != nil {
				return err
			}
			d.Sections = sections
		default:
			return fmt.Errorf("line %d: unknown plan field %q", node.Content[i].Line, key)
		}
	}
	return nil
}

func decodeSections(node *yaml.Node) ([]*Section, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: sections must be a mapping", node.Line)
	}
	seen := make(map[string]bool)
	var sections []*Section
	for i := 0; i < len(node.Content)-1; i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate section %q", node.Content[i].Line, name)
		}
		seen[name] = true

		sec, err := decodeSection(name, resolveAlias(node.Content[i+1]))
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func decodeSection(name string, node *yaml.Node) (*Section, error) {
	var doc struct {
		Shortname   string    `yaml:"shortname"`
		Description string    `yaml:"description"`
		Values      yaml.Node `yaml:"values"`
		Options     []Option  `yaml:"options"`
	}
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("section %q: %w", name, err)
	}

	sec := &Section{
		Name:        name,
		Shortname:   doc.Shortname,
		Description: doc.Description,
		Options:     doc.Options,
	}

	if doc.Values.Kind != 0 {
		if name == DoneSectionName {
			return nil, fmt.Errorf("section %q must not define values", name)
		}
		prompts, err := decodePrompts(name, resolveAlias(&doc.Values))
		if err != nil {
			return nil, err
		}
		sec.Prompts = prompts
	}
	if len(doc.Options) > 0 && name != DoneSectionName {
		return nil, fmt.Errorf("section %q: options are only valid on %s", name, DoneSectionName)
	}
	return sec, nil
}

func decodePrompts(section string, node *yaml.Node) ([]*Prompt, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("section %q: values must be a mapping", section)
	}
	seen := make(map[string]bool)
	var prompts []*Prompt
	for i := 0; i < len(node.Content)-1; i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, fmt.Errorf("section %q: duplicate prompt %q", section, name)
		}
		seen[name] = true

		var doc struct {
			Description string   `yaml:"description"`
			Kind        string   `yaml:"kind"`
			Default     string   `yaml:"default"`
			Details     string   `yaml:"details"`
			Choices     []Choice `yaml:"choices"`
		}
		if err := resolveAlias(node.Content[i+1]).Decode(&doc); err != nil {
			return nil, fmt.Errorf("prompt %q: %w", name, err)
		}

		p := &Prompt{
			Name:        name,
			Description: doc.Description,
			Kind:        Kind(doc.Kind),
			Default:     doc.Default,
			Details:     doc.Details,
			Choices:     doc.Choices,
		}
		switch p.Kind {
		case "":
			p.Kind = KindText
		case KindText, KindSelect:
		default:
			return nil, fmt.Errorf("prompt %q: unknown kind %q", name, doc.Kind)
		}
		if p.Kind == KindSelect && len(p.Choices) == 0 {
			return nil, fmt.Errorf("prompt %q: select prompt has no choices", name)
		}
		prompts = append(prompts, p)
	}
	return prompts, nil
}
