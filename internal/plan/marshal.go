package plan

import "gopkg.in/yaml.v3"

// Marshal renders the plan back to normalized YAML with the original
// section and prompt order.
func (d *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// MarshalYAML builds the node tree by hand; marshalling through maps
// would reorder sections and prompts.
func (d *Definition) MarshalYAML() (interface{}, error) {
	root := mapping()
	if d.Title != "" {
		appendPair(root, "title", scalar(d.Title))
	}
	sections := mapping()
	for _, s := range d.Sections {
		appendPair(sections, s.Name, s.yamlNode())
	}
	appendPair(root, "sections", sections)
	return root, nil
}

func (s *Section) yamlNode() *yaml.Node {
	node := mapping()
	if s.Shortname != "" {
		appendPair(node, "shortname", scalar(s.Shortname))
	}
	if s.Description != "" {
		appendPair(node, "description", scalar(s.Description))
	}
	if len(s.Prompts) > 0 {
		values := mapping()
		for _, p := range s.Prompts {
			appendPair(values, p.Name, p.yamlNode())
		}
		appendPair(node, "values", values)
	}
	if len(s.Options) > 0 {
		opts := &yaml.Node{Kind: yaml.SequenceNode}
		for _, o := range s.Options {
			opts.Content = append(opts.Content, o.yamlNode())
		}
		appendPair(node, "options", opts)
	}
	return node
}

func (p *Prompt) yamlNode() *yaml.Node {
	node := mapping()
	if p.Description != "" {
		appendPair(node, "description", scalar(p.Description))
	}
	if p.Kind != KindText {
		appendPair(node, "kind", scalar(string(p.Kind)))
	}
	if p.Default != "" {
		appendPair(node, "default", scalar(p.Default))
	}
	if len(p.Choices) > 0 {
		choices := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range p.Choices {
			choices.Content = append(choices.Content, c.yamlNode())
		}
		appendPair(node, "choices", choices)
	}
	if p.Details != "" {
		appendPair(node, "details", scalar(p.Details))
	}
	return node
}

func (c Choice) yamlNode() *yaml.Node {
	if c.Label == c.Value {
		return scalar(c.Value)
	}
	node := mapping()
	appendPair(node, "value", scalar(c.Value))
	appendPair(node, "label", scalar(c.Label))
	return node
}

func (o Option) yamlNode() *yaml.Node {
	if o.Description == "" {
		return scalar(o.Name)
	}
	node := mapping()
	appendPair(node, "name", scalar(o.Name))
	appendPair(node, "description", scalar(o.Description))
	return node
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
