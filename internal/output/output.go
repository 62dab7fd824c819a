// Package output emits the values a wizard run collected: rendering
// them as YAML or JSON with prompt order preserved, deriving save
// paths from plan titles, and handing results to files or the
// clipboard.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/planterm/planterm/internal/traverse"
)

// Supported render formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Render serializes answers in prompt order. Both formats emit one
// flat mapping of prompt name to value.
func Render(values []traverse.Answer, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return renderYAML(values)
	case FormatJSON:
		return renderJSON(values)
	default:
		return nil, fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}

// renderYAML builds the node tree by hand; marshalling through a map
// would lose prompt order.
func renderYAML(values []traverse.Answer) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range values {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Value},
		)
	}
	return yaml.Marshal(root)
}

// renderJSON assembles the object by hand for the same reason;
// individual keys and values still go through encoding/json so
// escaping stays correct.
func renderJSON(values []traverse.Answer) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, a := range values {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		name, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if len(values) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// SavePath derives the save file location from the plan title:
// <dir>/<slug(title)>.<ext>, with the extension following the render
// format. Titles that slug to nothing fall back to "wizard".
func SavePath(dir, title, format string) string {
	name := slug.Make(title)
	if name == "" {
		name = "wizard"
	}
	ext := "yaml"
	if format == FormatJSON {
		ext = "json"
	}
	return filepath.Join(dir, name+"."+ext)
}

// Write saves rendered values, creating the directory if needed.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating save directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing values: %w", err)
	}
	return nil
}

// CopyToClipboard places rendered values on the system clipboard.
func CopyToClipboard(data []byte) error {
	return clipboard.WriteAll(string(data))
}
