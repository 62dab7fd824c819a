package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/planterm/planterm/internal/traverse"
)

func sampleValues() []traverse.Answer {
	return []traverse.Answer{
		{Name: "vpc_id", Value: "vpc-1"},
		{Name: "cidr", Value: "10.0.0.0/16"},
		{Name: "bucket_name", Value: "my-bucket"},
	}
}

func TestRender_YAMLKeepsPromptOrder(t *testing.T) {
	t.Parallel()

	data, err := Render(sampleValues(), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "vpc_id: vpc-1\ncidr: 10.0.0.0/16\nbucket_name: my-bucket\n", string(data))
}

func TestRender_YAMLQuotesWhereNeeded(t *testing.T) {
	t.Parallel()

	data, err := Render([]traverse.Answer{{Name: "note", Value: "a: b"}}, FormatYAML)
	require.NoError(t, err)

	// Still parseable YAML with the value intact.
	var doc map[string]string
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Equal(t, "a: b", doc["note"])
}

func TestRender_JSONKeepsPromptOrder(t *testing.T) {
	t.Parallel()

	data, err := Render(sampleValues(), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"vpc_id\": \"vpc-1\",\n  \"cidr\": \"10.0.0.0/16\",\n  \"bucket_name\": \"my-bucket\"\n}\n", string(data))
}

func TestRender_JSONEscapes(t *testing.T) {
	t.Parallel()

	data, err := Render([]traverse.Answer{{Name: "msg", Value: `say "hi"`}}, FormatJSON)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, `say "hi"`, doc["msg"])
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	data, err := Render(nil, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(data))

	data, err = Render(nil, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(data))
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Render(sampleValues(), "toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "toml")
}

func TestSavePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		format string
		want   string
	}{
		{name: "plain_title", title: "Create a bucket", format: FormatYAML, want: "out/create-a-bucket.yaml"},
		{name: "json_extension", title: "Create a bucket", format: FormatJSON, want: "out/create-a-bucket.json"},
		{name: "punctuation_stripped", title: "Run wizard?", format: FormatYAML, want: "out/run-wizard.yaml"},
		{name: "empty_title_falls_back", title: "", format: FormatYAML, want: "out/wizard.yaml"},
		{name: "symbols_only_falls_back", title: "!!!", format: FormatYAML, want: "out/wizard.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, filepath.FromSlash(tt.want), SavePath("out", tt.title, tt.format))
		})
	}
}

func TestWrite_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "values.yaml")

	require.NoError(t, Write(path, []byte("vpc_id: vpc-1\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "vpc_id: vpc-1\n", string(data))
}
