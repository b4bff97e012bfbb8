package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"posts.json", FormatJSON, false},
		{"events.NDJSON", FormatNDJSON, false},
		{"members.jsonl", FormatNDJSON, false},
		{"ventures.yaml", FormatYAML, false},
		{"ventures.yml", FormatYAML, false},
		{"-", FormatJSON, false},
		{"notes.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   int
	}{
		{"json array", FormatJSON, `[{"titulo":"a"},{"titulo":"b"}]`, 2},
		{"json data envelope", FormatJSON, `{"data":[{"titulo":"a"}],"total":1}`, 1},
		{"json items envelope", FormatJSON, `{"items":[{"titulo":"a"},{"titulo":"b"}]}`, 2},
		{"json empty document", FormatJSON, "  \n", 0},
		{"ndjson", FormatNDJSON, "{\"titulo\":\"a\"}\n\n{\"titulo\":\"b\"}\n", 2},
		{"yaml list", FormatYAML, "- titulo: a\n  likes: 3\n- nombre: b\n", 2},
		{"yaml envelope", FormatYAML, "data:\n  - titulo: a\n", 1},
		{"yaml empty", FormatYAML, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestDecode_Values(t *testing.T) {
	got, err := Decode(strings.NewReader("- titulo: Taller\n  likes: 3\n  categoria: Tech\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Taller", got[0]["titulo"])
	assert.Equal(t, 3, got[0]["likes"])

	got, err = Decode(strings.NewReader(`[{"likes": 3}]`), FormatJSON)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got[0]["likes"], 0)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr error
	}{
		{"json object without envelope", FormatJSON, `{"titulo":"a"}`, ErrNotACollection},
		{"json scalar elements", FormatJSON, `[1,2]`, ErrNotACollection},
		{"yaml scalar", FormatYAML, "just text", ErrNotACollection},
		{"unknown format", Format("csv"), "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`[{"titulo":`), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("malformed ndjson line", func(t *testing.T) {
		_, err := Decode(strings.NewReader("{\"a\":1}\nnot json\n"), FormatNDJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestLoadAll_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	posts := writeFile(t, dir, "posts.json", `[{"titulo":"post-1"},{"titulo":"post-2"}]`)
	events := writeFile(t, dir, "events.ndjson", "{\"nombre\":\"event-1\"}\n")
	ventures := writeFile(t, dir, "ventures.yaml", "- nombre: venture-1\n- nombre: venture-2\n")

	got, err := LoadAll(context.Background(), []string{posts, events, ventures})
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "post-1", got[0]["titulo"])
	assert.Equal(t, "post-2", got[1]["titulo"])
	assert.Equal(t, "event-1", got[2]["nombre"])
	assert.Equal(t, "venture-1", got[3]["nombre"])
	assert.Equal(t, "venture-2", got[4]["nombre"])
}

func TestLoadAll_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "posts.json", `[]`)

	_, err := LoadAll(context.Background(), []string{good, filepath.Join(dir, "missing.json")})
	assert.Error(t, err)

	bad := writeFile(t, dir, "notes.txt", "hello")
	_, err = LoadAll(context.Background(), []string{good, bad})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	got, err := LoadAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
