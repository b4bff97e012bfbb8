package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidad/feedquery/internal/cli"
	"github.com/comunidad/feedquery/internal/config"
	"github.com/comunidad/feedquery/internal/query"
)

type queryJSON struct {
	Result struct {
		Items      []map[string]any `json:"items"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		TotalPages int              `json:"total_pages"`
	} `json:"result"`
	Window struct {
		CurrentPage  int   `json:"current_page"`
		TotalPages   int   `json:"total_pages"`
		VisiblePages []int `json:"visible_pages"`
		StartItem    int   `json:"start_item"`
		EndItem      int   `json:"end_item"`
	} `json:"window"`
}

func runQueryJSON(t *testing.T, args ...string) queryJSON {
	t.Helper()
	out, _, err := executeCmd(t, append([]string{"query", "--output", "json"}, args...)...)
	require.NoError(t, err)

	var got queryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func titles(t *testing.T, items []map[string]any) []string {
	t.Helper()
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, key := range []string{"titulo", "title", "nombre"} {
			if s, ok := item[key].(string); ok {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func TestQuery_SortKeys(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "default is newest first",
			want: []string{"Zapatos reciclados", "Taller de Go", "árbol de decisiones", "Diseño de marca", "Banco de tiempo"},
		},
		{
			name: "oldest",
			args: []string{"--sort", "oldest"},
			want: []string{"Banco de tiempo", "Diseño de marca", "árbol de decisiones", "Taller de Go", "Zapatos reciclados"},
		},
		{
			name: "oldest descending is newest first",
			args: []string{"--sort", "oldest", "--order", "desc"},
			want: []string{"Zapatos reciclados", "Taller de Go", "árbol de decisiones", "Diseño de marca", "Banco de tiempo"},
		},
		{
			name: "popular",
			args: []string{"--sort", "popular"},
			want: []string{"Diseño de marca", "Banco de tiempo", "Taller de Go", "árbol de decisiones", "Zapatos reciclados"},
		},
		{
			name: "title uses Spanish collation",
			args: []string{"--sort", "title"},
			want: []string{"árbol de decisiones", "Banco de tiempo", "Diseño de marca", "Taller de Go", "Zapatos reciclados"},
		},
		{
			name: "none keeps input order",
			args: []string{"--sort", "none"},
			want: []string{"Taller de Go", "Diseño de marca", "árbol de decisiones", "Banco de tiempo", "Zapatos reciclados"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runQueryJSON(t, append([]string{"-i", posts}, tc.args...)...)
			assert.Equal(t, 5, got.Result.Total)
			assert.Equal(t, tc.want, titles(t, got.Result.Items))
		})
	}
}

func TestQuery_FiltersAndPaging(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	t.Run("category ignores case", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--category", "TECH")
		assert.Equal(t, []string{"Taller de Go", "árbol de decisiones"}, titles(t, got.Result.Items))
	})

	t.Run("category sentinel keeps everything", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--category", "Todas")
		assert.Equal(t, 5, got.Result.Total)
	})

	t.Run("search matches description", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--search", "SERVICIOS")
		assert.Equal(t, []string{"Banco de tiempo"}, titles(t, got.Result.Items))
	})

	t.Run("second page", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--per-page", "2", "--page", "2")
		assert.Equal(t, []string{"árbol de decisiones", "Diseño de marca"}, titles(t, got.Result.Items))
		assert.Equal(t, 3, got.Result.TotalPages)
		assert.Equal(t, 2, got.Window.CurrentPage)
		assert.Equal(t, []int{1, 2, 3}, got.Window.VisiblePages)
		assert.Equal(t, 3, got.Window.StartItem)
		assert.Equal(t, 4, got.Window.EndItem)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--page", "9")
		assert.Empty(t, got.Result.Items)
		assert.Equal(t, 5, got.Result.Total)
		assert.Equal(t, 9, got.Result.Page)
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		got := runQueryJSON(t, "-i", posts, "--page=-3", "--per-page", "2")
		assert.Equal(t, 1, got.Result.Page)
		assert.Len(t, got.Result.Items, 2)
	})

	t.Run("inputs are merged in order", func(t *testing.T) {
		more := writeFixture(t, "more.yaml", "- titulo: Extra\n  fecha: 2020-01-01\n")
		got := runQueryJSON(t, "-i", posts, "-i", more, "--sort", "none")
		assert.Equal(t, 6, got.Result.Total)
		assert.Equal(t, "Extra", titles(t, got.Result.Items)[5])
	})
}

func TestQuery_ConfigDefaults(t *testing.T) {
	setupCLITest(t)
	t.Setenv("FEEDQUERY_ITEMS_PER_PAGE", "2")
	posts := writeFixture(t, "posts.json", postsJSON)
	cfgPath := writeFixture(t, "feedquery.yaml", "query:\n  default_sort: title\n")

	got := runQueryJSON(t, "--config", cfgPath, "-i", posts)
	assert.Equal(t, 3, got.Result.TotalPages)
	assert.Equal(t, []string{"árbol de decisiones", "Banco de tiempo"}, titles(t, got.Result.Items))
}

func TestQuery_Table(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	out, _, err := executeCmd(t, "query", "-i", posts)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "Zapatos reciclados")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "Showing 1-5 of 5")

	out, _, err = executeCmd(t, "query", "-i", posts, "--search", "no existe")
	require.NoError(t, err)
	assert.Contains(t, out, "No records match the given filters.")
	assert.Contains(t, out, "No results")
}

func TestQuery_NDJSON(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	out, _, err := executeCmd(t, "query", "-i", posts, "--category", "tech", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var summary map[string]int
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &summary))
	assert.Equal(t, 2, summary["total"])
	assert.Equal(t, 1, summary["start_item"])
	assert.Equal(t, 2, summary["end_item"])

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &first))
	assert.Equal(t, "Taller de Go", first["titulo"])
}

func TestQuery_Errors(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no input", args: []string{"query"}, wantErr: cli.ErrNoInputs},
		{name: "bad sort", args: []string{"query", "-i", posts, "--sort", "fecha"}, wantErr: query.ErrInvalidSortBy},
		{name: "bad order", args: []string{"query", "-i", posts, "--order", "up"}, wantErr: query.ErrInvalidSortOrder},
		{name: "bad output", args: []string{"query", "-i", posts, "--output", "xml"}, wantErr: config.ErrInvalidFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := executeCmd(t, "query", "-i", posts+".missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading collections")
	})
}
