package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidad/feedquery/internal/cli"
)

func TestCategories(t *testing.T) {
	setupCLITest(t)
	posts := writeFixture(t, "posts.json", postsJSON)

	t.Run("table", func(t *testing.T) {
		out, _, err := executeCmd(t, "categories", "-i", posts)
		require.NoError(t, err)
		assert.Equal(t, "Comunidad\nDesign\nTech\ntech\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := executeCmd(t, "categories", "-i", posts, "-o", "json")
		require.NoError(t, err)

		var got []string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []string{"Comunidad", "Design", "Tech", "tech"}, got)
	})

	t.Run("empty collection", func(t *testing.T) {
		empty := writeFixture(t, "empty.json", `{"data": []}`)
		out, _, err := executeCmd(t, "categories", "-i", empty, "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, "[]", out)
	})

	t.Run("no input", func(t *testing.T) {
		_, _, err := executeCmd(t, "categories")
		require.ErrorIs(t, err, cli.ErrNoInputs)
	})
}
