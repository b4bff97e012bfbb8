package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comunidad/feedquery/internal/cli"
)

const postsJSON = `[
  {"titulo": "Taller de Go", "categoria": "Tech", "fecha": "2024-03-01", "likes": 10, "comentarios": 2},
  {"title": "Diseño de marca", "category": "Design", "date": "2024-01-15", "views": 100},
  {"nombre": "árbol de decisiones", "tipo": "tech", "createdAt": "2024-02-10", "likes": "5"},
  {"titulo": "Banco de tiempo", "categoria": "Comunidad", "fecha": "2023-12-24", "asistentes": 40,
   "descripcion": "Intercambio de servicios"},
  {"titulo": "Zapatos reciclados", "categoria": "Design", "fecha": "2024-04-20", "me_gusta": 1}
]`

// setupCLITest isolates the command from the user's home and environment and
// returns the feedquery home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FEEDQUERY_HOME", home)
	t.Setenv("FEEDQUERY_LOG_LEVEL", "error")
	t.Setenv("FEEDQUERY_LOG_FORMAT", "")
	t.Setenv("FEEDQUERY_OUTPUT_FORMAT", "")
	t.Setenv("FEEDQUERY_ITEMS_PER_PAGE", "")
	return home
}

// writeFixture writes content to name inside a temp dir and returns the path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
