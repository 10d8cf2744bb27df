package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates path under root, including parent directories.
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

// readFile returns the content of path under root.
func readFile(t *testing.T, root, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	return string(data)
}

// newRepo lays out a span_builder style repository in a temp dir.
func newRepo(t *testing.T, builderReadme, testReadme, changelog string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "packages/span_builder/README.md", builderReadme)
	writeFile(t, root, "packages/span_builder_test/README.md", testReadme)
	writeFile(t, root, "CHANGELOG.md", changelog)
	return root
}

func plainTemplate(t *testing.T) Template {
	t.Helper()
	tmpl, err := Preset(TemplatePlain)
	require.NoError(t, err)
	return tmpl
}
