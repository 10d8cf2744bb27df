package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docsync/pkg/errors"
	"github.com/agentstation/docsync/pkg/logging"
)

func TestPropagateChangelog(t *testing.T) {
	root := newRepo(t, "a", "b", "v1.0 notes")

	g := New(WithRoot(root))
	require.NoError(t, g.PropagateChangelog(context.Background()))

	assert.Equal(t, "v1.0 notes", readFile(t, root, "packages/span_builder/CHANGELOG.md"))
	assert.Equal(t, "v1.0 notes", readFile(t, root, "packages/span_builder_test/CHANGELOG.md"))
}

func TestPropagateChangelogVerbatim(t *testing.T) {
	// whitespace and non-ASCII bytes survive untouched
	content := "\n## 1.1.0\r\n\n* fixed ✨ spans  \n\n"
	root := newRepo(t, "a", "b", content)
	writeFile(t, root, "packages/span_builder/CHANGELOG.md", "old and much longer content than the source")

	require.NoError(t, New(WithRoot(root)).PropagateChangelog(context.Background()))

	assert.Equal(t, content, readFile(t, root, "packages/span_builder/CHANGELOG.md"))
	assert.Equal(t, content, readFile(t, root, "packages/span_builder_test/CHANGELOG.md"))
	assert.Equal(t, content, readFile(t, root, "CHANGELOG.md"))
}

func TestPropagateChangelogMissingSource(t *testing.T) {
	root := newRepo(t, "a", "b", "notes")
	require.NoError(t, os.Remove(filepath.Join(root, "CHANGELOG.md")))

	err := New(WithRoot(root)).PropagateChangelog(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	assert.NoFileExists(t, filepath.Join(root, "packages/span_builder/CHANGELOG.md"))
	assert.NoFileExists(t, filepath.Join(root, "packages/span_builder_test/CHANGELOG.md"))
}

func TestPropagateChangelogMissingTargetDir(t *testing.T) {
	root := newRepo(t, "a", "b", "notes")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "packages/span_builder")))

	testLogger := logging.NewTestLogger(t)
	g := New(WithRoot(root), WithLogger(testLogger.Logger))

	err := g.PropagateChangelog(context.Background())
	require.Error(t, err)

	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "copy", ioErr.Operation)
	assert.Equal(t, filepath.Join(root, "packages/span_builder/CHANGELOG.md"), ioErr.Path)

	// the remaining target is still attempted
	assert.Equal(t, "notes", readFile(t, root, "packages/span_builder_test/CHANGELOG.md"))
	assert.NoDirExists(t, filepath.Join(root, "packages/span_builder"))
	testLogger.AssertContains(t, "Failed to copy changelog")
}

func TestPropagateChangelogAllTargetsFail(t *testing.T) {
	root := newRepo(t, "a", "b", "notes")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "packages")))

	err := New(WithRoot(root)).PropagateChangelog(context.Background())
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected joined errors")
	assert.Len(t, joined.Unwrap(), 2)
}

func TestPropagateChangelogNoTargets(t *testing.T) {
	root := newRepo(t, "a", "b", "notes")
	layout := DefaultLayout()
	layout.ChangelogTargets = nil

	assert.NoError(t, New(WithRoot(root), WithLayout(layout)).PropagateChangelog(context.Background()))
}
