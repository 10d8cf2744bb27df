package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docsync/internal/appcontext"
)

func mockApp() *appcontext.Mock {
	return &appcontext.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "deadbeef" },
		DateFunc:    func() string { return "2024-05-01" },
		BuiltByFunc: func() string { return "ci" },
	}
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewCommand(mockApp())
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "docsync 1.2.3\n", out.String())
}

func TestVersionCommandVerbose(t *testing.T) {
	out := &bytes.Buffer{}
	root := NewCommand(mockApp())
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.SetOut(out)
	root.SetArgs([]string{"-v"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "docsync 1.2.3\n")
	assert.Contains(t, out.String(), "commit:   deadbeef")
	assert.Contains(t, out.String(), "built:    2024-05-01")
	assert.Contains(t, out.String(), "built by: ci")
}

func TestVersionCommandDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewCommand(&appcontext.Mock{})
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "docsync dev\n", out.String())
}
