// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with a mock.
package appcontext

import (
	"github.com/agentstation/docsync/internal/tools/docs"
)

// Interface defines the application context that commands need.
// The App struct from cmd/docsync/app implements this interface.
type Interface interface {
	// Generator returns a documentation generator built from the
	// configured template and the working directory layout.
	Generator() (*docs.Generator, error)

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
