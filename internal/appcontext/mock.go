package appcontext

import (
	"github.com/agentstation/docsync/internal/tools/docs"
	"github.com/agentstation/docsync/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	GeneratorFunc func() (*docs.Generator, error)
	VersionFunc   func() string
	CommitFunc    func() string
	DateFunc      func() string
	BuiltByFunc   func() string
}

// Generator returns a generator using the mock function or a default generator.
func (m *Mock) Generator() (*docs.Generator, error) {
	if m.GeneratorFunc != nil {
		return m.GeneratorFunc()
	}
	return docs.New(docs.WithLogger(logging.NewNopLogger())), nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
