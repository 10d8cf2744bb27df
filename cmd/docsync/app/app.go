// Package app provides the application context and dependency management
// for the docsync CLI. It centralizes configuration, logging, and the
// construction of the documentation generator used by every command.
package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/docsync/internal/appcontext"
	"github.com/agentstation/docsync/internal/tools/docs"
	"github.com/agentstation/docsync/pkg/errors"
)

// App represents the docsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger, rebuilt from config after flags are parsed unless set by WithLogger
	logger      *zerolog.Logger
	fixedLogger bool

	// Command output, stdout/stderr when nil
	out io.Writer
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and optional config file, which functional options may replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Generator builds a documentation generator from the current configuration.
func (a *App) Generator() (*docs.Generator, error) {
	tmpl, err := docs.Preset(a.config.Template)
	if err != nil {
		return nil, err
	}

	return docs.New(
		docs.WithRoot(a.config.Root),
		docs.WithTemplate(tmpl.WithTitle(a.config.Title)),
		docs.WithLogger(a.logger),
	), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "config cannot be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.fixedLogger = logger != nil
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
