// Package docs builds the combined repository README from the package
// READMEs and propagates the root CHANGELOG into every package.
package docs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/docsync/pkg/errors"
	"github.com/agentstation/docsync/pkg/logging"
)

// Generator handles documentation generation
type Generator struct {
	root     string
	layout   Layout
	template Template
	logger   *zerolog.Logger
}

// Option is a functional option for configuring the Generator
type Option func(*Generator)

// WithRoot sets the repository root that layout paths are relative to
func WithRoot(dir string) Option {
	return func(g *Generator) {
		g.root = dir
	}
}

// WithLayout replaces the default file layout
func WithLayout(layout Layout) Option {
	return func(g *Generator) {
		g.layout = layout
	}
}

// WithTemplate sets the template wrapped around the package READMEs
func WithTemplate(t Template) Option {
	return func(g *Generator) {
		g.template = t
	}
}

// WithLogger sets the logger used when the context carries none
func WithLogger(logger *zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a new documentation generator
func New(opts ...Option) *Generator {
	defaultTemplate, _ := Preset("")

	g := &Generator{
		root:     ".",
		layout:   DefaultLayout(),
		template: defaultTemplate,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Layout returns the layout with every path resolved against the root
func (g *Generator) Layout() Layout {
	return g.layout.Resolve(g.root)
}

// Template returns the template used to render the README
func (g *Generator) Template() Template {
	return g.template
}

// Generate writes the combined README, then propagates the changelog.
// It stops at the first failing step.
func (g *Generator) Generate(ctx context.Context) error {
	if err := g.Layout().Validate(); err != nil {
		return err
	}

	logger := g.log(ctx)

	if err := g.WriteReadme(ctx); err != nil {
		return errors.WrapResource("generate", "readme", "", err)
	}

	if err := checkContext(ctx); err != nil {
		return err
	}

	if err := g.PropagateChangelog(ctx); err != nil {
		return errors.WrapResource("propagate", "changelog", "", err)
	}

	logger.Info().
		Str("template", g.template.Name).
		Msg("Documentation generation complete")

	return nil
}

// log returns the context logger, falling back to the generator's own.
func (g *Generator) log(ctx context.Context) *zerolog.Logger {
	if g.logger != nil && logging.FromContext(ctx) == logging.Default() {
		return g.logger
	}
	return logging.FromContext(ctx)
}

// checkContext reports a canceled or expired context as ErrCanceled.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}
	return nil
}
