//nolint:gosec // Build-time tool reading and writing paths from a fixed layout
package docs

import (
	"context"
	"os"
	"strings"

	"github.com/agentstation/docsync/pkg/constants"
	"github.com/agentstation/docsync/pkg/errors"
)

// BuildReadme reads every source document, trims it, and renders the template.
// Nothing is written; a missing source fails before any output exists.
func (g *Generator) BuildReadme(ctx context.Context) (string, error) {
	layout := g.Layout()
	logger := g.log(ctx)

	sections := make([]string, 0, len(layout.Sources))
	for _, path := range layout.Sources {
		if err := checkContext(ctx); err != nil {
			return "", err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.WrapIO("read", path, err)
		}

		logger.Debug().
			Str("path", path).
			Int("bytes", len(data)).
			Msg("Read source document")

		sections = append(sections, strings.TrimSpace(string(data)))
	}

	return g.template.Render(sections...), nil
}

// WriteReadme builds the combined README and overwrites the output file with it.
func (g *Generator) WriteReadme(ctx context.Context) error {
	content, err := g.BuildReadme(ctx)
	if err != nil {
		return err
	}

	path := g.Layout().Readme
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	g.log(ctx).Info().
		Str("path", path).
		Int("bytes", len(content)).
		Msg("Wrote combined readme")

	return nil
}
