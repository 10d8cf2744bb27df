//nolint:gosec // Build-time tool reading and writing paths from a fixed layout
package docs

import (
	"context"
	"os"

	"github.com/agentstation/docsync/pkg/constants"
	"github.com/agentstation/docsync/pkg/errors"
)

// PropagateChangelog copies the root changelog verbatim to every target.
// Every target is attempted; failures are joined and returned together.
// Target directories are never created.
func (g *Generator) PropagateChangelog(ctx context.Context) error {
	layout := g.Layout()
	logger := g.log(ctx)

	data, err := os.ReadFile(layout.Changelog)
	if err != nil {
		return errors.WrapIO("read", layout.Changelog, err)
	}

	var errs []error
	for _, target := range layout.ChangelogTargets {
		if err := checkContext(ctx); err != nil {
			errs = append(errs, err)
			break
		}

		if err := os.WriteFile(target, data, constants.FilePermissions); err != nil {
			logger.Error().Err(err).Str("path", target).Msg("Failed to copy changelog")
			errs = append(errs, errors.WrapIO("copy", target, err))
			continue
		}

		logger.Debug().
			Str("source", layout.Changelog).
			Str("path", target).
			Msg("Copied changelog")
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info().
		Int("targets", len(layout.ChangelogTargets)).
		Msg("Propagated changelog")

	return nil
}
