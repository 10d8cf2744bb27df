// Package changelog provides the changelog command.
package changelog

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/internal/appcontext"
)

// NewCommand creates the changelog command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "changelog",
		GroupID: "docs",
		Short:   "Copy the root CHANGELOG into every package",
		Long: `Changelog copies CHANGELOG.md byte-for-byte into packages/span_builder and
packages/span_builder_test, overwriting the existing files.

Every destination is attempted even if an earlier one fails; package
directories are never created.`,
		Example: `  docsync changelog`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := app.Generator()
			if err != nil {
				return err
			}
			return gen.PropagateChangelog(cmd.Context())
		},
	}
}
