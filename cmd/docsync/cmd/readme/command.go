// Package readme provides the readme command.
package readme

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/internal/appcontext"
)

// NewCommand creates the readme command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "readme",
		GroupID: "docs",
		Short:   "Combine the package READMEs into the root README",
		Long: `Readme reads both package READMEs, trims surrounding whitespace from each,
and writes them in order into the root README.md using the selected template.

If either package README is missing nothing is written.`,
		Example: `  docsync readme
  docsync readme --template titled
  docsync readme --dry-run > /tmp/README.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := app.Generator()
			if err != nil {
				return err
			}

			if !dryRun {
				return gen.WriteReadme(cmd.Context())
			}

			content, err := gen.BuildReadme(cmd.Context())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the combined README instead of writing it")

	return cmd
}
