// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/internal/appcontext"
)

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the docsync CLI. With -v it adds build details.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "docsync %s\n", app.Version())

			// -v is inherited from the root command; absent when run standalone
			if verbose, err := cmd.Flags().GetBool("verbose"); err != nil || !verbose {
				return
			}
			fmt.Fprintf(out, "  commit:   %s\n", app.Commit())
			fmt.Fprintf(out, "  built:    %s\n", app.Date())
			fmt.Fprintf(out, "  built by: %s\n", app.BuiltBy())
			fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
