package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/cmd/docsync/cmd/changelog"
	configcmd "github.com/agentstation/docsync/cmd/docsync/cmd/config"
	"github.com/agentstation/docsync/cmd/docsync/cmd/readme"
	"github.com/agentstation/docsync/cmd/docsync/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Documentation commands
	rootCmd.AddCommand(readme.NewCommand(a))
	rootCmd.AddCommand(changelog.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(configcmd.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
