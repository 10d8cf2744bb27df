package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/pkg/errors"
	"github.com/agentstation/docsync/pkg/logging"
)

// Execute runs the docsync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "docsync",
		Short:   "Combine package READMEs and propagate the CHANGELOG",
		Version: a.version,
		Long: `Docsync keeps the repository documentation in sync.

Run without arguments it:

1. Reads packages/span_builder/README.md and packages/span_builder_test/README.md
2. Combines them into the root README.md using the selected template
3. Copies the root CHANGELOG.md into both package directories

All paths are relative to the current directory.`,
		Example: `  docsync                        # Rebuild README.md and copy CHANGELOG.md
  docsync --template plain       # Combine without title or links
  docsync readme --dry-run       # Print the combined README
  docsync changelog              # Only copy CHANGELOG.md`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runGenerate,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "docs",
		Title: "Documentation Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.docsync.yaml or $HOME/.docsync.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringP("template", "t", "", "README template: plain, titled, read-more, related")
	flags.String("title", "", `README title override ("auto" derives it from the package name)`)

	rootCmd.SetVersionTemplate("docsync {{.Version}}\n")

	if a.out != nil {
		rootCmd.SetOut(a.out)
		rootCmd.SetErr(a.out)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")
	template := mustGetString(cmd, "template")
	title := mustGetString(cmd, "title")

	if cmd.Flags().Changed("config") {
		configFile := mustGetString(cmd, "config")
		config, err := LoadConfig(configFile)
		if err != nil {
			return errors.WrapResource("load", "config", configFile, err)
		}
		config.Root = a.config.Root
		a.config = config
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel, template, title)

	if !a.fixedLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// runGenerate rebuilds the README and propagates the changelog.
func (a *App) runGenerate(cmd *cobra.Command, _ []string) error {
	gen, err := a.Generator()
	if err != nil {
		return err
	}
	return gen.Generate(cmd.Context())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
