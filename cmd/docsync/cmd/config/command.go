// Package config provides the config command, which prints the effective
// file layout and README template.
package config

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/docsync/internal/appcontext"
	"github.com/agentstation/docsync/internal/tools/docs"
	"github.com/agentstation/docsync/pkg/errors"
)

// Effective is the resolved configuration printed by the command.
type Effective struct {
	Template docs.Template `yaml:"template"`
	Layout   docs.Layout   `yaml:"layout"`
}

// NewCommand creates the config command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective layout and template as YAML",
		Example: `  docsync config
  docsync config --template related --title auto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := app.Generator()
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(Effective{
				Template: gen.Template(),
				Layout:   gen.Layout(),
			})
			if err != nil {
				return errors.WrapResource("marshal", "config", "", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
