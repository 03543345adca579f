package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/handlers"
)

// Init returns the command for interactively creating a deployment
// configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "mentorctl.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring the deployment step by
step. It will ask about:

  - App name (globally unique hostname label)
  - Azure region
  - App Service plan tier
  - Runtime stack
  - Source directory and env file locations

Secrets never end up in the generated file; they stay in your env file
and are pushed as application settings at deploy time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mentorctl.yaml", "Output file path")

	return cmd
}
