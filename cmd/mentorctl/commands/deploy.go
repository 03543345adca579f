package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/handlers"
)

// Deploy returns the command for provisioning resources and releasing the
// application.
//
// This command handles the complete deployment lifecycle: loading
// configuration, verifying the provider session, converging infrastructure,
// pushing application settings, and uploading the packaged source.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect mentorctl.yaml)
//	--wait, -w:   Wait for the deployed app to pass its health check
func Deploy() *cobra.Command {
	var (
		configPath string
		wait       bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create or update the deployment",
		Long: `Create or update the App Service deployment.

This command converges all Azure resources for the app (resource group,
App Service plan, web app), pushes application settings from your env
file, and uploads the packaged backend source.

Every run is idempotent: resources that already exist are left in place
and the run continues. The env file itself is never uploaded.

If no config file is specified, it looks for mentorctl.yaml in the
current directory. Use 'mentorctl init' to create a configuration file.

Examples:
  # Deploy using mentorctl.yaml in current directory
  mentorctl deploy

  # Deploy using a specific config file
  mentorctl deploy -c production.yaml

  # Deploy and wait until the app answers its health check
  mentorctl deploy --wait`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath, wait)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mentorctl.yaml)")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the app to pass its health check after deploying")

	return cmd
}
