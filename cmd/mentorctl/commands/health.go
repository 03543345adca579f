package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/handlers"
)

// Health returns the command for checking the deployed application.
//
// Flags:
//
//	--config, -c: Path to deployment configuration YAML file
//	--wait, -w:   Keep polling until the app answers or retries run out
func Health() *cobra.Command {
	var (
		configPath string
		wait       bool
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the deployed application's health endpoint",
		Long: `Check the deployed application's health endpoint.

Queries the web app's hostname from Azure and issues an HTTP request
against the configured health path. With --wait, polls with backoff
until the app answers, which is useful right after a deployment while
the app is still building and booting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Health(cmd.Context(), configPath, wait)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mentorctl.yaml)")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Poll until the app answers")

	return cmd
}
