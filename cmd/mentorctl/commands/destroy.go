package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes the deployment's resource group, which
// removes the web app, the App Service plan, and everything else inside
// the group in one operation.
func Destroy() *cobra.Command {
	var (
		configPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the deployment and all associated resources",
		Long: `Destroy removes all deployment resources from Azure.

This command deletes the resource group, which takes the web app, the
App Service plan, and every other resource inside the group with it.

Example:
  mentorctl destroy -c mentorctl.yaml

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mentorctl.yaml)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
