package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/handlers"
)

// Logs returns the command for tailing application logs.
func Logs() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Stream live application logs",
		Long: `Stream live application logs from the web app.

Attaches to the App Service log stream and prints output until
interrupted with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Logs(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mentorctl.yaml)")

	return cmd
}
