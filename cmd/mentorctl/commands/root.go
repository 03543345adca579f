// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/csiro-mentor/mentorctl/internal/util/logging"
)

// Root returns the root command for the mentorctl CLI.
//
// The root command serves as the entry point and parent for all subcommands.
// It provides basic CLI metadata and organizes the command hierarchy.
func Root() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "mentorctl",
		Short: "Deploy the CSIRO Mentor backend to Azure App Service",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logging.Initialize(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Health())
	cmd.AddCommand(Logs())
	cmd.AddCommand(Destroy())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
