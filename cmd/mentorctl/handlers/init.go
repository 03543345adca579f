package handlers

import (
	"context"
	"fmt"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// confirmOverwrite asks before replacing an existing config file.
	confirmOverwrite = wizard.ConfirmOverwrite

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Init cancelled")
			return nil
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg, err := result.ToConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("mentorctl - CSIRO Mentor on Azure App Service")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  App:            %s\n", cfg.AppName)
	fmt.Printf("  Resource Group: %s\n", cfg.ResourceGroup)
	fmt.Printf("  Region:         %s\n", cfg.Location)
	fmt.Printf("  Plan:           %s (%s)\n", cfg.PlanName, cfg.SKU)
	fmt.Printf("  Runtime:        %s\n", cfg.Runtime)
	fmt.Printf("  Source:         %s\n", cfg.SourceDir)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Sign in to Azure:")
	fmt.Println("     az login")
	fmt.Println()
	fmt.Printf("  2. Put your application secrets in %s\n", cfg.EnvFile)
	fmt.Println()
	fmt.Println("  3. Deploy:")
	fmt.Println("     mentorctl deploy")
	fmt.Println()
}
