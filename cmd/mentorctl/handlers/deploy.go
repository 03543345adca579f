// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/orchestration"
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
	"github.com/csiro-mentor/mentorctl/internal/probe"
	"github.com/csiro-mentor/mentorctl/internal/ui"
	"github.com/csiro-mentor/mentorctl/internal/util/prerequisites"
)

// DeploymentRunner interface for testing - matches orchestration.Sequencer.
type DeploymentRunner interface {
	Run(ctx context.Context) (*orchestration.RunResult, error)
}

// HealthProber interface for testing - matches probe.Prober.
type HealthProber interface {
	Check(ctx context.Context, baseURL, path string) (*probe.Response, error)
	Wait(ctx context.Context, baseURL, path string) (*probe.Response, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newAzureClient creates a client for the App Service provider.
	newAzureClient = func() azure.AppServiceManager {
		return azure.NewRealClient()
	}

	// newSequencer creates the deployment sequencer.
	newSequencer = func(client azure.AppServiceManager, cfg *config.Config) DeploymentRunner {
		return orchestration.NewSequencer(client, cfg)
	}

	// newProber creates a health prober.
	newProber = func() HealthProber {
		return probe.New()
	}

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile
)

// Deploy converges the App Service deployment described by the config file.
//
// The workflow:
//  1. Loads and validates the deployment configuration
//  2. Verifies required client tools are installed
//  3. Runs the fixed deployment step sequence (session, resource group,
//     plan, web app, settings, startup command, package, upload, hostname)
//  4. Renders a per-step summary
//  5. Optionally waits for the app to answer its health check
//
// The step sequence is idempotent: resources that already exist are left
// in place and the run continues. Any other failure halts the run and
// the remaining steps are reported as skipped.
func Deploy(ctx context.Context, configPath string, wait bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := checkPrerequisites(cfg); err != nil {
		return err
	}

	slog.Info("deploying", "app", cfg.AppName, "resource_group", cfg.ResourceGroup, "location", cfg.Location)

	client := newAzureClient()
	sequencer := newSequencer(client, cfg)

	result, runErr := sequencer.Run(ctx)

	fmt.Println(ui.RenderSummary(result))

	if runErr != nil {
		return runErr
	}

	if wait {
		return waitForHealth(ctx, result.URL, cfg.HealthPath)
	}

	return nil
}

// waitForHealth polls the deployed app until it answers its health check.
func waitForHealth(ctx context.Context, baseURL, healthPath string) error {
	slog.Info("waiting for app to become healthy", "url", baseURL+healthPath)

	health, err := newProber().Wait(ctx, baseURL, healthPath)
	if err != nil {
		return fmt.Errorf("app did not become healthy: %w", err)
	}

	printHealth(health)
	return nil
}

// loadConfig loads and validates the deployment configuration.
// If configPath is empty, it looks for mentorctl.yaml in the current
// directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'mentorctl init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// checkPrerequisites verifies required client tools are available.
// Enabled by default, can be disabled via prerequisites_check_enabled: false.
func checkPrerequisites(cfg *config.Config) error {
	enabled := cfg.PrerequisitesCheckEnabled == nil || *cfg.PrerequisitesCheckEnabled
	if !enabled {
		return nil
	}

	results := checkDefaultPrereqs()

	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			slog.Debug("found prerequisite", "tool", r.Tool.Name, "version", version)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("prerequisites check failed: %w", err)
	}

	return nil
}
