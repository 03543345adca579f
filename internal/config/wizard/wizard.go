// Package wizard provides the interactive configuration wizard for
// mentorctl init.
package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/csiro-mentor/mentorctl/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	AppName   string
	Location  string
	SKU       string
	Runtime   string
	SourceDir string
	EnvFile   string
}

// RunWizard runs the interactive configuration wizard. The context is
// used for cancellation support (e.g. Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		AppName:   config.DefaultAppName,
		Location:  config.DefaultLocation,
		SKU:       config.DefaultSKU,
		Runtime:   config.DefaultRuntime,
		SourceDir: config.DefaultSourceDir,
		EnvFile:   config.DefaultEnvFile,
	}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("app identity: %w", err)
	}

	if err := runPlanGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("service plan: %w", err)
	}

	if err := runSourceGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("source layout: %w", err)
	}

	return result, nil
}

// runIdentityGroup prompts for app name and region.
func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App Name").
				Description("Globally unique; becomes <name>.azurewebsites.net").
				Placeholder(config.DefaultAppName).
				Value(&result.AppName).
				Validate(ValidateAppName),
			huh.NewSelect[string]().
				Title("Region").
				Description("Azure region for all resources").
				Options(LocationOptions...).
				Value(&result.Location),
		).Title("App Identity"),
	).RunWithContext(ctx)
}

// runPlanGroup prompts for plan tier and runtime.
func runPlanGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Plan SKU").
				Description("App Service plan pricing tier").
				Options(SKUOptions...).
				Value(&result.SKU),
			huh.NewSelect[string]().
				Title("Runtime").
				Description("Linux runtime stack for the web app").
				Options(RuntimeOptions...).
				Value(&result.Runtime),
		).Title("Service Plan"),
	).RunWithContext(ctx)
}

// runSourceGroup prompts for the application source layout.
func runSourceGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source Directory").
				Description("Directory packaged and uploaded on deploy").
				Placeholder(config.DefaultSourceDir).
				Value(&result.SourceDir),
			huh.NewInput().
				Title("Env File").
				Description("Local secrets file; read for settings, never uploaded").
				Placeholder(config.DefaultEnvFile).
				Value(&result.EnvFile),
		).Title("Source Layout"),
	).RunWithContext(ctx)
}

// ToConfig converts wizard answers into a validated configuration.
func (r *Result) ToConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.AppName = r.AppName
	cfg.Location = r.Location
	cfg.SKU = r.SKU
	cfg.Runtime = r.Runtime
	cfg.SourceDir = r.SourceDir
	cfg.EnvFile = r.EnvFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
