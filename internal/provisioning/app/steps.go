// Package app provides the web app, application settings, and startup
// command steps.
package app

import (
	"fmt"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
)

// WebAppStep ensures the web app exists under the plan.
type WebAppStep struct{}

// NewWebAppStep creates the web app step.
func NewWebAppStep() *WebAppStep {
	return &WebAppStep{}
}

// Name implements the provisioning.Step interface.
func (s *WebAppStep) Name() string {
	return "webapp"
}

// Provision implements the provisioning.Step interface.
func (s *WebAppStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "web app", cfg.AppName)

	err := ctx.Azure.CreateWebApp(ctx, azure.WebAppOpts{
		Name:          cfg.AppName,
		ResourceGroup: cfg.ResourceGroup,
		Plan:          cfg.PlanName,
		Runtime:       cfg.Runtime,
	})
	if err != nil {
		// App names share a global hostname namespace. A taken name is
		// fatal and needs a different app_name; guessing a fallback
		// would deploy to a hostname the operator never chose.
		if azure.IsNameTaken(err) {
			return fmt.Errorf("app name %q is already taken globally, choose a different app_name: %w", cfg.AppName, err)
		}
		return fmt.Errorf("failed to create web app %s: %w", cfg.AppName, err)
	}

	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "web app", cfg.AppName)
	return nil
}

// Ignorable implements the provisioning.ErrorClassifier interface. A name
// conflict with another subscription is never ignorable; only a create of
// the operator's own existing app is.
func (s *WebAppStep) Ignorable(err error) bool {
	return azure.IsAlreadyExists(err)
}

// SettingsStep pushes the full settings map to the app's configuration
// store, overwriting existing values for the declared keys. Unrelated keys
// are left untouched.
type SettingsStep struct {
	// loadSettings resolves the settings map (injectable for tests).
	loadSettings func(envFile string) (map[string]string, error)
}

// NewSettingsStep creates the settings step.
func NewSettingsStep() *SettingsStep {
	return &SettingsStep{loadSettings: config.LoadSettings}
}

// Name implements the provisioning.Step interface.
func (s *SettingsStep) Name() string {
	return "settings"
}

// Provision implements the provisioning.Step interface.
func (s *SettingsStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	settings, err := s.loadSettings(cfg.EnvFile)
	if err != nil {
		return err
	}
	ctx.State.Settings = settings

	ctx.Observer.Printf("[settings] pushing %d settings to %s", len(settings), cfg.AppName)
	if err := ctx.Azure.SetAppSettings(ctx, cfg.AppName, cfg.ResourceGroup, settings); err != nil {
		return fmt.Errorf("failed to set app settings: %w", err)
	}
	return nil
}

// StartupStep sets the process startup command on the app. The command
// string is opaque to the sequencer.
type StartupStep struct{}

// NewStartupStep creates the startup command step.
func NewStartupStep() *StartupStep {
	return &StartupStep{}
}

// Name implements the provisioning.Step interface.
func (s *StartupStep) Name() string {
	return "startup-command"
}

// Provision implements the provisioning.Step interface.
func (s *StartupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	ctx.Observer.Printf("[startup-command] setting startup command on %s", cfg.AppName)
	if err := ctx.Azure.SetStartupCommand(ctx, cfg.AppName, cfg.ResourceGroup, cfg.StartupCommand); err != nil {
		return fmt.Errorf("failed to set startup command: %w", err)
	}
	return nil
}
