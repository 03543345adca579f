package config

import (
	"fmt"
	"regexp"
)

// Default resource names. Every value is overridable in the config file.
const (
	DefaultResourceGroup = "rg-csiro-mentor"
	DefaultAppName       = "csiro-mentor-app"
	DefaultPlanName      = "plan-csiro-mentor"
	DefaultLocation      = "australiaeast"
	DefaultSKU           = "B1"
	DefaultRuntime       = "PYTHON:3.11"
	DefaultSourceDir     = "backend"
	DefaultEnvFile       = ".env"
	DefaultHealthPath    = "/health"
)

// DefaultStartupCommand launches the ASGI app. Passed to the provider
// verbatim.
const DefaultStartupCommand = "gunicorn --bind=0.0.0.0 --timeout 600 -w 2 -k uvicorn.workers.UvicornWorker app:app"

// appNameRegex validates site names: 2-60 lowercase alphanumeric with hyphens,
// no leading or trailing hyphen. The name becomes part of a global hostname.
var appNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,58}[a-z0-9]$`)

// Config holds the deployment configuration.
type Config struct {
	AppName        string `mapstructure:"app_name" yaml:"app_name"`
	ResourceGroup  string `mapstructure:"resource_group" yaml:"resource_group"`
	PlanName       string `mapstructure:"plan_name" yaml:"plan_name"`
	Location       string `mapstructure:"location" yaml:"location"`
	SKU            string `mapstructure:"sku" yaml:"sku"`
	Runtime        string `mapstructure:"runtime" yaml:"runtime"`
	StartupCommand string `mapstructure:"startup_command" yaml:"startup_command"`
	SourceDir      string `mapstructure:"source_dir" yaml:"source_dir"`
	EnvFile        string `mapstructure:"env_file" yaml:"env_file"`
	HealthPath     string `mapstructure:"health_path" yaml:"health_path"`

	PrerequisitesCheckEnabled *bool `mapstructure:"prerequisites_check_enabled" yaml:"prerequisites_check_enabled,omitempty"`
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.ResourceGroup == "" {
		c.ResourceGroup = DefaultResourceGroup
	}
	if c.PlanName == "" {
		c.PlanName = DefaultPlanName
	}
	if c.Location == "" {
		c.Location = DefaultLocation
	}
	if c.SKU == "" {
		c.SKU = DefaultSKU
	}
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	if c.StartupCommand == "" {
		c.StartupCommand = DefaultStartupCommand
	}
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.EnvFile == "" {
		c.EnvFile = DefaultEnvFile
	}
	if c.HealthPath == "" {
		c.HealthPath = DefaultHealthPath
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !appNameRegex.MatchString(c.AppName) {
		return fmt.Errorf("app_name %q is invalid: must be 2-60 lowercase alphanumeric characters or hyphens", c.AppName)
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("resource_group is required")
	}
	if c.PlanName == "" {
		return fmt.Errorf("plan_name is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if c.HealthPath != "" && c.HealthPath[0] != '/' {
		return fmt.Errorf("health_path %q must start with '/'", c.HealthPath)
	}
	return nil
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
