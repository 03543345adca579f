package wizard

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
)

// appNameRegex validates site name format: 2-60 lowercase alphanumeric with
// hyphens, no leading or trailing hyphen.
var appNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,58}[a-z0-9]$`)

// LocationOptions lists the Azure regions offered by the wizard.
var LocationOptions = []huh.Option[string]{
	huh.NewOption("Australia East (Sydney)", "australiaeast"),
	huh.NewOption("Australia Southeast (Melbourne)", "australiasoutheast"),
	huh.NewOption("Southeast Asia (Singapore)", "southeastasia"),
	huh.NewOption("East US", "eastus"),
	huh.NewOption("West Europe", "westeurope"),
}

// SKUOptions lists the App Service plan tiers offered by the wizard.
var SKUOptions = []huh.Option[string]{
	huh.NewOption("B1 — Basic, 1 core / 1.75 GB", "B1"),
	huh.NewOption("B2 — Basic, 2 cores / 3.5 GB", "B2"),
	huh.NewOption("S1 — Standard, 1 core / 1.75 GB", "S1"),
	huh.NewOption("P1v3 — Premium, 2 cores / 8 GB", "P1v3"),
}

// RuntimeOptions lists the Linux runtime stacks offered by the wizard.
var RuntimeOptions = []huh.Option[string]{
	huh.NewOption("Python 3.11", "PYTHON:3.11"),
	huh.NewOption("Python 3.12", "PYTHON:3.12"),
	huh.NewOption("Python 3.10", "PYTHON:3.10"),
}

// ValidateAppName checks that a site name is usable as a global hostname
// label.
func ValidateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("app name is required")
	}
	if !appNameRegex.MatchString(name) {
		return fmt.Errorf("must be 2-60 lowercase alphanumeric characters or hyphens")
	}
	return nil
}
