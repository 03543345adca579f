// Package orchestration provides high-level workflow coordination for the
// deployment run.
//
// This package owns the ordered step list and delegates the actual work to
// the provisioning step packages. Step order matters: each step references
// resources created by the previous ones.
package orchestration

import (
	"context"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
	appsteps "github.com/csiro-mentor/mentorctl/internal/provisioning/app"
	"github.com/csiro-mentor/mentorctl/internal/provisioning/infrastructure"
	"github.com/csiro-mentor/mentorctl/internal/provisioning/release"
)

// RunResult reports the outcome of a full deployment run.
type RunResult struct {
	// URL is the application URL, empty if the run failed before the
	// hostname was retrieved.
	URL string

	// Success is true when every step completed or resolved to an
	// already-exists condition.
	Success bool

	// Steps holds the per-step outcomes in execution order.
	Steps []provisioning.StepResult
}

// Sequencer executes the fixed, ordered deployment step list.
type Sequencer struct {
	client azure.AppServiceManager
	config *config.Config
	steps  []provisioning.Step
}

// NewSequencer creates a sequencer with the standard step order.
func NewSequencer(client azure.AppServiceManager, cfg *config.Config) *Sequencer {
	return &Sequencer{
		client: client,
		config: cfg,
		steps: []provisioning.Step{
			infrastructure.NewSessionStep(),
			infrastructure.NewResourceGroupStep(),
			infrastructure.NewPlanStep(),
			appsteps.NewWebAppStep(),
			appsteps.NewSettingsStep(),
			appsteps.NewStartupStep(),
			release.NewPackageStep(),
			release.NewUploadStep(),
			release.NewHostnameStep(),
		},
	}
}

// Run executes all steps in declaration order and reports the result.
// The result is populated even when the run fails, so callers can render
// per-step outcomes.
func (s *Sequencer) Run(ctx context.Context) (*RunResult, error) {
	pCtx := provisioning.NewContext(ctx, s.config, s.client)

	err := provisioning.RunSteps(pCtx, s.steps)

	result := &RunResult{
		URL:     pCtx.State.URL(),
		Success: err == nil,
		Steps:   pCtx.State.Outcomes,
	}
	return result, err
}
