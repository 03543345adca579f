// Package infrastructure provides the session, resource group, and App
// Service plan steps.
package infrastructure

import (
	"fmt"

	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
)

// SessionStep verifies that an authenticated provider session exists.
// There is no retry here: a missing session needs the operator to log in.
type SessionStep struct{}

// NewSessionStep creates the session verification step.
func NewSessionStep() *SessionStep {
	return &SessionStep{}
}

// Name implements the provisioning.Step interface.
func (s *SessionStep) Name() string {
	return "session"
}

// Provision implements the provisioning.Step interface.
func (s *SessionStep) Provision(ctx *provisioning.Context) error {
	account, err := ctx.Azure.CurrentAccount(ctx)
	if err != nil {
		if azure.IsNotLoggedIn(err) {
			return fmt.Errorf("no authenticated session, run 'az login' first: %w", err)
		}
		return fmt.Errorf("failed to verify session: %w", err)
	}

	ctx.State.Account = account
	ctx.Observer.Printf("[session] authenticated as %s (subscription %s)",
		account.User.Name, account.SubscriptionID)
	return nil
}

// ResourceGroupStep ensures the resource group exists.
type ResourceGroupStep struct{}

// NewResourceGroupStep creates the resource group step.
func NewResourceGroupStep() *ResourceGroupStep {
	return &ResourceGroupStep{}
}

// Name implements the provisioning.Step interface.
func (s *ResourceGroupStep) Name() string {
	return "resource-group"
}

// Provision implements the provisioning.Step interface.
func (s *ResourceGroupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "resource group", cfg.ResourceGroup)

	if err := ctx.Azure.CreateResourceGroup(ctx, cfg.ResourceGroup, cfg.Location); err != nil {
		return fmt.Errorf("failed to create resource group %s: %w", cfg.ResourceGroup, err)
	}

	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "resource group", cfg.ResourceGroup)
	return nil
}

// Ignorable implements the provisioning.ErrorClassifier interface.
func (s *ResourceGroupStep) Ignorable(err error) bool {
	return azure.IsAlreadyExists(err)
}

// PlanStep ensures the App Service plan exists under the resource group.
type PlanStep struct{}

// NewPlanStep creates the plan step.
func NewPlanStep() *PlanStep {
	return &PlanStep{}
}

// Name implements the provisioning.Step interface.
func (s *PlanStep) Name() string {
	return "plan"
}

// Provision implements the provisioning.Step interface.
func (s *PlanStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "app service plan", cfg.PlanName)

	err := ctx.Azure.CreatePlan(ctx, azure.PlanOpts{
		Name:          cfg.PlanName,
		ResourceGroup: cfg.ResourceGroup,
		Location:      cfg.Location,
		SKU:           cfg.SKU,
		Linux:         true,
	})
	if err != nil {
		return fmt.Errorf("failed to create plan %s: %w", cfg.PlanName, err)
	}

	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "app service plan", cfg.PlanName)
	return nil
}

// Ignorable implements the provisioning.ErrorClassifier interface.
func (s *PlanStep) Ignorable(err error) bool {
	return azure.IsAlreadyExists(err)
}
