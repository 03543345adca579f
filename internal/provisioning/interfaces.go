// Package provisioning provides shared types and interfaces for the
// deployment sequencer.
//
// The provisioning domain is organized into focused subpackages:
//   - infrastructure/ — resource group and App Service plan
//   - app/ — web app, application settings, startup command
//   - release/ — artifact build, zip upload, hostname retrieval
//
// This root package contains the step contract, run state, and the
// sequential pipeline that executes steps in declaration order.
package provisioning

// Step defines the interface for a provisioning step.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Provision executes the step's action against the provider.
	Provision(ctx *Context) error
}

// ErrorClassifier is implemented by steps whose create actions may fail
// because the resource already exists in the desired shape. Such failures
// are treated as success and the run continues; everything else is fatal.
type ErrorClassifier interface {
	// Ignorable reports whether the error is an "already exists"
	// condition for this step.
	Ignorable(err error) bool
}

// Outcome is the per-step result recorded in run state.
type Outcome string

const (
	// OutcomeCompleted indicates the step's action succeeded.
	OutcomeCompleted Outcome = "completed"
	// OutcomeAlreadyExists indicates the action failed with an ignorable
	// already-exists condition, treated as success.
	OutcomeAlreadyExists Outcome = "already-exists"
	// OutcomeFailed indicates a fatal failure that halted the run.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped indicates the step never ran because an earlier step
	// failed.
	OutcomeSkipped Outcome = "skipped"
)

// StepResult pairs a step name with its outcome.
type StepResult struct {
	Step    string
	Outcome Outcome
	Err     error
}
