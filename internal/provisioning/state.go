package provisioning

import (
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
)

// State holds the shared results of provisioning steps. It is progressively
// populated as each step completes and is discarded at run end; nothing is
// persisted across runs.
type State struct {
	// Session results (populated by the auth step)
	Account *azure.Account

	// Configuration results (populated by the settings step)
	Settings map[string]string

	// Release results (populated by the release steps)
	ArtifactPath string
	Hostname     string

	// Per-step outcomes in execution order.
	Outcomes []StepResult
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Record appends a step outcome.
func (s *State) Record(step string, outcome Outcome, err error) {
	s.Outcomes = append(s.Outcomes, StepResult{Step: step, Outcome: outcome, Err: err})
}

// URL returns the application URL, or "" if the hostname was never
// retrieved.
func (s *State) URL() string {
	if s.Hostname == "" {
		return ""
	}
	return "https://" + s.Hostname
}
