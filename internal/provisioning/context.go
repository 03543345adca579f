package provisioning

import (
	"context"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning step.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Azure    azure.AppServiceManager
	Observer Observer
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, client azure.AppServiceManager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Azure:    client,
		Observer: NewConsoleObserver(),
	}
}
