package azure

import "context"

// Account describes the authenticated Azure CLI session.
type Account struct {
	SubscriptionID string `json:"id"`
	Name           string `json:"name"`
	TenantID       string `json:"tenantId"`
	User           struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"user"`
}

// PlanOpts holds the parameters for creating an App Service plan.
type PlanOpts struct {
	Name          string
	ResourceGroup string
	Location      string
	SKU           string
	Linux         bool
}

// WebAppOpts holds the parameters for creating a web app.
type WebAppOpts struct {
	Name          string
	ResourceGroup string
	Plan          string
	Runtime       string
}

// SessionVerifier defines the interface for verifying an authenticated session.
type SessionVerifier interface {
	// CurrentAccount returns the account of the active CLI session.
	// A missing or expired session surfaces as a not-logged-in error.
	CurrentAccount(ctx context.Context) (*Account, error)
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	CreateResourceGroup(ctx context.Context, name, location string) error
	DeleteResourceGroup(ctx context.Context, name string) error
}

// WebAppManager defines the interface for managing App Service plans and apps.
type WebAppManager interface {
	CreatePlan(ctx context.Context, opts PlanOpts) error
	CreateWebApp(ctx context.Context, opts WebAppOpts) error

	// SetAppSettings replaces the given keys on the app's configuration
	// store. Keys not named in settings are left untouched.
	SetAppSettings(ctx context.Context, name, resourceGroup string, settings map[string]string) error

	// SetStartupCommand sets the process launch command. The command string
	// is passed through verbatim.
	SetStartupCommand(ctx context.Context, name, resourceGroup, command string) error

	// DeployZip uploads a zip bundle as the app's running code.
	DeployZip(ctx context.Context, name, resourceGroup, zipPath string) error

	// GetHostname returns the app's public default hostname.
	GetHostname(ctx context.Context, name, resourceGroup string) (string, error)

	// StreamLogs tails the app's log stream until the context is cancelled.
	StreamLogs(ctx context.Context, name, resourceGroup string) error
}

// AppServiceManager combines all provider operations the sequencer needs.
type AppServiceManager interface {
	SessionVerifier
	ResourceGroupManager
	WebAppManager
}
