package azure

import "context"

// MockClient is a mock implementation of AppServiceManager. Each method
// delegates to the corresponding Func field when set, otherwise it returns
// a benign default.
type MockClient struct {
	CurrentAccountFunc      func(ctx context.Context) (*Account, error)
	CreateResourceGroupFunc func(ctx context.Context, name, location string) error
	DeleteResourceGroupFunc func(ctx context.Context, name string) error
	CreatePlanFunc          func(ctx context.Context, opts PlanOpts) error
	CreateWebAppFunc        func(ctx context.Context, opts WebAppOpts) error
	SetAppSettingsFunc      func(ctx context.Context, name, resourceGroup string, settings map[string]string) error
	SetStartupCommandFunc   func(ctx context.Context, name, resourceGroup, command string) error
	DeployZipFunc           func(ctx context.Context, name, resourceGroup, zipPath string) error
	GetHostnameFunc         func(ctx context.Context, name, resourceGroup string) (string, error)
	StreamLogsFunc          func(ctx context.Context, name, resourceGroup string) error
}

// CurrentAccount implements SessionVerifier.
func (m *MockClient) CurrentAccount(ctx context.Context) (*Account, error) {
	if m.CurrentAccountFunc != nil {
		return m.CurrentAccountFunc(ctx)
	}
	return &Account{SubscriptionID: "mock-subscription", Name: "mock"}, nil
}

// CreateResourceGroup implements ResourceGroupManager.
func (m *MockClient) CreateResourceGroup(ctx context.Context, name, location string) error {
	if m.CreateResourceGroupFunc != nil {
		return m.CreateResourceGroupFunc(ctx, name, location)
	}
	return nil
}

// DeleteResourceGroup implements ResourceGroupManager.
func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// CreatePlan implements WebAppManager.
func (m *MockClient) CreatePlan(ctx context.Context, opts PlanOpts) error {
	if m.CreatePlanFunc != nil {
		return m.CreatePlanFunc(ctx, opts)
	}
	return nil
}

// CreateWebApp implements WebAppManager.
func (m *MockClient) CreateWebApp(ctx context.Context, opts WebAppOpts) error {
	if m.CreateWebAppFunc != nil {
		return m.CreateWebAppFunc(ctx, opts)
	}
	return nil
}

// SetAppSettings implements WebAppManager.
func (m *MockClient) SetAppSettings(ctx context.Context, name, resourceGroup string, settings map[string]string) error {
	if m.SetAppSettingsFunc != nil {
		return m.SetAppSettingsFunc(ctx, name, resourceGroup, settings)
	}
	return nil
}

// SetStartupCommand implements WebAppManager.
func (m *MockClient) SetStartupCommand(ctx context.Context, name, resourceGroup, command string) error {
	if m.SetStartupCommandFunc != nil {
		return m.SetStartupCommandFunc(ctx, name, resourceGroup, command)
	}
	return nil
}

// DeployZip implements WebAppManager.
func (m *MockClient) DeployZip(ctx context.Context, name, resourceGroup, zipPath string) error {
	if m.DeployZipFunc != nil {
		return m.DeployZipFunc(ctx, name, resourceGroup, zipPath)
	}
	return nil
}

// GetHostname implements WebAppManager.
func (m *MockClient) GetHostname(ctx context.Context, name, resourceGroup string) (string, error) {
	if m.GetHostnameFunc != nil {
		return m.GetHostnameFunc(ctx, name, resourceGroup)
	}
	return name + ".azurewebsites.net", nil
}

// StreamLogs implements WebAppManager.
func (m *MockClient) StreamLogs(ctx context.Context, name, resourceGroup string) error {
	if m.StreamLogsFunc != nil {
		return m.StreamLogsFunc(ctx, name, resourceGroup)
	}
	return nil
}
