package azure

import (
	"context"
	"errors"
	"testing"
)

// TestMockClient_InterfaceCompliance verifies MockClient implements AppServiceManager.
func TestMockClient_InterfaceCompliance(_ *testing.T) {
	var _ AppServiceManager = (*MockClient)(nil)
}

func TestMockClient_Defaults(t *testing.T) {
	m := &MockClient{}
	ctx := context.Background()

	account, err := m.CurrentAccount(ctx)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if account.SubscriptionID != "mock-subscription" {
		t.Errorf("expected 'mock-subscription', got %q", account.SubscriptionID)
	}

	if err := m.CreateResourceGroup(ctx, "rg", "loc"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	host, err := m.GetHostname(ctx, "app", "rg")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if host != "app.azurewebsites.net" {
		t.Errorf("expected default hostname, got %q", host)
	}
}

func TestMockClient_CustomFunc(t *testing.T) {
	expectedErr := errors.New("custom error")
	m := &MockClient{
		CreateWebAppFunc: func(_ context.Context, opts WebAppOpts) error {
			if opts.Name != "test-app" {
				t.Errorf("expected name 'test-app', got %q", opts.Name)
			}
			return expectedErr
		},
	}

	err := m.CreateWebApp(context.Background(), WebAppOpts{Name: "test-app"})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}
