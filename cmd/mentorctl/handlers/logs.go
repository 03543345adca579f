package handlers

import (
	"context"
	"errors"
	"log/slog"
)

// Logs handles the logs command.
//
// It attaches to the App Service log stream and prints output until the
// context is cancelled (Ctrl+C).
func Logs(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	slog.Info("streaming logs", "app", cfg.AppName, "resource_group", cfg.ResourceGroup)

	client := newAzureClient()

	err = client.StreamLogs(ctx, cfg.AppName, cfg.ResourceGroup)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
