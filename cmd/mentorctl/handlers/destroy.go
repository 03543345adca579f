package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// confirmDestroy prompts for confirmation - can be replaced in tests.
var confirmDestroy = defaultConfirmDestroy

// Destroy handles the destroy command.
//
// It deletes the deployment's resource group, which removes the web app,
// the App Service plan, and everything else inside the group. Unless force
// is set, the user must confirm by typing the resource group name.
func Destroy(ctx context.Context, configPath string, force bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if !force {
		ok, err := confirmDestroy(cfg.ResourceGroup)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Destroy cancelled")
			return nil
		}
	}

	slog.Info("destroying deployment", "resource_group", cfg.ResourceGroup)

	client := newAzureClient()
	if err := client.DeleteResourceGroup(ctx, cfg.ResourceGroup); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	fmt.Printf("Resource group %s deleted\n", cfg.ResourceGroup)
	return nil
}

// defaultConfirmDestroy asks the user to type the resource group name.
func defaultConfirmDestroy(resourceGroup string) (bool, error) {
	fmt.Printf("This will delete resource group %q and everything in it.\n", resourceGroup)
	fmt.Printf("Type the resource group name to confirm: ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	return strings.TrimSpace(response) == resourceGroup, nil
}
