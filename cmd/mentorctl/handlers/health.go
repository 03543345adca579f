package handlers

import (
	"context"
	"fmt"

	"github.com/csiro-mentor/mentorctl/internal/probe"
)

// Health handles the health command.
//
// It resolves the web app's hostname from the provider and issues an HTTP
// request against the configured health path. With wait set, it polls with
// backoff until the app answers or the retry budget runs out.
func Health(ctx context.Context, configPath string, wait bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client := newAzureClient()

	hostname, err := client.GetHostname(ctx, cfg.AppName, cfg.ResourceGroup)
	if err != nil {
		return fmt.Errorf("failed to resolve app hostname: %w\nIs the app deployed? Run 'mentorctl deploy' first", err)
	}

	baseURL := "https://" + hostname
	prober := newProber()

	var health *probe.Response
	if wait {
		health, err = prober.Wait(ctx, baseURL, cfg.HealthPath)
	} else {
		health, err = prober.Check(ctx, baseURL, cfg.HealthPath)
	}
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	printHealth(health)
	return nil
}

// printHealth outputs the health payload in a formatted display.
func printHealth(health *probe.Response) {
	fmt.Printf("Status:  %s\n", health.Status)
	if health.Version != "" {
		fmt.Printf("Version: %s\n", health.Version)
	}
	fmt.Printf("RAG:     %t\n", health.RAGEnabled)
}
