package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

const azBinary = "az"

// Runner executes an az invocation and returns its stdout. Implementations
// must return *Error on a non-zero exit.
type Runner func(ctx context.Context, args ...string) ([]byte, error)

// RealClient implements AppServiceManager by shelling out to the az CLI.
type RealClient struct {
	run    Runner
	stream Runner
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithRunner sets a custom command runner (useful for testing).
func WithRunner(r Runner) ClientOption {
	return func(c *RealClient) {
		c.run = r
	}
}

// WithStreamRunner sets a custom runner for streaming commands.
func WithStreamRunner(r Runner) ClientOption {
	return func(c *RealClient) {
		c.stream = r
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(opts ...ClientOption) *RealClient {
	c := &RealClient{
		run:    execAz,
		stream: streamAz,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// execAz runs az with the given arguments, capturing stdout. Stderr is
// folded into the returned *Error on failure so callers can classify and
// surface the raw provider message.
func execAz(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, azBinary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &Error{
			Command:  commandLabel(args),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return stdout.Bytes(), nil
}

// streamAz runs az with stdout and stderr attached to the process streams.
// Used for log tailing, where output must reach the operator live.
func streamAz(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, azBinary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		// Cancellation is the normal way to stop a tail.
		if ctx.Err() != nil {
			return nil, nil
		}
		return nil, &Error{Command: commandLabel(args), ExitCode: -1}
	}
	return nil, nil
}

// commandLabel returns the az subcommand without flags, for error messages.
func commandLabel(args []string) string {
	var parts []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			break
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// CurrentAccount implements SessionVerifier.
func (c *RealClient) CurrentAccount(ctx context.Context) (*Account, error) {
	out, err := c.run(ctx, "account", "show", "-o", "json")
	if err != nil {
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(out, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account: %w", err)
	}
	return &account, nil
}

// CreateResourceGroup implements ResourceGroupManager.
func (c *RealClient) CreateResourceGroup(ctx context.Context, name, location string) error {
	_, err := c.run(ctx,
		"group", "create",
		"--name", name,
		"--location", location,
		"-o", "json")
	return err
}

// DeleteResourceGroup implements ResourceGroupManager. Deletion is
// asynchronous on the provider side; the call returns once accepted.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	_, err := c.run(ctx,
		"group", "delete",
		"--name", name,
		"--yes")
	return err
}

// CreatePlan implements WebAppManager.
func (c *RealClient) CreatePlan(ctx context.Context, opts PlanOpts) error {
	args := []string{
		"appservice", "plan", "create",
		"--name", opts.Name,
		"--resource-group", opts.ResourceGroup,
		"--location", opts.Location,
		"--sku", opts.SKU,
	}
	if opts.Linux {
		args = append(args, "--is-linux")
	}
	args = append(args, "-o", "json")

	_, err := c.run(ctx, args...)
	return err
}

// CreateWebApp implements WebAppManager.
func (c *RealClient) CreateWebApp(ctx context.Context, opts WebAppOpts) error {
	_, err := c.run(ctx,
		"webapp", "create",
		"--name", opts.Name,
		"--resource-group", opts.ResourceGroup,
		"--plan", opts.Plan,
		"--runtime", opts.Runtime,
		"-o", "json")
	return err
}

// SetAppSettings implements WebAppManager. The full settings map is pushed
// in a single call; keys are sorted for a stable command line.
func (c *RealClient) SetAppSettings(ctx context.Context, name, resourceGroup string, settings map[string]string) error {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := []string{
		"webapp", "config", "appsettings", "set",
		"--name", name,
		"--resource-group", resourceGroup,
		"--settings",
	}
	for _, k := range keys {
		args = append(args, fmt.Sprintf("%s=%s", k, settings[k]))
	}
	args = append(args, "-o", "json")

	_, err := c.run(ctx, args...)
	return err
}

// SetStartupCommand implements WebAppManager.
func (c *RealClient) SetStartupCommand(ctx context.Context, name, resourceGroup, command string) error {
	_, err := c.run(ctx,
		"webapp", "config", "set",
		"--name", name,
		"--resource-group", resourceGroup,
		"--startup-file", command,
		"-o", "json")
	return err
}

// DeployZip implements WebAppManager.
func (c *RealClient) DeployZip(ctx context.Context, name, resourceGroup, zipPath string) error {
	_, err := c.run(ctx,
		"webapp", "deploy",
		"--name", name,
		"--resource-group", resourceGroup,
		"--src-path", zipPath,
		"--type", "zip",
		"-o", "json")
	return err
}

// siteInfo is the subset of az webapp show output the client reads.
type siteInfo struct {
	DefaultHostName string `json:"defaultHostName"`
	State           string `json:"state"`
}

// GetHostname implements WebAppManager.
func (c *RealClient) GetHostname(ctx context.Context, name, resourceGroup string) (string, error) {
	out, err := c.run(ctx,
		"webapp", "show",
		"--name", name,
		"--resource-group", resourceGroup,
		"-o", "json")
	if err != nil {
		return "", err
	}

	var site siteInfo
	if err := json.Unmarshal(out, &site); err != nil {
		return "", fmt.Errorf("failed to parse site info: %w", err)
	}
	if site.DefaultHostName == "" {
		return "", fmt.Errorf("site %q has no default hostname", name)
	}
	return site.DefaultHostName, nil
}

// StreamLogs implements WebAppManager.
func (c *RealClient) StreamLogs(ctx context.Context, name, resourceGroup string) error {
	_, err := c.stream(ctx,
		"webapp", "log", "tail",
		"--name", name,
		"--resource-group", resourceGroup)
	return err
}
