package azure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures az invocations and replays canned responses.
type recordingRunner struct {
	calls [][]string
	out   []byte
	err   error
}

func (r *recordingRunner) run(_ context.Context, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	return r.out, r.err
}

func TestRealClient_InterfaceCompliance(_ *testing.T) {
	var _ AppServiceManager = (*RealClient)(nil)
}

func TestCurrentAccount_ParsesJSON(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{
		"id": "0000-1111",
		"name": "Pay-As-You-Go",
		"tenantId": "2222-3333",
		"user": {"name": "ops@example.org", "type": "user"}
	}`)}
	c := NewRealClient(WithRunner(runner.run))

	account, err := c.CurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0000-1111", account.SubscriptionID)
	assert.Equal(t, "ops@example.org", account.User.Name)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"account", "show", "-o", "json"}, runner.calls[0])
}

func TestCurrentAccount_NotLoggedIn(t *testing.T) {
	runner := &recordingRunner{err: &Error{
		Command:  "account show",
		ExitCode: 1,
		Stderr:   "Please run 'az login' to setup account.",
	}}
	c := NewRealClient(WithRunner(runner.run))

	_, err := c.CurrentAccount(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotLoggedIn(err))
}

func TestCreateResourceGroup_Args(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{}`)}
	c := NewRealClient(WithRunner(runner.run))

	err := c.CreateResourceGroup(context.Background(), "rg-csiro-mentor", "australiaeast")
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"group", "create",
		"--name", "rg-csiro-mentor",
		"--location", "australiaeast",
		"-o", "json",
	}, runner.calls[0])
}

func TestCreatePlan_LinuxFlag(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{}`)}
	c := NewRealClient(WithRunner(runner.run))

	err := c.CreatePlan(context.Background(), PlanOpts{
		Name:          "plan-csiro-mentor",
		ResourceGroup: "rg-csiro-mentor",
		Location:      "australiaeast",
		SKU:           "B1",
		Linux:         true,
	})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "--is-linux")
	assert.Contains(t, runner.calls[0], "B1")
}

func TestSetAppSettings_SortedKeyValuePairs(t *testing.T) {
	runner := &recordingRunner{out: []byte(`[]`)}
	c := NewRealClient(WithRunner(runner.run))

	err := c.SetAppSettings(context.Background(), "app", "rg", map[string]string{
		"MAX_TOKENS":            "4096",
		"AZURE_OPENAI_ENDPOINT": "https://aoai.example.net",
		"ENABLE_RAG":            "true",
	})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)

	args := runner.calls[0]
	// Pairs follow --settings in key-sorted order.
	idx := -1
	for i, a := range args {
		if a == "--settings" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, []string{
		"AZURE_OPENAI_ENDPOINT=https://aoai.example.net",
		"ENABLE_RAG=true",
		"MAX_TOKENS=4096",
		"-o", "json",
	}, args[idx+1:])
}

func TestGetHostname(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{"defaultHostName": "csiro-mentor-app.azurewebsites.net", "state": "Running"}`)}
	c := NewRealClient(WithRunner(runner.run))

	host, err := c.GetHostname(context.Background(), "csiro-mentor-app", "rg-csiro-mentor")
	require.NoError(t, err)
	assert.Equal(t, "csiro-mentor-app.azurewebsites.net", host)
}

func TestGetHostname_Empty(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{"state": "Running"}`)}
	c := NewRealClient(WithRunner(runner.run))

	_, err := c.GetHostname(context.Background(), "csiro-mentor-app", "rg-csiro-mentor")
	assert.Error(t, err)
}

func TestDeployZip_Args(t *testing.T) {
	runner := &recordingRunner{out: []byte(`{}`)}
	c := NewRealClient(WithRunner(runner.run))

	err := c.DeployZip(context.Background(), "app", "rg", "/tmp/bundle.zip")
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"webapp", "deploy",
		"--name", "app",
		"--resource-group", "rg",
		"--src-path", "/tmp/bundle.zip",
		"--type", "zip",
		"-o", "json",
	}, runner.calls[0])
}

func TestCommandLabel(t *testing.T) {
	assert.Equal(t, "webapp config set", commandLabel([]string{"webapp", "config", "set", "--name", "x"}))
	assert.Equal(t, "group create", commandLabel([]string{"group", "create", "--name", "x"}))
}
