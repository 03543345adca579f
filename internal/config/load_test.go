package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mentorctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile_Full(t *testing.T) {
	path := writeConfig(t, `
app_name: mentor-staging
resource_group: rg-mentor-staging
plan_name: plan-mentor-staging
location: westeurope
sku: P1v3
runtime: "PYTHON:3.12"
startup_command: "gunicorn -w 4 -k uvicorn.workers.UvicornWorker app:app"
source_dir: backend
env_file: .env.staging
health_path: /health
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mentor-staging", cfg.AppName)
	assert.Equal(t, "rg-mentor-staging", cfg.ResourceGroup)
	assert.Equal(t, "westeurope", cfg.Location)
	assert.Equal(t, "P1v3", cfg.SKU)
	assert.Equal(t, "PYTHON:3.12", cfg.Runtime)
	assert.Equal(t, ".env.staging", cfg.EnvFile)
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, DefaultResourceGroup, cfg.ResourceGroup)
	assert.Equal(t, DefaultPlanName, cfg.PlanName)
	assert.Equal(t, DefaultLocation, cfg.Location)
	assert.Equal(t, DefaultSKU, cfg.SKU)
	assert.Equal(t, DefaultStartupCommand, cfg.StartupCommand)
	assert.Equal(t, DefaultHealthPath, cfg.HealthPath)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := writeConfig(t, "app_name: [unterminated\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_InvalidAppName(t *testing.T) {
	path := writeConfig(t, "app_name: Not_A_Valid-Name\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app_name")
}

func TestValidate_HealthPath(t *testing.T) {
	cfg := Default()
	cfg.HealthPath = "health"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health_path")
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	_, err = FindConfigFile()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("{}\n"), 0600))
	path, err := FindConfigFile()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, path)
}
