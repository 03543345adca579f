package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllSettings(t *testing.T) {
	t.Helper()
	values := map[string]string{
		"AZURE_OPENAI_ENDPOINT":    "https://aoai.example.net",
		"AZURE_OPENAI_API_KEY":     "test-key",
		"AZURE_OPENAI_DEPLOYMENT":  "gpt-4o",
		"AZURE_OPENAI_API_VERSION": "2024-02-15-preview",
		"AZURE_SEARCH_ENDPOINT":    "https://search.example.net",
		"AZURE_SEARCH_API_KEY":     "search-key",
		"AZURE_SEARCH_INDEX":       "mentor-docs",
		"ENABLE_RAG":               "true",
		"MAX_TOKENS":               "4096",
		"TEMPERATURE":              "0.7",
		"TOP_N_DOCUMENTS":          "5",
	}
	for k, v := range values {
		t.Setenv(k, v)
	}
}

func TestLoadSettings_ExactKeySet(t *testing.T) {
	setAllSettings(t)

	settings, err := LoadSettings("")
	require.NoError(t, err)

	// The declared keys plus the build trigger, nothing else.
	assert.Len(t, settings, len(SettingKeys())+1)
	for _, key := range SettingKeys() {
		assert.Contains(t, settings, key)
	}
	assert.Equal(t, "true", settings[BuildTriggerKey])
}

func TestLoadSettings_MissingValues(t *testing.T) {
	setAllSettings(t)
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	t.Setenv("MAX_TOKENS", "")

	_, err := LoadSettings("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "MAX_TOKENS")
}

func TestLoadSettings_EnvFileSeedsEnvironment(t *testing.T) {
	setAllSettings(t)
	// t.Setenv registered the restore; unset so the env file takes effect.
	t.Setenv("AZURE_SEARCH_INDEX", "")
	require.NoError(t, os.Unsetenv("AZURE_SEARCH_INDEX"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AZURE_SEARCH_INDEX=from-file\n"), 0600))

	settings, err := LoadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file", settings["AZURE_SEARCH_INDEX"])
}

func TestLoadSettings_EnvironmentWinsOverEnvFile(t *testing.T) {
	setAllSettings(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAX_TOKENS=1\n"), 0600))

	settings, err := LoadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "4096", settings["MAX_TOKENS"])
}

func TestLoadSettings_MissingEnvFileIgnored(t *testing.T) {
	setAllSettings(t)

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotEmpty(t, settings)
}
