package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// settingKeys is the fixed key set the application reads at runtime.
// The deployed settings map contains exactly these keys plus the build
// trigger flag; values are supplied by the operator's environment, never
// hard-coded.
var settingKeys = []string{
	"AZURE_OPENAI_ENDPOINT",
	"AZURE_OPENAI_API_KEY",
	"AZURE_OPENAI_DEPLOYMENT",
	"AZURE_OPENAI_API_VERSION",
	"AZURE_SEARCH_ENDPOINT",
	"AZURE_SEARCH_API_KEY",
	"AZURE_SEARCH_INDEX",
	"ENABLE_RAG",
	"MAX_TOKENS",
	"TEMPERATURE",
	"TOP_N_DOCUMENTS",
}

// BuildTriggerKey enables the provider's own build pipeline during zip
// deployment.
const BuildTriggerKey = "SCM_DO_BUILD_DURING_DEPLOYMENT"

// SettingKeys returns the declared application setting keys, sorted.
func SettingKeys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	sort.Strings(keys)
	return keys
}

// LoadSettings builds the settings map pushed to the provider. The env
// file, if present, seeds the process environment without overriding
// values the operator already exported. Every declared key must resolve
// to a non-empty value.
func LoadSettings(envFile string) (map[string]string, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	settings := make(map[string]string, len(settingKeys)+1)
	var missing []string
	for _, key := range settingKeys {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
			continue
		}
		settings[key] = value
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required settings: %s (export them or add them to %s)",
			strings.Join(missing, ", "), envFile)
	}

	settings[BuildTriggerKey] = "true"
	return settings, nil
}
