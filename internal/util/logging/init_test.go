package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		assert.NoError(t, Initialize(level), "level %q", level)
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize("loud")
	assert.Error(t, err)
}
