package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_ValidArgs(t *testing.T) {
	cmd := Completion()

	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion", "tcsh"})

	err := root.Execute()
	require.Error(t, err)
}
