package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/config/wizard"
)

func stubInitFactories(t *testing.T) {
	t.Helper()

	origExists := fileExists
	origConfirm := confirmOverwrite
	origWizard := runWizard
	origWrite := writeConfig
	t.Cleanup(func() {
		fileExists = origExists
		confirmOverwrite = origConfirm
		runWizard = origWizard
		writeConfig = origWrite
	})

	fileExists = func(string) bool { return false }
	confirmOverwrite = func(string) (bool, error) { return true, nil }
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			AppName:   "demo-app",
			Location:  "australiaeast",
			SKU:       "B1",
			Runtime:   "PYTHON:3.11",
			SourceDir: "backend",
			EnvFile:   ".env",
		}, nil
	}
	writeConfig = func(_ *config.Config, _ string) error { return nil }
}

func TestInit(t *testing.T) {
	stubInitFactories(t)

	var written *config.Config
	writeConfig = func(cfg *config.Config, path string) error {
		written = cfg
		assert.Equal(t, "mentorctl.yaml", path)
		return nil
	}

	require.NoError(t, Init(context.Background(), "mentorctl.yaml"))
	require.NotNil(t, written)
	assert.Equal(t, "demo-app", written.AppName)
	assert.Equal(t, "rg-csiro-mentor", written.ResourceGroup)
}

func TestInit_ExistingFileDeclined(t *testing.T) {
	stubInitFactories(t)
	fileExists = func(string) bool { return true }
	confirmOverwrite = func(string) (bool, error) { return false, nil }
	writeConfig = func(_ *config.Config, _ string) error {
		t.Fatal("config should not be written when overwrite is declined")
		return nil
	}

	require.NoError(t, Init(context.Background(), "mentorctl.yaml"))
}

func TestInit_WizardCancelled(t *testing.T) {
	stubInitFactories(t)
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "mentorctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_InvalidWizardResult(t *testing.T) {
	stubInitFactories(t)
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{AppName: "Bad Name"}, nil
	}

	err := Init(context.Background(), "mentorctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
