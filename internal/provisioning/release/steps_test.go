package release

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csiro-mentor/mentorctl/internal/config"
	"github.com/csiro-mentor/mentorctl/internal/platform/azure"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
)

func newContext(t *testing.T, client azure.AppServiceManager) *provisioning.Context {
	t.Helper()
	cfg := config.Default()

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "app.py"), []byte("print('hi')"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".env"), []byte("KEY=secret"), 0600))
	cfg.SourceDir = src

	return provisioning.NewContext(context.Background(), cfg, client)
}

func TestPackageStep_BuildsArtifact(t *testing.T) {
	ctx := newContext(t, &azure.MockClient{})

	err := NewPackageStep().Provision(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ctx.State.ArtifactPath)
	t.Cleanup(func() {
		_ = os.RemoveAll(filepath.Dir(ctx.State.ArtifactPath))
	})

	info, err := os.Stat(ctx.State.ArtifactPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPackageStep_MissingSourceDirFails(t *testing.T) {
	ctx := newContext(t, &azure.MockClient{})
	ctx.Config.SourceDir = filepath.Join(t.TempDir(), "absent")

	err := NewPackageStep().Provision(ctx)
	require.Error(t, err)
	assert.Empty(t, ctx.State.ArtifactPath)
}

func TestUploadStep_DeploysAndConsumesArtifact(t *testing.T) {
	var gotZip string
	client := &azure.MockClient{
		DeployZipFunc: func(_ context.Context, _, _, zipPath string) error {
			gotZip = zipPath
			return nil
		},
	}
	ctx := newContext(t, client)

	zipPath := filepath.Join(t.TempDir(), "deploy.zip")
	require.NoError(t, os.WriteFile(zipPath, []byte("PK"), 0600))
	ctx.State.ArtifactPath = zipPath

	err := NewUploadStep().Provision(ctx)
	require.NoError(t, err)
	assert.Equal(t, zipPath, gotZip)

	// The artifact is consumed exactly once.
	assert.Empty(t, ctx.State.ArtifactPath)
	_, statErr := os.Stat(zipPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadStep_NoArtifact(t *testing.T) {
	ctx := newContext(t, &azure.MockClient{})

	err := NewUploadStep().Provision(ctx)
	assert.Error(t, err)
}

func TestHostnameStep_StoresHostname(t *testing.T) {
	client := &azure.MockClient{
		GetHostnameFunc: func(_ context.Context, name, _ string) (string, error) {
			return name + ".azurewebsites.net", nil
		},
	}
	ctx := newContext(t, client)

	err := NewHostnameStep().Provision(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAppName+".azurewebsites.net", ctx.State.Hostname)
	assert.Equal(t, "https://"+config.DefaultAppName+".azurewebsites.net", ctx.State.URL())
}

func TestHostnameStep_EmptyHostname(t *testing.T) {
	client := &azure.MockClient{
		GetHostnameFunc: func(_ context.Context, _, _ string) (string, error) {
			return "  ", nil
		},
	}
	ctx := newContext(t, client)

	err := NewHostnameStep().Provision(ctx)
	assert.Error(t, err)
}
