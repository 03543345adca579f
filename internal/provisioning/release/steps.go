// Package release provides the artifact packaging, upload, and hostname
// steps.
package release

import (
	"fmt"
	"os"
	"strings"

	"github.com/csiro-mentor/mentorctl/internal/artifact"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
)

// PackageStep builds the deployment artifact: the application source tree
// minus version-control metadata, bytecode caches, and the secrets file.
// A packaging failure aborts the run before anything is uploaded.
type PackageStep struct {
	// newBuilder creates the artifact builder (injectable for tests).
	newBuilder func(sourceDir, secretsFile string) *artifact.Builder

	// tempDir creates the staging directory (injectable for tests).
	tempDir func(dir, pattern string) (string, error)
}

// NewPackageStep creates the packaging step.
func NewPackageStep() *PackageStep {
	return &PackageStep{
		newBuilder: artifact.New,
		tempDir:    os.MkdirTemp,
	}
}

// Name implements the provisioning.Step interface.
func (s *PackageStep) Name() string {
	return "package"
}

// Provision implements the provisioning.Step interface.
func (s *PackageStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	staging, err := s.tempDir("", "mentorctl-deploy-")
	if err != nil {
		return fmt.Errorf("failed to create staging dir: %w", err)
	}

	builder := s.newBuilder(cfg.SourceDir, cfg.EnvFile)
	zipPath, err := builder.Build(staging)
	if err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("failed to build artifact: %w", err)
	}

	ctx.State.ArtifactPath = zipPath
	ctx.Observer.Printf("[package] built %s from %s", zipPath, cfg.SourceDir)
	return nil
}

// UploadStep pushes the built artifact as the app's running code. The
// artifact is consumed exactly once and removed after a successful upload.
type UploadStep struct{}

// NewUploadStep creates the upload step.
func NewUploadStep() *UploadStep {
	return &UploadStep{}
}

// Name implements the provisioning.Step interface.
func (s *UploadStep) Name() string {
	return "upload"
}

// Provision implements the provisioning.Step interface.
func (s *UploadStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	if ctx.State.ArtifactPath == "" {
		return fmt.Errorf("no artifact to upload")
	}

	ctx.Observer.Printf("[upload] deploying %s to %s", ctx.State.ArtifactPath, cfg.AppName)
	if err := ctx.Azure.DeployZip(ctx, cfg.AppName, cfg.ResourceGroup, ctx.State.ArtifactPath); err != nil {
		return fmt.Errorf("failed to deploy artifact: %w", err)
	}

	_ = os.Remove(ctx.State.ArtifactPath)
	ctx.State.ArtifactPath = ""
	return nil
}

// HostnameStep queries the provider for the app's public hostname. It is
// the terminal step; its result is the run's reported URL.
type HostnameStep struct{}

// NewHostnameStep creates the hostname step.
func NewHostnameStep() *HostnameStep {
	return &HostnameStep{}
}

// Name implements the provisioning.Step interface.
func (s *HostnameStep) Name() string {
	return "hostname"
}

// Provision implements the provisioning.Step interface.
func (s *HostnameStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	hostname, err := ctx.Azure.GetHostname(ctx, cfg.AppName, cfg.ResourceGroup)
	if err != nil {
		return fmt.Errorf("failed to retrieve hostname: %w", err)
	}
	if strings.TrimSpace(hostname) == "" {
		return fmt.Errorf("provider returned an empty hostname for %s", cfg.AppName)
	}

	ctx.State.Hostname = hostname
	ctx.Observer.Printf("[hostname] app is reachable at https://%s", hostname)
	return nil
}
