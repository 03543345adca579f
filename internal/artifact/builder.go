// Package artifact packages the application source tree into the zip
// bundle uploaded to the provider.
package artifact

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrSecretsIncluded is returned when the finished bundle contains the
// secrets file. Uploading such a bundle would leak credentials, so the
// build aborts and the bundle is removed.
var ErrSecretsIncluded = errors.New("artifact contains the secrets file")

// DefaultExcludes are glob patterns (relative to the source dir) that are
// never packaged: version-control metadata, interpreter bytecode caches,
// and local virtualenvs.
var DefaultExcludes = []string{
	".git/**",
	"**/__pycache__/**",
	"**/*.pyc",
	".venv/**",
	"venv/**",
}

// Builder packages a source tree into a deployable zip bundle.
type Builder struct {
	// SourceDir is the root of the tree to package.
	SourceDir string

	// Excludes are doublestar patterns matched against slash-separated
	// paths relative to SourceDir.
	Excludes []string

	// SecretsFile is a file name excluded wherever it appears in the
	// tree. The finished bundle is verified to not contain it.
	SecretsFile string
}

// New creates a Builder with the default exclusion set.
func New(sourceDir, secretsFile string) *Builder {
	return &Builder{
		SourceDir:   sourceDir,
		Excludes:    DefaultExcludes,
		SecretsFile: secretsFile,
	}
}

// Build writes the bundle into destDir and returns its path. The bundle is
// verified against the secrets invariant before it is handed to the caller.
func (b *Builder) Build(destDir string) (string, error) {
	if _, err := os.Stat(b.SourceDir); err != nil {
		return "", fmt.Errorf("source dir %s: %w", b.SourceDir, err)
	}

	zipPath := filepath.Join(destDir, "deploy.zip")
	// #nosec G304
	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("failed to create bundle: %w", err)
	}

	if err := b.writeEntries(out); err != nil {
		_ = out.Close()
		_ = os.Remove(zipPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(zipPath)
		return "", fmt.Errorf("failed to finalize bundle: %w", err)
	}

	if err := b.verify(zipPath); err != nil {
		_ = os.Remove(zipPath)
		return "", err
	}

	return zipPath, nil
}

func (b *Builder) writeEntries(out io.Writer) error {
	zw := zip.NewWriter(out)
	root := os.DirFS(b.SourceDir)

	err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		excluded, err := b.isExcluded(p)
		if err != nil {
			return err
		}
		if excluded {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		return addFile(zw, root, p)
	})
	if err != nil {
		return fmt.Errorf("failed to package %s: %w", b.SourceDir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return nil
}

// isExcluded reports whether the slash-separated relative path is skipped.
func (b *Builder) isExcluded(p string) (bool, error) {
	if b.SecretsFile != "" && path.Base(p) == b.SecretsFile {
		return true, nil
	}
	for _, pattern := range b.Excludes {
		match, err := doublestar.Match(pattern, p)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if match {
			return true, nil
		}
		// A directory pattern like ".git/**" should also drop the
		// directory entry itself so the walk can skip the subtree.
		if match, _ := doublestar.Match(pattern, p+"/"); match {
			return true, nil
		}
	}
	return false, nil
}

func addFile(zw *zip.Writer, root fs.FS, p string) error {
	info, err := fs.Stat(root, p)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = p
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	f, err := root.Open(p)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	_, err = io.Copy(w, f)
	return err
}

// verify re-reads the finished bundle and fails if the secrets file made it
// in under any path.
func (b *Builder) verify(zipPath string) error {
	if b.SecretsFile == "" {
		return nil
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to verify bundle: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	for _, f := range r.File {
		if path.Base(f.Name) == b.SecretsFile {
			return fmt.Errorf("%w: %s", ErrSecretsIncluded, f.Name)
		}
	}
	return nil
}
