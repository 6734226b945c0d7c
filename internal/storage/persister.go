package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"profileimage/internal/config"
)

var ErrPersistFailed = errors.New("failed to persist image")

const DefaultExtension = "jpg"

var recognizedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"svg":  true,
	"gif":  true,
}

// ExtensionFor infers the stored file extension from the last segment of a
// URL path. Anything outside the recognized image set falls back to jpg.
func ExtensionFor(urlPath string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(urlPath), "."))
	if recognizedExtensions[ext] {
		return ext
	}
	return DefaultExtension
}

type Persister struct {
	fs           afero.Fs
	dir          string
	publicPrefix string
}

func NewPersister(fs afero.Fs, cfg *config.StorageConfig) *Persister {
	return &Persister{
		fs:           fs,
		dir:          cfg.UploadDir,
		publicPrefix: cfg.PublicPrefix,
	}
}

func FileName(userID uint, ext string) string {
	return fmt.Sprintf("%d.%s", userID, ext)
}

// Save streams r into the user's image file and returns the public reference.
// The file is replaced atomically; a failed copy leaves any previous file intact.
func (p *Persister) Save(ctx context.Context, userID uint, ext string, r io.Reader) (string, error) {
	if !recognizedExtensions[ext] {
		ext = DefaultExtension
	}
	name := FileName(userID, ext)

	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return "", persistError(fmt.Errorf("failed to create upload dir: %w", err))
	}

	tmpPath := filepath.Join(p.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	tmp, err := p.fs.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", persistError(fmt.Errorf("failed to create temp file: %w", err))
	}

	if err := p.copy(ctx, tmp, r); err != nil {
		tmp.Close()
		_ = p.fs.Remove(tmpPath)
		return "", persistError(err)
	}

	if err := tmp.Close(); err != nil {
		_ = p.fs.Remove(tmpPath)
		return "", persistError(fmt.Errorf("failed to close temp file: %w", err))
	}

	if err := p.fs.Rename(tmpPath, filepath.Join(p.dir, name)); err != nil {
		_ = p.fs.Remove(tmpPath)
		return "", persistError(fmt.Errorf("failed to move image into place: %w", err))
	}

	return path.Join(p.publicPrefix, name), nil
}

func (p *Persister) copy(ctx context.Context, dst io.Writer, src io.Reader) error {
	if _, err := io.Copy(dst, &contextReader{ctx: ctx, r: src}); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// contextReader stops a copy once ctx is done, even if the source keeps
// producing bytes.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func persistError(reason error) error {
	return fmt.Errorf("%w: %w", ErrPersistFailed, reason)
}
