package storage_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profileimage/internal/config"
	"profileimage/internal/storage"
)

const uploadDir = "/srv/uploads"

func storageConfig(dir string) *config.StorageConfig {
	return &config.StorageConfig{
		UploadDir:    dir,
		PublicPrefix: "/assets/public/images/uploads",
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/avatar.png", "png"},
		{"/avatar.PNG", "png"},
		{"/a/b/avatar.jpeg", "jpeg"},
		{"/avatar.jpg", "jpg"},
		{"/avatar.svg", "svg"},
		{"/avatar.GIF", "gif"},
		{"/avatar", "jpg"},
		{"/avatar.exe", "jpg"},
		{"/avatar.png.exe", "jpg"},
		{"/images.png/avatar", "jpg"},
		{"/avatar.", "jpg"},
		{"", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.ExtensionFor(tt.path))
		})
	}
}

func TestSave_WritesFileAndReturnsReference(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	ref, err := p.Save(context.Background(), 42, "png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/assets/public/images/uploads/42.png", ref)

	data, err := afero.ReadFile(fs, filepath.Join(uploadDir, "42.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_UnrecognizedExtensionDefaultsToJPG(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	ref, err := p.Save(context.Background(), 7, "exe", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/assets/public/images/uploads/7.jpg", ref)
}

func TestSave_OverwritesSameReference(t *testing.T) {
	fs := afero.NewOsFs()
	dir := filepath.Join(t.TempDir(), "uploads")
	p := storage.NewPersister(fs, storageConfig(dir))

	first, err := p.Save(context.Background(), 42, "png", strings.NewReader("first"))
	require.NoError(t, err)

	second, err := p.Save(context.Background(), 42, "png", strings.NewReader("second"))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	data, err := afero.ReadFile(fs, filepath.Join(dir, "42.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_ReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	_, err := p.Save(context.Background(), 42, "png", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, storage.ErrPersistFailed)
}

type failingReader struct {
	sent bool
}

var errStreamInterrupted = errors.New("connection reset")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errStreamInterrupted
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestSave_InterruptedStreamKeepsPreviousFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	_, err := p.Save(context.Background(), 42, "png", strings.NewReader("original"))
	require.NoError(t, err)

	_, err = p.Save(context.Background(), 42, "png", &failingReader{})
	assert.ErrorIs(t, err, storage.ErrPersistFailed)
	assert.ErrorIs(t, err, errStreamInterrupted)

	data, err := afero.ReadFile(fs, filepath.Join(uploadDir, "42.png"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := afero.ReadDir(fs, uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be removed")
}

func TestSave_CanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Save(ctx, 42, "png", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, storage.ErrPersistFailed)
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, filepath.Join(uploadDir, "42.png"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSave_EmptyReader(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := storage.NewPersister(fs, storageConfig(uploadDir))

	ref, err := p.Save(context.Background(), 1, "gif", io.LimitReader(strings.NewReader("gif"), 0))
	require.NoError(t, err)
	assert.Equal(t, "/assets/public/images/uploads/1.gif", ref)
}
