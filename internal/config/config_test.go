package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profileimage/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"imgur.com", "images.example.com"}, cfg.Validation.AllowedHosts)
	assert.Equal(t, 2048, cfg.Validation.MaxURLLength)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(5242880), cfg.Fetch.MaxBytes)
	assert.False(t, cfg.Fetch.AllowPrivateIPs)
	assert.Equal(t, "/assets/public/images/uploads", cfg.Storage.PublicPrefix)
	assert.Equal(t, 15*time.Second, cfg.Storage.OperationTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ALLOWED_IMAGE_HOSTS", "cdn.example.org,imgur.com")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("BASE_PATH", "/shop")
	t.Setenv("UPLOAD_DIR", "/var/lib/uploads")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"cdn.example.org", "imgur.com"}, cfg.Validation.AllowedHosts)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "/shop", cfg.App.BasePath)
	assert.Equal(t, "/var/lib/uploads", cfg.Storage.UploadDir)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TimeoutOrder(t *testing.T) {
	tests := []struct {
		name      string
		fetch     string
		operation string
		wantErr   bool
	}{
		{"fetch shorter", "5s", "15s", false},
		{"fetch equal", "15s", "15s", true},
		{"fetch longer", "20s", "15s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FETCH_TIMEOUT", tt.fetch)
			t.Setenv("PROFILE_IMAGE_TIMEOUT", tt.operation)

			_, err := config.Load()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrTimeoutOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}
