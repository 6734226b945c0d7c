package metrics_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profileimage/internal/config"
	"profileimage/internal/metrics"
)

type fakeCopier struct {
	mu   sync.Mutex
	rows map[string][][]any
	err  error
}

func newFakeCopier() *fakeCopier {
	return &fakeCopier{rows: make(map[string][][]any)}
}

func (f *fakeCopier) CopyFrom(_ context.Context, table pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return n, err
		}
		f.rows[table.Sanitize()] = append(f.rows[table.Sanitize()], values)
		n++
	}
	return n, f.err
}

func (f *fakeCopier) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows[pgx.Identifier{table}.Sanitize()])
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestRecorder_FlushOnClose(t *testing.T) {
	copier := newFakeCopier()
	cfg := &config.MetricsConfig{Enabled: true, BufferSize: 100, FlushThreshold: 100, FlushInterval: 60_000}

	r := metrics.NewRecorder(copier, cfg, testLogger())
	r.Start(context.Background())

	r.RecordHTTP(metrics.HTTPMetric{Time: time.Now(), Method: "POST", Path: "/profile/image/url", StatusCode: 302})
	r.RecordBusiness("profile_image_stored", 1, map[string]string{"host": "imgur.com"})
	r.RecordBusiness("ssrf_flag_raised", 1, nil)
	r.RecordInfra(metrics.InfraMetric{Time: time.Now(), Goroutines: 12})

	r.Close()

	assert.Equal(t, 1, copier.count("http_metrics"))
	assert.Equal(t, 2, copier.count("business_metrics"))
	assert.Equal(t, 1, copier.count("infra_metrics"))
}

func TestRecorder_FlushOnThreshold(t *testing.T) {
	copier := newFakeCopier()
	cfg := &config.MetricsConfig{Enabled: true, BufferSize: 100, FlushThreshold: 2, FlushInterval: 60_000}

	r := metrics.NewRecorder(copier, cfg, testLogger())
	r.Start(context.Background())
	defer r.Close()

	r.RecordBusiness("profile_image_fallback", 1, nil)
	r.RecordBusiness("profile_image_fallback", 1, nil)

	require.Eventually(t, func() bool {
		return copier.count("business_metrics") == 2
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_FlushOnInterval(t *testing.T) {
	copier := newFakeCopier()
	cfg := &config.MetricsConfig{Enabled: true, BufferSize: 100, FlushThreshold: 100, FlushInterval: 10}

	r := metrics.NewRecorder(copier, cfg, testLogger())
	r.Start(context.Background())
	defer r.Close()

	r.RecordHTTP(metrics.HTTPMetric{Time: time.Now(), Method: "GET", Path: "/api/v1/health", StatusCode: 200})

	require.Eventually(t, func() bool {
		return copier.count("http_metrics") == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_Disabled(t *testing.T) {
	copier := newFakeCopier()
	cfg := &config.MetricsConfig{Enabled: false, BufferSize: 1, FlushThreshold: 1, FlushInterval: 10}

	r := metrics.NewRecorder(copier, cfg, testLogger())
	r.Start(context.Background())

	for i := 0; i < 10; i++ {
		r.RecordBusiness("ssrf_probe_detected", 1, nil)
	}
	r.Close()

	assert.Zero(t, copier.count("business_metrics"))
}

func TestRecorder_FullBufferDoesNotBlock(t *testing.T) {
	copier := newFakeCopier()
	cfg := &config.MetricsConfig{Enabled: true, BufferSize: 1, FlushThreshold: 10, FlushInterval: 60_000}

	// Not started: nothing consumes the buffer.
	r := metrics.NewRecorder(copier, cfg, testLogger())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			r.RecordBusiness("profile_image_rejected", 1, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RecordBusiness blocked on a full buffer")
	}
}

func TestRecorder_CopyErrorIsLogged(t *testing.T) {
	copier := newFakeCopier()
	copier.err = errors.New("copy failed")
	cfg := &config.MetricsConfig{Enabled: true, BufferSize: 10, FlushThreshold: 10, FlushInterval: 60_000}

	r := metrics.NewRecorder(copier, cfg, testLogger())
	r.Start(context.Background())

	r.RecordBusiness("profile_image_failed", 1, nil)

	assert.NotPanics(t, r.Close)
}
