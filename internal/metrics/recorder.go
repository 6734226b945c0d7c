package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"profileimage/internal/config"
)

// Copier is the slice of *pgxpool.Pool the recorder writes through.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var (
	httpColumns = []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error"}

	businessColumns = []string{"time", "metric_name", "value", "labels"}

	infraColumns = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"session_cache_hits", "session_cache_miss", "session_cache_ratio", "goroutines", "heap_alloc_mb",
	}
)

type Recorder struct {
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *batcher[HTTPMetric]
	business     *batcher[BusinessMetric]
	infra        *batcher[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(copier Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}

	r.http = newBatcher(copier, "http_metrics", httpColumns, cfg.BufferSize, func(m HTTPMetric) []any {
		return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
	})
	r.business = newBatcher(copier, "business_metrics", businessColumns, cfg.BufferSize, func(m BusinessMetric) []any {
		labelsJSON, _ := json.Marshal(m.Labels)
		return []any{m.Time, m.MetricName, m.Value, labelsJSON}
	})
	r.infra = newBatcher(copier, "infra_metrics", infraColumns, cfg.BufferSize, func(m InfraMetric) []any {
		return []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.SessionCacheHits, m.SessionCacheMiss, m.SessionCacheRatio, m.Goroutines, m.HeapAllocMB,
		}
	})

	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	if !r.http.offer(m) {
		r.logger.Warn("http metrics buffer full, dropping metric")
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.cfg.Enabled {
		return
	}
	m := BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}
	if !r.business.offer(m) {
		r.logger.Warn("business metrics buffer full, dropping metric", slog.String("metric", name))
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.cfg.Enabled {
		return
	}
	if !r.infra.offer(m) {
		r.logger.Warn("infra metrics buffer full, dropping metric")
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond
	threshold := max(1, r.cfg.FlushThreshold)

	r.wg.Add(3)
	go func() {
		defer r.wg.Done()
		r.http.run(ctx, interval, threshold, r.shutdownCh, r.logger)
	}()
	go func() {
		defer r.wg.Done()
		r.business.run(ctx, interval, threshold, r.shutdownCh, r.logger)
	}()
	go func() {
		defer r.wg.Done()
		r.infra.run(ctx, interval, threshold, r.shutdownCh, r.logger)
	}()

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}
