package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// batcher buffers metrics of one kind and copies them into a single table.
type batcher[T any] struct {
	copier  Copier
	table   string
	columns []string
	toRow   func(T) []any
	ch      chan T
}

func newBatcher[T any](copier Copier, table string, columns []string, size int, toRow func(T) []any) *batcher[T] {
	return &batcher[T]{
		copier:  copier,
		table:   table,
		columns: columns,
		toRow:   toRow,
		ch:      make(chan T, size),
	}
}

// offer never blocks the caller; it reports false when the buffer is full.
func (b *batcher[T]) offer(m T) bool {
	select {
	case b.ch <- m:
		return true
	default:
		return false
	}
}

func (b *batcher[T]) run(ctx context.Context, interval time.Duration, threshold int, shutdown <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, threshold)

	for {
		select {
		case <-ctx.Done():
			b.drain(batch, logger)
			return
		case <-shutdown:
			b.drain(batch, logger)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= threshold {
				b.flush(ctx, batch, logger)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.flush(ctx, batch, logger)
				batch = batch[:0]
			}
		}
	}
}

func (b *batcher[T]) drain(batch []T, logger *slog.Logger) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				b.flush(ctx, batch, logger)
				cancel()
			}
			return
		}
	}
}

func (b *batcher[T]) flush(ctx context.Context, batch []T, logger *slog.Logger) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = b.toRow(m)
	}

	_, err := b.copier.CopyFrom(ctx, pgx.Identifier{b.table}, b.columns, pgx.CopyFromRows(rows))
	if err != nil {
		logger.Error("failed to write metrics batch",
			slog.String("table", b.table),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}
