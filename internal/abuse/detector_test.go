package abuse_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"profileimage/internal/abuse"
	"profileimage/internal/abuse/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDetector_Inspect(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		probe bool
	}{
		{"plain image", "https://imgur.com/a.png", false},
		{"internal challenge path", "http://localhost:3000/solve/challenges/server-side?key=x", true},
		{"challenge path on allowed host", "https://imgur.com/solve/challenges/server-side", true},
		{"partial path", "http://localhost/solve/challenges", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mocks.NewMockBusinessRecorder(t)
			if tt.probe {
				rec.EXPECT().RecordBusiness("ssrf_probe_detected", float64(1), mock.Anything).Return().Once()
				rec.EXPECT().RecordBusiness("ssrf_flag_raised", float64(1), mock.Anything).Return().Once()
			}

			d := abuse.NewDetector(rec, discardLogger())

			assert.Equal(t, tt.probe, d.Inspect(tt.url))
			assert.Equal(t, tt.probe, d.Flagged())
		})
	}
}

func TestDetector_FlagIsMonotonic(t *testing.T) {
	rec := mocks.NewMockBusinessRecorder(t)
	rec.EXPECT().RecordBusiness("ssrf_probe_detected", float64(1), mock.Anything).Return().Times(2)
	rec.EXPECT().RecordBusiness("ssrf_flag_raised", float64(1), mock.Anything).Return().Once()

	d := abuse.NewDetector(rec, discardLogger())

	assert.True(t, d.Inspect("http://127.0.0.1/solve/challenges/server-side"))
	assert.False(t, d.Inspect("https://imgur.com/b.png"))
	assert.True(t, d.Flagged())
	assert.True(t, d.Inspect("http://127.0.0.1/solve/challenges/server-side"))
	assert.True(t, d.Flagged())
}

func TestDetector_ConcurrentProbesRaiseOnce(t *testing.T) {
	const workers = 32

	rec := mocks.NewMockBusinessRecorder(t)
	rec.EXPECT().RecordBusiness("ssrf_probe_detected", float64(1), mock.Anything).Return().Times(workers)
	rec.EXPECT().RecordBusiness("ssrf_flag_raised", float64(1), mock.Anything).Return().Once()

	d := abuse.NewDetector(rec, discardLogger())

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Inspect("http://localhost/solve/challenges/server-side")
		}()
	}
	wg.Wait()

	assert.True(t, d.Flagged())
}
