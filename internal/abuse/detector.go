package abuse

//go:generate go tool mockery

import (
	"log/slog"
	"regexp"
	"sync/atomic"
)

const (
	metricProbeDetected = "ssrf_probe_detected"
	metricFlagRaised    = "ssrf_flag_raised"
)

var challengeProbePattern = regexp.MustCompile(`solve/challenges/server-side`)

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

// Detector watches candidate URLs for internal challenge probing. The flag it
// keeps only ever goes from unset to set and never influences validation.
type Detector struct {
	pattern  *regexp.Regexp
	flagged  atomic.Bool
	recorder BusinessRecorder
	logger   *slog.Logger
}

func NewDetector(recorder BusinessRecorder, logger *slog.Logger) *Detector {
	return &Detector{
		pattern:  challengeProbePattern,
		recorder: recorder,
		logger:   logger,
	}
}

// Inspect reports whether rawURL looks like a challenge probe.
func (d *Detector) Inspect(rawURL string) bool {
	if !d.pattern.MatchString(rawURL) {
		return false
	}

	d.recorder.RecordBusiness(metricProbeDetected, 1, nil)

	if d.flagged.CompareAndSwap(false, true) {
		d.recorder.RecordBusiness(metricFlagRaised, 1, nil)
		d.logger.Warn("ssrf probe detected, abuse flag raised")
	}

	return true
}

// Flagged reports whether any probe was seen since process start. main logs it
// on shutdown.
func (d *Detector) Flagged() bool {
	return d.flagged.Load()
}
