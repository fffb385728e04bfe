// Package debug logs runtime and capture statistics while config.Debug is
// set. Sampling is driven by the frame loop tick, so it needs no goroutine.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/soocke/spot-marker-go/domain/capture"
)

// StatsSource provides capture statistics.
type StatsSource interface {
	Stats() capture.CaptureStats
}

// Sampler logs goroutine count, memory and capture timing at most once per
// interval.
type Sampler struct {
	logger       *slog.Logger
	interval     time.Duration
	source       StatsSource
	last         time.Time
	samples      []metrics.Sample
	rssErrLogged bool
}

// NewSampler returns a sampler; a non-positive interval defaults to 2s.
func NewSampler(interval time.Duration, source StatsSource, logger *slog.Logger) *Sampler {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Sampler{
		logger:   logger,
		interval: interval,
		source:   source,
		samples:  []metrics.Sample{{Name: "/sched/goroutines:goroutines"}},
	}
}

// Sample emits one log record when the interval has elapsed since the last.
func (s *Sampler) Sample(now time.Time) {
	if s == nil || s.logger == nil {
		return
	}
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return
	}
	s.last = now
	metrics.Read(s.samples)
	var goroutines uint64
	if s.samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = s.samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
	if rss, err := processRSS(); err == nil {
		attrs = append(attrs, slog.Uint64("rss", rss))
	} else if !s.rssErrLogged {
		s.rssErrLogged = true
		s.logger.Debug("rss unavailable", "error", err)
	}
	if s.source != nil {
		st := s.source.Stats()
		attrs = append(attrs,
			slog.Uint64("captures", st.Captures),
			slog.Uint64("capture_skipped", st.Skipped),
			slog.Float64("capture_avg_us", st.AvgCaptureMicros),
		)
	}
	s.logger.Debug("runtime stats", attrs...)
}
