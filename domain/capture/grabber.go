package capture

import (
	"fmt"
	"image"
	"log/slog"
	"time"
)

const captureStatsLogInterval = 5 * time.Second

// grabFunc produces one fresh frame owned by the caller.
type grabFunc func() (*image.RGBA, error)

// grabber adapts a grabFunc to Source, keeping capture instrumentation. It is
// driven synchronously by the frame loop and does no locking.
type grabber struct {
	name         string
	grab         grabFunc
	logger       *slog.Logger
	closed       bool
	captures     uint64
	skipped      uint64
	captureNanos uint64
	sequence     uint64
	last         time.Time
	lastLog      time.Time
}

func newGrabber(name string, grab grabFunc, logger *slog.Logger) *grabber {
	return &grabber{name: name, grab: grab, logger: logger}
}

func (g *grabber) Name() string { return g.name }

// Read grabs the next frame. Failures are counted as skipped and returned
// wrapped in ErrFrameRead.
func (g *grabber) Read() (FrameSnapshot, error) {
	if g.closed {
		return FrameSnapshot{}, fmt.Errorf("%w: %s closed", ErrFrameRead, g.name)
	}
	start := time.Now()
	img, err := g.grab()
	if err == nil && (img == nil || img.Rect.Empty()) {
		err = fmt.Errorf("empty frame")
	}
	if err != nil {
		g.skipped++
		return FrameSnapshot{}, fmt.Errorf("%w: %s: %w", ErrFrameRead, g.name, err)
	}
	now := time.Now()
	g.captureNanos += uint64(now.Sub(start).Nanoseconds())
	g.captures++
	g.sequence++
	g.last = now
	if g.logger != nil && now.Sub(g.lastLog) >= captureStatsLogInterval {
		g.lastLog = now
		g.logStats()
	}
	return FrameSnapshot{Image: img, CapturedAt: now, Sequence: g.sequence}, nil
}

func (g *grabber) Close() error {
	g.closed = true
	return nil
}

func (g *grabber) Stats() CaptureStats {
	var avg time.Duration
	avgMicros := 0.0
	if g.captures > 0 && g.captureNanos > 0 {
		avg = time.Duration(g.captureNanos / g.captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	age := time.Duration(0)
	if !g.last.IsZero() {
		age = time.Since(g.last)
	}
	return CaptureStats{
		Captures:         g.captures,
		Skipped:          g.skipped,
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      g.last,
		LatestFrameAge:   age,
		Sequence:         g.sequence,
	}
}

func (g *grabber) logStats() {
	stats := g.Stats()
	g.logger.Debug("capture.stats",
		"source", g.name,
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
	)
}
