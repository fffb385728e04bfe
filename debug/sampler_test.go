package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/soocke/spot-marker-go/domain/capture"
)

type fixedStats struct{ st capture.CaptureStats }

func (f fixedStats) Stats() capture.CaptureStats { return f.st }

func TestSampler_RespectsInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSampler(time.Second, fixedStats{capture.CaptureStats{Captures: 42}}, logger)
	t0 := time.Unix(1000, 0)
	s.Sample(t0)
	s.Sample(t0.Add(500 * time.Millisecond))
	s.Sample(t0.Add(time.Second))
	if n := strings.Count(buf.String(), "runtime stats"); n != 2 {
		t.Fatalf("expected 2 samples, got %d:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "captures=42") {
		t.Fatalf("capture stats missing:\n%s", buf.String())
	}
}

func TestSampler_NilSafe(t *testing.T) {
	var s *Sampler
	s.Sample(time.Now())
	NewSampler(0, nil, nil).Sample(time.Now())
}
