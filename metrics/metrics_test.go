package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetrics_Exposition(t *testing.T) {
	m := New()
	m.ObserveRender(1500 * time.Microsecond)
	m.ObserveRender(2 * time.Millisecond)
	m.Alerts.Add(1)
	m.Zones.Store(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	text := string(body)
	for _, want := range []string{
		"spotmarker_frames_rendered_total 2",
		"spotmarker_alerts_total 1",
		"spotmarker_zones 3",
		"spotmarker_render_latency_microseconds 2000",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in exposition:\n%s", want, text)
		}
	}
}

func TestMetrics_NilSafeObserve(t *testing.T) {
	var m *Metrics
	m.ObserveRender(time.Millisecond)
}
