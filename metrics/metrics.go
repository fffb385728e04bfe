// Package metrics exposes frame loop counters to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics. Counters are atomics so the
// optional HTTP endpoint can read them while the frame loop writes.
type Metrics struct {
	FramesRendered atomic.Uint64
	FrameErrors    atomic.Uint64
	Alerts         atomic.Uint64
	InputEvents    atomic.Uint64
	SaveFailures   atomic.Uint64
	Zones          atomic.Int64
	RenderMicros   atomic.Uint64

	registry *prometheus.Registry
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.register()
	return m
}

func (m *Metrics) register() {
	counter := func(name, help string, v *atomic.Uint64) {
		m.registry.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{Name: name, Help: help},
			func() float64 { return float64(v.Load()) },
		))
	}
	counter("spotmarker_frames_rendered_total", "Frames rendered with the zone overlay", &m.FramesRendered)
	counter("spotmarker_frame_errors_total", "Frame read failures", &m.FrameErrors)
	counter("spotmarker_alerts_total", "Frames on which the occupancy alert fired", &m.Alerts)
	counter("spotmarker_input_events_total", "Pointer and key events dispatched to the editor", &m.InputEvents)
	counter("spotmarker_save_failures_total", "Failed attempts to persist the parking spots", &m.SaveFailures)
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Name: "spotmarker_zones", Help: "Parking spots currently defined"},
		func() float64 { return float64(m.Zones.Load()) },
	))
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Name: "spotmarker_render_latency_microseconds", Help: "Duration of the last overlay render"},
		func() float64 { return float64(m.RenderMicros.Load()) },
	))
}

// ObserveRender records one rendered frame and its duration.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.FramesRendered.Add(1)
	m.RenderMicros.Store(uint64(d.Microseconds()))
}

// Handler returns the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts the metrics endpoint on addr in the background and returns
// the server so the caller can shut it down.
func (m *Metrics) Serve(addr string, onErr func(error)) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && onErr != nil {
			onErr(err)
		}
	}()
	return srv
}
