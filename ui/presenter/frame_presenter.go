package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/spot-marker-go/domain/alert"
	"github.com/soocke/spot-marker-go/domain/capture"
	"github.com/soocke/spot-marker-go/domain/editor"
	"github.com/soocke/spot-marker-go/domain/zone"
	"github.com/soocke/spot-marker-go/metrics"
	"github.com/soocke/spot-marker-go/ui/images"
)

// FrameSource supplies frames on demand.
type FrameSource interface {
	Read() (capture.FrameSnapshot, error)
}

// ZoneSource exposes the store state needed for the overlay and alert rule.
type ZoneSource interface {
	Zones() []zone.Zone
	AllOccupied() bool
}

// EditorState exposes the editor mode and drag preview.
type EditorState interface {
	State() editor.State
	Preview() ([]image.Point, bool)
}

// FrameView displays a rendered frame.
type FrameView interface {
	ShowFrame(img *image.RGBA)
}

// FramePresenter fetches the current frame, draws the zone overlay on it,
// evaluates the occupancy alert and hands the result to the view.
type FramePresenter struct {
	Source       FrameSource
	Zones        ZoneSource
	Editor       EditorState
	View         FrameView
	Alerter      alert.Alerter
	AlertMessage string
	Metrics      *metrics.Metrics
	Logger       *slog.Logger

	shown    *image.RGBA // frame currently held by the view
	alerting bool
}

// Render performs one acquire/draw/alert/display pass. A frame read error is
// returned unchanged and is fatal to the loop.
func (p *FramePresenter) Render() error { return p.render(true) }

// Redraw refreshes the display within the same tick. The warning overlay
// reflects the current zones, but the alert is neither dispatched nor counted;
// the next Render does that.
func (p *FramePresenter) Redraw() error { return p.render(false) }

func (p *FramePresenter) render(alertPass bool) error {
	if p == nil || p.Source == nil {
		return nil
	}
	snap, err := p.Source.Read()
	if err != nil {
		if p.Metrics != nil {
			p.Metrics.FrameErrors.Add(1)
		}
		return err
	}
	start := time.Now()
	alerting := AlertRaised(p.Zones)
	images.RenderOverlay(snap.Image, p.overlay(alerting))
	if p.View != nil {
		p.View.ShowFrame(snap.Image)
	}
	// The view has copied the pixels; the previous frame can be reused.
	capture.RecycleFrame(p.shown)
	p.shown = snap.Image
	p.Metrics.ObserveRender(time.Since(start))
	if p.Metrics != nil && p.Zones != nil {
		p.Metrics.Zones.Store(int64(len(p.Zones.Zones())))
	}
	if !alertPass {
		return nil
	}
	if alerting {
		p.raiseAlert()
	} else if p.alerting && p.Logger != nil {
		p.Logger.Info("occupancy alert cleared")
	}
	p.alerting = alerting
	return nil
}

// Alerting reports whether the last rendered frame raised the alert.
func (p *FramePresenter) Alerting() bool { return p != nil && p.alerting }

func (p *FramePresenter) overlay(alerting bool) images.Overlay {
	var o images.Overlay
	clickDelete := p.Editor != nil && p.Editor.State() == editor.StateDeleteByClick
	if p.Zones != nil {
		for _, z := range p.Zones.Zones() {
			c := images.Green
			if clickDelete || !z.Available {
				c = images.Red
			}
			o.Zones = append(o.Zones, images.OverlayZone{Polygon: z.Polygon(), Label: z.Name, Color: c})
		}
	}
	if p.Editor != nil {
		if preview, ok := p.Editor.Preview(); ok {
			o.Preview = preview
		}
	}
	if alerting {
		o.Warning = p.AlertMessage
	}
	return o
}

func (p *FramePresenter) raiseAlert() {
	if p.Metrics != nil {
		p.Metrics.Alerts.Add(1)
	}
	if p.Alerter == nil {
		return
	}
	if err := p.Alerter.Alert(p.AlertMessage); err != nil && p.Logger != nil {
		p.Logger.Error("alert dispatch failed", "error", err)
	}
}

// Close releases the frame held for display.
func (p *FramePresenter) Close() {
	if p == nil {
		return
	}
	capture.RecycleFrame(p.shown)
	p.shown = nil
}

// AlertRaised is the occupancy rule: the store is non-empty and no zone is
// available.
func AlertRaised(zones ZoneSource) bool {
	return zones != nil && zones.AllOccupied()
}

// errFrameLoop annotates a fatal frame loop error.
func errFrameLoop(err error) error { return fmt.Errorf("frame loop stopped: %w", err) }
