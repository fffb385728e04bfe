package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/vova616/screenshot"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/soocke/spot-marker-go/config"
)

// Screen capture hooks, replaced in tests.
var (
	captureScreen = screenshot.CaptureScreen
	captureRect   = screenshot.CaptureRect
	screenRect    = screenshot.ScreenRect
)

// ScreenBounds returns the primary screen rectangle, or fallback when the
// platform cannot report it.
func ScreenBounds(fallback image.Rectangle) image.Rectangle {
	r, err := screenRect()
	if err != nil || r.Empty() {
		return fallback
	}
	return r
}

// NewScreenSource captures the full screen, or only sel when it is non-empty.
func NewScreenSource(sel image.Rectangle, logger *slog.Logger) Source {
	if sel.Empty() {
		return newGrabber("screen", captureScreen, logger)
	}
	return newGrabber(fmt.Sprintf("screen%v", sel), func() (*image.RGBA, error) {
		return captureRect(sel)
	}, logger)
}

// NewImageSource serves a still picture decoded from path. Each Read returns
// a fresh copy so overlays never accumulate on the original.
func NewImageSource(path string, logger *slog.Logger) (Source, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return newGrabber("image:"+path, func() (*image.RGBA, error) {
		return cloneFrame(img), nil
	}, logger), nil
}

func decodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out, nil
}

// Open probes the configured frame sources in order and returns the first
// one that delivers a frame. For the screen source the configured selection
// rectangle is tried before the full screen. The probe frame is recycled.
func Open(cfg *config.Config, logger *slog.Logger) (Source, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var candidates []func() (Source, error)
	switch cfg.Source {
	case config.SourceImage:
		candidates = append(candidates, func() (Source, error) { return NewImageSource(cfg.ImagePath, logger) })
	default:
		if sel := cfg.Selection(); !sel.Empty() {
			candidates = append(candidates, func() (Source, error) { return NewScreenSource(sel, logger), nil })
		}
		candidates = append(candidates, func() (Source, error) { return NewScreenSource(image.Rectangle{}, logger), nil })
	}
	errs := []error{ErrAcquisition}
	for i, open := range candidates {
		src, err := open()
		if err == nil {
			var snap FrameSnapshot
			if snap, err = src.Read(); err == nil {
				RecycleFrame(snap.Image)
				if logger != nil {
					logger.Info("frame source opened", "source", src.Name(), "candidate", i)
				}
				return src, nil
			}
			_ = src.Close()
		}
		if logger != nil {
			logger.Warn("frame source unavailable", "candidate", i, "error", err)
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}
