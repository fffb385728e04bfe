package capture

import (
	"errors"
	"image"
	"time"
)

var (
	// ErrAcquisition is returned by Open when no frame source can be used.
	ErrAcquisition = errors.New("no frame source available")
	// ErrFrameRead is returned by Source.Read when a frame cannot be produced.
	ErrFrameRead = errors.New("frame read failed")
)

// Source provides frames on demand. Read is called from the frame loop
// goroutine only; the returned image is owned by the caller, who may hand it
// back with RecycleFrame once it is no longer referenced.
type Source interface {
	Read() (FrameSnapshot, error)
	Close() error
	Stats() CaptureStats
	Name() string
}

// FrameSnapshot carries a captured frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats summarises capture behaviour for instrumentation.
type CaptureStats struct {
	Captures         uint64
	Skipped          uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
	LatestFrameAge   time.Duration
	Sequence         uint64
}
