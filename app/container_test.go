package app

import (
	"errors"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/soocke/spot-marker-go/config"
	"github.com/soocke/spot-marker-go/domain/capture"
	"github.com/soocke/spot-marker-go/domain/editor"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type recordingViews struct {
	frames  int
	status  []string
	mode    string
	count   string
	session time.Duration
}

func (v *recordingViews) ShowFrame(*image.RGBA)                    { v.frames++ }
func (v *recordingViews) SetStatus(s string)                       { v.status = append(v.status, s) }
func (v *recordingViews) SetModeLabel(s string)                    { v.mode = s }
func (v *recordingViews) SetZoneCount(s string)                    { v.count = s }
func (v *recordingViews) SetSession(monitored, full time.Duration) { v.session = monitored }

func imageConfig(t *testing.T, spots string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "lot.png")
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 160, 120))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()
	cfg := config.DefaultConfig()
	cfg.Source = config.SourceImage
	cfg.ImagePath = imgPath
	cfg.SpotsPath = filepath.Join(dir, "parking_spots.json")
	cfg.AlertCooldownMs = 0
	if spots != "" {
		if err := os.WriteFile(cfg.SpotsPath, []byte(spots), 0o644); err != nil {
			t.Fatalf("write spots: %v", err)
		}
	}
	return cfg
}

func TestBuildContainer_LoadsSpotsAndRuns(t *testing.T) {
	cfg := imageConfig(t, `[{"name":"Spot1","coordinates":[[10,10],[10,40],[40,40],[40,10]]}]`)
	c, err := BuildContainer(cfg, "", discardLogger)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer c.Close()
	if c.Store.Len() != 1 || !c.Store.Zones()[0].Available {
		t.Fatalf("expected one migrated available spot, got %+v", c.Store.Zones())
	}
	v := &recordingViews{}
	var stopErr error
	stops := 0
	loop := c.Wire(v, func() {}, func(err error) { stops++; stopErr = err })
	if len(v.status) != 1 || !strings.HasPrefix(v.status[0], "loaded 1") {
		t.Fatalf("unexpected startup status %v", v.status)
	}
	loop.Tick()
	if v.frames != 1 || v.count != "Spots: 1" || v.mode != "Mode: idle" {
		t.Fatalf("unexpected view state %+v", v)
	}
	c.Queue.Push(editor.KeyPress(editor.KeyQuit))
	loop.Tick()
	if stops != 1 || stopErr != nil || !loop.Stopped() {
		t.Fatalf("expected clean stop, stops=%d err=%v", stops, stopErr)
	}
}

func TestBuildContainer_MissingSpotsFile(t *testing.T) {
	c, err := BuildContainer(imageConfig(t, ""), "", discardLogger)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer c.Close()
	if c.Store.Len() != 0 || !strings.HasPrefix(c.StartupStatus, "no saved parking spots") {
		t.Fatalf("unexpected startup %q len=%d", c.StartupStatus, c.Store.Len())
	}
}

func TestBuildContainer_MalformedSpotsStartEmpty(t *testing.T) {
	c, err := BuildContainer(imageConfig(t, `[{"name":"A","coordinates":[[1,2],[3,4]]}]`), "", discardLogger)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer c.Close()
	if c.Store.Len() != 0 || !strings.HasPrefix(c.StartupStatus, "parking spots not loaded") {
		t.Fatalf("unexpected startup %q len=%d", c.StartupStatus, c.Store.Len())
	}
}

func TestBuildContainer_AcquisitionFailure(t *testing.T) {
	cfg := imageConfig(t, "")
	cfg.ImagePath = filepath.Join(t.TempDir(), "missing.png")
	_, err := BuildContainer(cfg, "", discardLogger)
	if !errors.Is(err, capture.ErrAcquisition) {
		t.Fatalf("expected acquisition failure, got %v", err)
	}
}
