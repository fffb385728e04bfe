package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/spot-marker-go/config"
	"github.com/soocke/spot-marker-go/debug"
	"github.com/soocke/spot-marker-go/domain/alert"
	"github.com/soocke/spot-marker-go/domain/capture"
	"github.com/soocke/spot-marker-go/domain/editor"
	"github.com/soocke/spot-marker-go/domain/zone"
	"github.com/soocke/spot-marker-go/metrics"
	"github.com/soocke/spot-marker-go/ui/model"
	"github.com/soocke/spot-marker-go/ui/presenter"
)

// Views is the view surface driven by the presenters.
type Views interface {
	presenter.FrameView
	presenter.StatusView
	presenter.ModeView
	presenter.SessionView
}

// AppContainer assembles models, services and presenters. The Tk view is
// attached later with Wire, once the window exists.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Store   *zone.Store
	Editor  *editor.Editor
	Source  capture.Source
	Queue   *model.EventQueue
	Capture *model.CaptureModel
	Session *model.SessionModel
	Metrics *metrics.Metrics
	Alerter alert.Alerter
	Sampler *debug.Sampler

	// StartupStatus describes the result of loading the saved spots.
	StartupStatus string

	// Presenters
	FramePresenter   *presenter.FramePresenter
	InputPresenter   *presenter.InputPresenter
	ModePresenter    *presenter.ModePresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer loads the saved spots and opens the frame source. It fails
// only when no frame source can be acquired.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Store = zone.NewStore(logger)
	c.StartupStatus = loadSpots(c.Store, cfg.SpotsPath, logger)

	src, err := capture.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open frame source: %w", err)
	}
	c.Source = src

	c.Editor = editor.New(c.Store, cfg.SpotsPath, logger)
	c.Queue = model.NewEventQueue(model.DefaultQueueLimit)
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewSessionModel()
	c.Metrics = metrics.New()
	c.Alerter = alert.NewThrottled(alert.NewBeeper(logger), time.Duration(cfg.AlertCooldownMs)*time.Millisecond, logger)
	if cfg.Debug {
		c.Sampler = debug.NewSampler(2*time.Second, src, logger)
	}
	return c, nil
}

// loadSpots fills store from path and returns an operator-facing summary.
// A missing file is the normal first run; any other failure leaves the
// store empty and is reported.
func loadSpots(store *zone.Store, path string, logger *slog.Logger) string {
	err := store.Load(path)
	switch {
	case err == nil:
		if logger != nil {
			logger.Info("parking spots loaded", "path", path, "count", store.Len())
		}
		return fmt.Sprintf("loaded %d parking spots from %s", store.Len(), path)
	case errors.Is(err, zone.ErrFileNotFound):
		if logger != nil {
			logger.Info("no saved parking spots", "path", path)
		}
		return "no saved parking spots, drag on the frame to mark one"
	default:
		if logger != nil {
			logger.Error("parking spots not loaded", "path", path, "error", err)
		}
		return fmt.Sprintf("parking spots not loaded: %v", err)
	}
}

// Wire builds the presenters and the frame loop on top of v. schedule
// arranges the next Tick; stop is called once when the loop ends.
func (c *AppContainer) Wire(v Views, schedule func(), stop func(error)) *presenter.Loop {
	c.FramePresenter = &presenter.FramePresenter{
		Source:       c.Source,
		Zones:        c.Store,
		Editor:       c.Editor,
		View:         v,
		Alerter:      c.Alerter,
		AlertMessage: c.Config.AlertMessage,
		Metrics:      c.Metrics,
		Logger:       c.Logger,
	}
	c.InputPresenter = &presenter.InputPresenter{
		Queue:   c.Queue,
		Editor:  c.Editor,
		View:    v,
		Metrics: c.Metrics,
		Logger:  c.Logger,
	}
	c.ModePresenter = presenter.NewModePresenter(c.Editor, c.Store, v)
	c.Editor.AddListener(c.ModePresenter.OnState)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, c.FramePresenter, v)
	c.Loop = presenter.NewLoop(c.FramePresenter, c.InputPresenter, c.ModePresenter, c.SessionPresenter, schedule, stop)
	c.Loop.Capture = c.Capture
	if c.Sampler != nil {
		c.Loop.Sampler = c.Sampler
	}
	if c.StartupStatus != "" {
		v.SetStatus(c.StartupStatus)
	}
	return c.Loop
}

// Close releases the frame source.
func (c *AppContainer) Close() error {
	if c == nil || c.Source == nil {
		return nil
	}
	err := c.Source.Close()
	c.Source = nil
	return err
}
