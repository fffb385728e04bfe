// Package app is the composition root: it builds the window, wires the
// presenters and runs the frame loop on the Tk event loop.
package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/spot-marker-go/ui/theme"
	"github.com/soocke/spot-marker-go/ui/view"
)

// Application owns the Tk window lifecycle.
type Application struct {
	c       *AppContainer
	title   string
	tick    time.Duration
	afterID string
	metrics *http.Server
	exitErr error
	done    bool
}

func NewApplication(title string, c *AppContainer) *Application {
	tick := time.Duration(c.Config.TickMillis) * time.Millisecond
	return &Application{c: c, title: title, tick: tick}
}

// Start builds the window, starts the frame loop and blocks until the window
// is destroyed. It returns the error that ended the loop, nil after a quit.
func (a *Application) Start() error {
	cfg := a.c.Config
	theme.InitStyles(cfg.DarkMode)
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)

	rv := view.NewRootView(cfg, a.c.ConfigPath, a.c.Logger)
	rv.Build(a.c.Queue.Push, a.exitHandler)
	loop := a.c.Wire(rv, a.scheduleUpdate, a.shutdown)

	if cfg.MetricsAddr != "" {
		a.metrics = a.c.Metrics.Serve(cfg.MetricsAddr, func(err error) {
			a.c.Logger.Error("metrics endpoint failed", "addr", cfg.MetricsAddr, "error", err)
		})
		a.c.Logger.Info("metrics endpoint listening", "addr", cfg.MetricsAddr)
	}
	a.c.Logger.Info("commands", "help", strings.ReplaceAll(view.HelpText, " | ", "; "))

	// First tick right away; each tick schedules the next.
	loop.Tick()
	App.Wait()
	return a.exitErr
}

func (a *Application) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.c.Loop.Tick() })
}

// exitHandler handles the window close and Exit buttons.
func (a *Application) exitHandler() {
	if a.c.Loop != nil && !a.c.Loop.Stopped() {
		a.c.Loop.Quit()
		return
	}
	a.shutdown(nil)
}

// shutdown releases the frame source and the metrics endpoint and destroys
// the window. It runs once, when the frame loop stops.
func (a *Application) shutdown(err error) {
	if a.done {
		return
	}
	a.done = true
	a.exitErr = err
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if cerr := a.c.Close(); cerr != nil {
		a.c.Logger.Warn("frame source close failed", "error", cerr)
	}
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = a.metrics.Shutdown(ctx)
		cancel()
	}
	if err != nil {
		a.c.Logger.Error("frame loop stopped", "error", err)
	} else {
		a.c.Logger.Info("shutdown requested")
	}
	Destroy(App)
}
