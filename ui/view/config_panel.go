package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/spot-marker-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings window. Changes are written to the config
// file and take effect on the next start.
type ConfigPanel interface {
	OpenOrFocus()
	ApplyChanges() error
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onStatus func(string)
	win      *ToplevelWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onStatus receives a short
// result line after Apply.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onStatus func(string)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onStatus: onStatus}
}

// OpenOrFocus shows the settings window. It lives in its own toplevel so
// typing into its fields does not reach the editor key bindings.
func (v *configPanel) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	c := v.cfg
	win := App.Toplevel()
	win.WmTitle("Settings")
	v.win = win
	v.widgets = make(map[string]*TextWidget)
	row := 0
	makeRow := func(id, label, value string) {
		lbl := win.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := win.Text(Height(1), Width(32))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("spotsPath", "Spots File", c.SpotsPath)
	makeRow("source", "Source (screen/image)", c.Source)
	makeRow("imagePath", "Image Path", c.ImagePath)
	makeRow("tickMs", "Tick (ms)", strconv.Itoa(c.TickMillis))
	makeRow("displayMaxW", "Display Max Width", strconv.Itoa(c.DisplayMaxW))
	makeRow("displayMaxH", "Display Max Height", strconv.Itoa(c.DisplayMaxH))
	makeRow("alertMessage", "Alert Message", c.AlertMessage)
	makeRow("alertCooldownMs", "Alert Cooldown (ms)", strconv.Itoa(c.AlertCooldownMs))
	makeRow("metricsAddr", "Metrics Address", c.MetricsAddr)
	makeRow("debug", "Debug (true/false)", strconv.FormatBool(c.Debug))
	makeRow("darkMode", "Dark Mode (true/false)", strconv.FormatBool(c.DarkMode))
	apply := win.Button(Txt("Apply"), Command(func() { _ = v.ApplyChanges() }))
	Grid(apply, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	closeBtn := win.Button(Txt("Close"), Command(v.close))
	Grid(closeBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.close)
}

func (v *configPanel) close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.widgets = nil
	}
}

func (v *configPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *configPanel) ApplyChanges() error {
	if v.cfg == nil || v.widgets == nil {
		return nil
	}
	cfg := *v.cfg // copy
	assignString := func(id string, dst *string) {
		if s, ok := v.text(id); ok {
			*dst = s
		}
	}
	assignInt := func(id string, dst *int) {
		if s, ok := v.text(id); ok {
			if i, err := strconv.Atoi(s); err == nil {
				*dst = i
			}
		}
	}
	assignString("spotsPath", &cfg.SpotsPath)
	assignString("source", &cfg.Source)
	assignString("imagePath", &cfg.ImagePath)
	assignInt("tickMs", &cfg.TickMillis)
	assignInt("displayMaxW", &cfg.DisplayMaxW)
	assignInt("displayMaxH", &cfg.DisplayMaxH)
	assignString("alertMessage", &cfg.AlertMessage)
	assignInt("alertCooldownMs", &cfg.AlertCooldownMs)
	assignString("metricsAddr", &cfg.MetricsAddr)
	assignBool := func(id string, dst *bool) {
		if s, ok := v.text(id); ok {
			if b, ok := parseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	assignBool("debug", &cfg.Debug)
	assignBool("darkMode", &cfg.DarkMode)
	if err := cfg.Validate(); err != nil {
		return err
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		v.status(fmt.Sprintf("settings not saved: %v", err))
		return err
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	v.status("settings saved; restart to apply")
	return nil
}

func (v *configPanel) status(s string) {
	if v.onStatus != nil {
		v.onStatus(s)
	}
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
