package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/soocke/spot-marker-go/config"
	"github.com/soocke/spot-marker-go/domain/capture"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// SelectionOverlay is a transparent, resizable window used to pick the
// screen region the screen source captures. The region is stored in the
// config file and used from the next start.
type SelectionOverlay interface {
	OpenOrFocus()
	Clear()
}

type selectionOverlay struct {
	logger   *slog.Logger
	cfg      *config.Config
	cfgPath  string
	onStatus func(string)
	win      *ToplevelWidget
}

// NewSelectionOverlay creates a new overlay manager.
func NewSelectionOverlay(cfg *config.Config, cfgPath string, logger *slog.Logger, onStatus func(string)) SelectionOverlay {
	return &selectionOverlay{logger: logger, cfg: cfg, cfgPath: cfgPath, onStatus: onStatus}
}

const transparentKey = "#008080"

func (v *selectionOverlay) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background(transparentKey))
	win.WmTitle("Capture Region")
	v.win = win
	screen := capture.ScreenBounds(image.Rect(0, 0, 1920, 1080))
	initW, initH := max(screen.Dx()*2/3, 1), max(screen.Dy()*5/9, 1)
	if sel := v.cfg.Selection(); !sel.Empty() {
		WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", sel.Dx(), sel.Dy(), sel.Min.X, sel.Min.Y))
	} else {
		x, y := (screen.Dx()-initW)/2, (screen.Dy()-initH)/2
		WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	}
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-transparentcolor", transparentKey)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background(transparentKey))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.destroy))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clear := win.Button(Txt("Full Screen"), Command(func() { v.Clear(); v.destroy() }))
	Grid(clear, In(controls), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.destroy))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.destroy)
}

// Clear drops the stored region so the full screen is captured.
func (v *selectionOverlay) Clear() {
	if v.cfg == nil {
		return
	}
	v.cfg.SelectionX, v.cfg.SelectionY = 0, 0
	v.cfg.SelectionW, v.cfg.SelectionH = 0, 0
	v.save("capture region cleared; restart to capture the full screen")
}

func (v *selectionOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := parseGeometrySel(geom)
	if !ok {
		if v.logger != nil {
			v.logger.Warn("unparseable window geometry", "geometry", geom)
		}
		v.destroy()
		return
	}
	if v.cfg != nil {
		v.cfg.SelectionX, v.cfg.SelectionY = rect.Min.X, rect.Min.Y
		v.cfg.SelectionW, v.cfg.SelectionH = rect.Dx(), rect.Dy()
		v.save(fmt.Sprintf("capture region %dx%d+%d+%d saved; restart to apply", rect.Dx(), rect.Dy(), rect.Min.X, rect.Min.Y))
	}
	v.destroy()
}

func (v *selectionOverlay) save(okMsg string) {
	msg := okMsg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		msg = fmt.Sprintf("capture region not saved: %v", err)
	}
	if v.onStatus != nil {
		v.onStatus(msg)
	}
}

func (v *selectionOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// geomReSel matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var geomReSel = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometrySel parses a Tk geometry string and returns the corresponding rectangle.
func parseGeometrySel(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := geomReSel.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
