package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/spot-marker-go/config"
	"github.com/soocke/spot-marker-go/domain/editor"
	"github.com/soocke/spot-marker-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// HelpText lists the key and mouse bindings.
const HelpText = "drag: mark spot | s: save | d: draw hint | x: delete last | r: click-delete mode | " +
	"ctrl/alt+click: delete spot | right-click: toggle occupied | q: quit (leaves a delete mode first)"

// RootView composes the top-level layout: mode and count labels, session
// stats, the annotated frame and a status line. It owns high-level subviews
// and exposes the setters the presenters need.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	Session   SessionStats
	Frame     *FrameView
	Settings  ConfigPanel
	Selection SelectionOverlay

	ModeLabel   *LabelWidget
	CountLabel  *LabelWidget
	StatusLabel *LabelWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. push receives every pointer and key event
// meant for the editor; onExit is bound to the Exit button.
func (rv *RootView) Build(push func(editor.Event), onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: mode, zone count, session stats, buttons
	pal := theme.CurrentPalette()
	rv.ModeLabel = Label(Txt("Mode: idle"), Background(pal.Accent), Foreground("white"), Borderwidth(1), Relief("groove"))
	Grid(rv.ModeLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.CountLabel = Label(Txt("Spots: 0"), Foreground(pal.Primary), Borderwidth(1), Relief("ridge"))
	Grid(rv.CountLabel, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Session = NewSessionStats(0, 2)

	rv.Settings = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, rv.SetStatus)
	rv.Selection = NewSelectionOverlay(rv.cfg, rv.cfgPath, rv.logger, rv.SetStatus)
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	settingsBtn := TButton(Txt("Settings"), Style(theme.StylePrimaryButton), Command(rv.Settings.OpenOrFocus))
	Grid(settingsBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	regionBtn := TButton(Txt("Capture Region"), Style(theme.StylePrimaryButton), Command(rv.Selection.OpenOrFocus))
	Grid(regionBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))

	// Row 1: frame
	rv.Frame = NewFrameView(1, 5, rv.cfg.DisplayMaxW, rv.cfg.DisplayMaxH, push)

	// Rows 2-3: status and help
	rv.StatusLabel = Label(Txt("ready"), Anchor("w"))
	Grid(rv.StatusLabel, Row(2), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"))
	help := Label(Txt(HelpText), Anchor("w"), Foreground(pal.TextMuted))
	Grid(help, Row(3), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	if push != nil {
		for _, k := range []rune{editor.KeyQuit, editor.KeySave, editor.KeyDraw, editor.KeyDeleteLast, editor.KeyClickDelete} {
			key := k
			Bind(App, "<KeyPress-"+string(key)+">", Command(func() { push(editor.KeyPress(key)) }))
		}
	}
}

// ShowFrame proxies to the frame view.
func (rv *RootView) ShowFrame(img *image.RGBA) {
	if rv != nil && rv.Frame != nil {
		rv.Frame.ShowFrame(img)
	}
}

func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetModeLabel(text string) {
	if rv != nil && rv.ModeLabel != nil {
		rv.ModeLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetZoneCount(text string) {
	if rv != nil && rv.CountLabel != nil {
		rv.CountLabel.Configure(Txt(text))
	}
}

// SetSession updates the monitored and full durations.
func (rv *RootView) SetSession(monitored, full time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(monitored)
	rv.Session.SetTotal(full)
}
