package view

import (
	"image"

	"github.com/soocke/spot-marker-go/domain/editor"
	"github.com/soocke/spot-marker-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FrameView displays the annotated frame and reports pointer input on it in
// frame coordinates.
type FrameView struct {
	label  *LabelWidget
	photo  *Img // last Tk photo, deleted when replaced
	maxW   int
	maxH   int
	ratio  float64
	origin image.Point
}

// NewFrameView creates the frame label at row, spanning cols columns, and
// forwards pointer events to push.
func NewFrameView(row, cols, maxW, maxH int, push func(editor.Event)) *FrameView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(0), Cursor("crosshair"))
	Grid(lbl, Row(row), Column(0), Columnspan(cols), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &FrameView{label: lbl, photo: photo, maxW: maxW, maxH: maxH, ratio: 1}
	if push == nil {
		return v
	}
	down := func(mods editor.Modifier) func(*Event) {
		return func(e *Event) { push(editor.PointerDown(v.toFrame(e), mods)) }
	}
	Bind(lbl, "<ButtonPress-1>", Command(down(0)))
	Bind(lbl, "<Control-ButtonPress-1>", Command(down(editor.ModCtrl)))
	Bind(lbl, "<Alt-ButtonPress-1>", Command(down(editor.ModAlt)))
	Bind(lbl, "<B1-Motion>", Command(func(e *Event) { push(editor.PointerMove(v.toFrame(e))) }))
	Bind(lbl, "<ButtonRelease-1>", Command(func(e *Event) { push(editor.PointerUp(v.toFrame(e))) }))
	Bind(lbl, "<ButtonPress-3>", Command(func(e *Event) { push(editor.SecondaryDown(v.toFrame(e))) }))
	return v
}

func (v *FrameView) toFrame(e *Event) image.Point {
	return images.ToSource(image.Pt(e.X, e.Y), v.ratio, v.origin)
}

// ShowFrame scales img to the display bounds and replaces the shown photo.
// The pixels are encoded before returning, so img may be reused afterwards.
func (v *FrameView) ShowFrame(img *image.RGBA) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	b := img.Bounds()
	v.ratio = images.FitRatio(b.Dx(), b.Dy(), v.maxW, v.maxH)
	v.origin = b.Min
	photo := NewPhoto(Data(images.EncodePNG(images.ScaleToFit(img, v.maxW, v.maxH))))
	v.label.Configure(Image(photo))
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
}
