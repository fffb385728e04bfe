package images

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay colours.
var (
	Green = color.RGBA{G: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)

const (
	lineThickness = 2
	labelOffsetY  = 10
)

// OverlayZone is one polygon to outline with a label above its first vertex.
type OverlayZone struct {
	Polygon []image.Point
	Label   string
	Color   color.RGBA
}

// Overlay describes everything drawn on top of a frame.
type Overlay struct {
	Zones   []OverlayZone
	Preview []image.Point // drag rectangle in progress, if any
	Warning string        // drawn at WarningOrigin when non-empty
}

// WarningOrigin is the baseline origin of the warning text.
var WarningOrigin = image.Pt(50, 50)

// RenderOverlay draws o into dst in place.
func RenderOverlay(dst *image.RGBA, o Overlay) {
	if dst == nil {
		return
	}
	for _, z := range o.Zones {
		DrawPolygon(dst, z.Polygon, z.Color, lineThickness)
		if z.Label != "" && len(z.Polygon) > 0 {
			DrawLabel(dst, z.Polygon[0].Sub(image.Pt(0, labelOffsetY)), z.Label, z.Color)
		}
	}
	if len(o.Preview) > 0 {
		DrawPolygon(dst, o.Preview, Green, lineThickness)
	}
	if o.Warning != "" {
		DrawLabel(dst, WarningOrigin, o.Warning, Red)
	}
}

// DrawPolygon outlines the closed polygon poly.
func DrawPolygon(dst *image.RGBA, poly []image.Point, c color.RGBA, thickness int) {
	for i := range poly {
		DrawLine(dst, poly[i], poly[(i+1)%len(poly)], c, thickness)
	}
}

// DrawLine draws a Bresenham line from a to b. The segment is first clipped
// to dst (grown by thickness), so far off-frame endpoints cost nothing.
func DrawLine(dst *image.RGBA, a, b image.Point, c color.RGBA, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	var ok bool
	if a, b, ok = clipSegment(a, b, dst.Rect.Inset(-thickness)); !ok {
		return
	}
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		plot(dst, x, y, c, thickness)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// clipSegment clips a-b to r (Liang-Barsky). It returns false when the
// segment misses r. Endpoints already inside r are returned unchanged.
func clipSegment(a, b image.Point, r image.Rectangle) (image.Point, image.Point, bool) {
	if r.Empty() {
		return a, b, false
	}
	if a.In(r) && b.In(r) {
		return a, b, true
	}
	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X-1) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = image.Pt(int(math.Round(x0+t0*dx)), int(math.Round(y0+t0*dy)))
	}
	if t1 < 1 {
		cb = image.Pt(int(math.Round(x0+t1*dx)), int(math.Round(y0+t1*dy)))
	}
	return ca, cb, true
}

func plot(dst *image.RGBA, x, y int, c color.RGBA, thickness int) {
	off := thickness / 2
	r := image.Rect(x-off, y-off, x-off+thickness, y-off+thickness).Intersect(dst.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			dst.SetRGBA(px, py, c)
		}
	}
}

// DrawLabel writes text with its baseline starting at origin.
func DrawLabel(dst *image.RGBA, origin image.Point, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
