// Package geometry holds the small amount of planar math needed for zones:
// hit testing against simple polygons and turning a drag gesture into a
// rectangle. Points are image.Point so the results plug directly into the
// frame rendering code.
package geometry

import "image"

// RectangleFromCorners builds the closed quadrilateral spanned by a drag from
// p0 (press) to p1 (release). The vertex order is
// [p0, (p0.X, p1.Y), p1, (p1.X, p0.Y)]. Equal corners yield a zero-area
// polygon; callers decide whether to keep it.
func RectangleFromCorners(p0, p1 image.Point) []image.Point {
	return []image.Point{
		p0,
		image.Pt(p0.X, p1.Y),
		p1,
		image.Pt(p1.X, p0.Y),
	}
}

// PointInPolygon reports whether p lies inside poly or exactly on one of its
// edges. It uses an even-odd ray cast and therefore works for any simple
// polygon, not only axis-aligned rectangles.
func PointInPolygon(p image.Point, poly []image.Point) bool {
	n := len(poly)
	switch n {
	case 0:
		return false
	case 1:
		return p == poly[0]
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Compare p.X against the edge crossing at p.Y without dividing:
		// p.X < a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		num := int64(p.Y-a.Y) * int64(b.X-a.X)
		den := int64(b.Y - a.Y)
		lhs := int64(p.X-a.X) * den
		if (den > 0 && lhs < num) || (den < 0 && lhs > num) {
			inside = !inside
		}
	}
	return inside
}

func onSegment(p, a, b image.Point) bool {
	cross := int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
	if cross != 0 {
		return false
	}
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// Bounds returns the axis-aligned bounding box of poly. Max is inclusive of
// the extreme vertices, so a single point yields an empty rectangle.
func Bounds(poly []image.Point) image.Rectangle {
	if len(poly) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: poly[0], Max: poly[0]}
	for _, pt := range poly[1:] {
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	return r
}

// Degenerate reports whether poly has zero width or zero height.
func Degenerate(poly []image.Point) bool {
	b := Bounds(poly)
	return b.Dx() == 0 || b.Dy() == 0
}

// Centroid returns the vertex average of poly, which is the true centroid
// for rectangles.
func Centroid(poly []image.Point) image.Point {
	if len(poly) == 0 {
		return image.Point{}
	}
	var sx, sy int
	for _, pt := range poly {
		sx += pt.X
		sy += pt.Y
	}
	return image.Pt(sx/len(poly), sy/len(poly))
}
