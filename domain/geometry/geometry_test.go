package geometry

import (
	"image"
	"math"
	"testing"
)

func TestRectangleFromCorners_Order(t *testing.T) {
	got := RectangleFromCorners(image.Pt(10, 10), image.Pt(50, 40))
	want := []image.Point{{10, 10}, {10, 40}, {50, 40}, {50, 10}}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d: expected %v got %v", i, want[i], got[i])
		}
	}
}

func TestRectangleFromCorners_DegenerateAccepted(t *testing.T) {
	got := RectangleFromCorners(image.Pt(10, 10), image.Pt(10, 10))
	if len(got) != 4 {
		t.Fatalf("expected 4 points, got %d", len(got))
	}
	if !Degenerate(got) {
		t.Fatalf("expected equal corners to be degenerate")
	}
	if !Degenerate(RectangleFromCorners(image.Pt(0, 5), image.Pt(30, 5))) {
		t.Fatalf("expected zero-height rectangle to be degenerate")
	}
	if Degenerate(RectangleFromCorners(image.Pt(0, 0), image.Pt(1, 1))) {
		t.Fatalf("1x1 rectangle should not be degenerate")
	}
}

func TestPointInPolygon_RectangleCases(t *testing.T) {
	rect := RectangleFromCorners(image.Pt(10, 10), image.Pt(50, 40))
	cases := []struct {
		name string
		p    image.Point
		want bool
	}{
		{"centroid", Centroid(rect), true},
		{"corner", image.Pt(10, 10), true},
		{"top edge", image.Pt(30, 10), true},
		{"right edge", image.Pt(50, 25), true},
		{"left of", image.Pt(9, 25), false},
		{"below", image.Pt(30, 41), false},
		{"far away", image.Pt(500, 500), false},
	}
	for _, c := range cases {
		if got := PointInPolygon(c.p, rect); got != c.want {
			t.Errorf("%s %v: expected %v got %v", c.name, c.p, c.want, got)
		}
	}
}

func TestPointInPolygon_DragDirectionIrrelevant(t *testing.T) {
	// Drag from bottom-right to top-left produces a reversed winding.
	rect := RectangleFromCorners(image.Pt(50, 40), image.Pt(10, 10))
	if !PointInPolygon(image.Pt(30, 25), rect) {
		t.Fatalf("expected point inside reversed rectangle")
	}
	if PointInPolygon(image.Pt(60, 25), rect) {
		t.Fatalf("expected point outside reversed rectangle")
	}
}

func TestPointInPolygon_NonAxisAligned(t *testing.T) {
	diamond := []image.Point{{50, 0}, {100, 50}, {50, 100}, {0, 50}}
	if !PointInPolygon(image.Pt(50, 50), diamond) {
		t.Fatalf("center should be inside diamond")
	}
	if !PointInPolygon(image.Pt(75, 25), diamond) {
		t.Fatalf("edge midpoint should count as inside")
	}
	if PointInPolygon(image.Pt(90, 10), diamond) {
		t.Fatalf("bounding-box corner should be outside diamond")
	}
	concave := []image.Point{{0, 0}, {40, 0}, {40, 40}, {20, 20}, {0, 40}}
	if PointInPolygon(image.Pt(20, 35), concave) {
		t.Fatalf("notch point should be outside concave polygon")
	}
	if !PointInPolygon(image.Pt(5, 30), concave) {
		t.Fatalf("left lobe point should be inside concave polygon")
	}
}

func TestPointInPolygon_TranslatedBeyondDiagonal(t *testing.T) {
	corners := [][2]image.Point{
		{{10, 10}, {50, 40}},
		{{0, 0}, {3, 200}},
		{{400, 300}, {100, 120}},
	}
	for _, c := range corners {
		rect := RectangleFromCorners(c[0], c[1])
		b := Bounds(rect)
		diag := int(math.Ceil(math.Hypot(float64(b.Dx()), float64(b.Dy()))))
		center := Centroid(rect)
		if !PointInPolygon(center, rect) {
			t.Fatalf("centroid %v should be inside %v", center, rect)
		}
		for _, d := range []image.Point{{diag + 1, 0}, {-(diag + 1), 0}, {0, diag + 1}, {0, -(diag + 1)}} {
			if p := center.Add(d); PointInPolygon(p, rect) {
				t.Fatalf("point %v should be outside %v", p, rect)
			}
		}
	}
}

func TestPointInPolygon_Empty(t *testing.T) {
	if PointInPolygon(image.Pt(0, 0), nil) {
		t.Fatalf("empty polygon contains nothing")
	}
}
