// Package zone owns the ordered collection of parking spots and its JSON
// representation on disk.
package zone

import (
	"fmt"
	"image"

	"github.com/soocke/spot-marker-go/domain/geometry"
)

// Points is the number of vertices every zone carries.
const Points = 4

// Zone is a named quadrilateral with an availability flag.
type Zone struct {
	Name        string
	Coordinates [Points]image.Point
	Available   bool
}

// Polygon returns the vertices as a slice for geometry helpers.
func (z Zone) Polygon() []image.Point {
	out := make([]image.Point, Points)
	copy(out, z.Coordinates[:])
	return out
}

// Contains reports whether p hits the zone, boundary included.
func (z Zone) Contains(p image.Point) bool {
	return geometry.PointInPolygon(p, z.Coordinates[:])
}

// Record is the on-disk shape of a zone. Available is a pointer so files
// written before the field existed can be told apart from an explicit false.
type Record struct {
	Name        string  `json:"name"`
	Coordinates [][]int `json:"coordinates"`
	Available   *bool   `json:"available,omitempty"`
}

func (z Zone) record() Record {
	coords := make([][]int, 0, Points)
	for _, p := range z.Coordinates {
		coords = append(coords, []int{p.X, p.Y})
	}
	avail := z.Available
	return Record{Name: z.Name, Coordinates: coords, Available: &avail}
}

// zoneFromRecord validates r and applies the schema migration for a missing
// available field.
func zoneFromRecord(i int, r Record) (Zone, error) {
	if r.Coordinates == nil {
		return Zone{}, &MalformedRecordError{Index: i, Reason: "coordinates missing"}
	}
	if len(r.Coordinates) != Points {
		return Zone{}, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("expected %d points, got %d", Points, len(r.Coordinates))}
	}
	z := Zone{Name: r.Name, Available: true}
	for j, c := range r.Coordinates {
		if len(c) != 2 {
			return Zone{}, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("point %d has %d components", j, len(c))}
		}
		z.Coordinates[j] = image.Pt(c[0], c[1])
	}
	if r.Available != nil {
		z.Available = *r.Available
	}
	return z, nil
}
