package zone

import (
	"fmt"
	"image"
	"log/slog"
)

// Store is the ordered list of zones. It is owned by a single goroutine (the
// frame loop) and does no locking.
type Store struct {
	zones  []Zone
	logger *slog.Logger
}

// NewStore returns an empty store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// Len returns the number of zones.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.zones)
}

// Zones returns a copy of the zones in store order.
func (s *Store) Zones() []Zone {
	if s == nil {
		return nil
	}
	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// At returns the zone at index i.
func (s *Store) At(i int) (Zone, error) {
	if i < 0 || i >= s.Len() {
		return Zone{}, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	return s.zones[i], nil
}

// Append adds a new available zone named "Spot<n>", where n is the store size
// after insertion. Because n is derived from the current length, a name can
// repeat after deletions; when the computed name is already taken the ordinal
// is advanced until it is free so names stay unique among present zones.
func (s *Store) Append(coords [Points]image.Point) Zone {
	n := len(s.zones) + 1
	name := spotName(n)
	for s.hasName(name) {
		n++
		name = spotName(n)
	}
	z := Zone{Name: name, Coordinates: coords, Available: true}
	s.zones = append(s.zones, z)
	if s.logger != nil {
		s.logger.Debug("zone appended", "name", z.Name, "count", len(s.zones))
	}
	return z
}

func spotName(n int) string { return fmt.Sprintf("Spot%d", n) }

func (s *Store) hasName(name string) bool {
	for _, z := range s.zones {
		if z.Name == name {
			return true
		}
	}
	return false
}

// RemoveLast removes and returns the most recently appended zone.
func (s *Store) RemoveLast() (Zone, error) {
	if len(s.zones) == 0 {
		return Zone{}, ErrEmptyStore
	}
	return s.RemoveAt(len(s.zones) - 1)
}

// RemoveAt removes and returns the zone at index i.
func (s *Store) RemoveAt(i int) (Zone, error) {
	if i < 0 || i >= len(s.zones) {
		return Zone{}, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	z := s.zones[i]
	s.zones = append(s.zones[:i], s.zones[i+1:]...)
	if s.logger != nil {
		s.logger.Debug("zone removed", "name", z.Name, "count", len(s.zones))
	}
	return z, nil
}

// HitTest returns the index of the first zone, in store order, whose polygon
// contains p.
func (s *Store) HitTest(p image.Point) (int, bool) {
	if s == nil {
		return -1, false
	}
	for i, z := range s.zones {
		if z.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// ToggleAvailable flips the availability flag of the zone at index i and
// returns the updated zone.
func (s *Store) ToggleAvailable(i int) (Zone, error) {
	if i < 0 || i >= len(s.zones) {
		return Zone{}, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	s.zones[i].Available = !s.zones[i].Available
	return s.zones[i], nil
}

// AllOccupied reports whether the store is non-empty and no zone is
// available. This is the alert condition.
func (s *Store) AllOccupied() bool {
	if s.Len() == 0 {
		return false
	}
	for _, z := range s.zones {
		if z.Available {
			return false
		}
	}
	return true
}

// Serialize returns one record per zone in store order.
func (s *Store) Serialize() []Record {
	out := make([]Record, 0, s.Len())
	if s == nil {
		return out
	}
	for _, z := range s.zones {
		out = append(out, z.record())
	}
	return out
}

// Deserialize replaces the store contents with records. Records without an
// available field are loaded as available. On a malformed record the store is
// left unchanged. Names must be unique within the records.
func (s *Store) Deserialize(records []Record) error {
	zones := make([]Zone, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		z, err := zoneFromRecord(i, r)
		if err != nil {
			return err
		}
		if _, dup := seen[z.Name]; dup {
			return &MalformedRecordError{Index: i, Reason: fmt.Sprintf("duplicate name %q", z.Name)}
		}
		seen[z.Name] = struct{}{}
		zones = append(zones, z)
	}
	s.zones = zones
	return nil
}
