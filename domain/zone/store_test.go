package zone

import (
	"encoding/json"
	"errors"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func rect(x0, y0, x1, y1 int) [Points]image.Point {
	return [Points]image.Point{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
}

func names(s *Store) []string {
	var out []string
	for _, z := range s.Zones() {
		out = append(out, z.Name)
	}
	return out
}

func TestStore_AppendNamesAndDefaults(t *testing.T) {
	s := NewStore(discardLogger)
	z := s.Append(rect(0, 0, 10, 10))
	if z.Name != "Spot1" || !z.Available {
		t.Fatalf("unexpected first zone %+v", z)
	}
	s.Append(rect(20, 0, 30, 10))
	if got := names(s); len(got) != 2 || got[1] != "Spot2" {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestStore_NamesFollowCurrentLength(t *testing.T) {
	s := NewStore(discardLogger)
	s.Append(rect(0, 0, 10, 10))  // Spot1
	s.Append(rect(20, 0, 30, 10)) // Spot2
	if _, err := s.RemoveLast(); err != nil {
		t.Fatalf("remove last: %v", err)
	}
	z := s.Append(rect(40, 0, 50, 10))
	if z.Name != "Spot2" {
		t.Fatalf("expected length-derived name Spot2, got %s", z.Name)
	}
}

func TestStore_NamesStayUniqueAfterMiddleDeletion(t *testing.T) {
	s := NewStore(discardLogger)
	s.Append(rect(0, 0, 10, 10))  // Spot1
	s.Append(rect(20, 0, 30, 10)) // Spot2
	s.Append(rect(40, 0, 50, 10)) // Spot3
	if _, err := s.RemoveAt(0); err != nil {
		t.Fatalf("remove at: %v", err)
	}
	z := s.Append(rect(60, 0, 70, 10))
	if z.Name != "Spot4" {
		t.Fatalf("expected collision to advance to Spot4, got %s", z.Name)
	}
	seen := map[string]bool{}
	for _, n := range names(s) {
		if seen[n] {
			t.Fatalf("duplicate name %s in %v", n, names(s))
		}
		seen[n] = true
	}
}

func TestStore_LengthAccounting(t *testing.T) {
	s := NewStore(discardLogger)
	ops := []struct {
		op  string
		idx int
	}{
		{"append", 0}, {"append", 0}, {"removeAt", 5}, {"removeLast", 0},
		{"append", 0}, {"removeAt", 0}, {"removeAt", 0}, {"removeLast", 0},
		{"removeAt", -1}, {"append", 0},
	}
	appends, removals := 0, 0
	for _, o := range ops {
		before := s.Len()
		var err error
		switch o.op {
		case "append":
			s.Append(rect(0, 0, 5, 5))
			appends++
			continue
		case "removeLast":
			_, err = s.RemoveLast()
		case "removeAt":
			_, err = s.RemoveAt(o.idx)
		}
		if err == nil {
			removals++
		} else if s.Len() != before {
			t.Fatalf("%s failed but changed length %d -> %d", o.op, before, s.Len())
		}
	}
	if s.Len() != appends-removals {
		t.Fatalf("expected len %d got %d", appends-removals, s.Len())
	}
}

func TestStore_RemoveOnEmpty(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.RemoveLast(); !errors.Is(err, ErrEmptyStore) {
		t.Fatalf("expected ErrEmptyStore, got %v", err)
	}
	if _, err := s.RemoveAt(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("length changed on failed removal")
	}
}

func TestStore_HitTestFirstMatch(t *testing.T) {
	s := NewStore(nil)
	s.Append(rect(0, 0, 100, 100))
	s.Append(rect(50, 50, 150, 150))
	if i, ok := s.HitTest(image.Pt(75, 75)); !ok || i != 0 {
		t.Fatalf("expected first overlapping zone, got %d %v", i, ok)
	}
	if i, ok := s.HitTest(image.Pt(120, 120)); !ok || i != 1 {
		t.Fatalf("expected second zone, got %d %v", i, ok)
	}
	if _, ok := s.HitTest(image.Pt(500, 5)); ok {
		t.Fatalf("expected miss")
	}
}

func TestStore_AllOccupied(t *testing.T) {
	s := NewStore(nil)
	if s.AllOccupied() {
		t.Fatalf("empty store must not alert")
	}
	s.Append(rect(0, 0, 10, 10))
	if _, err := s.ToggleAvailable(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.AllOccupied() {
		t.Fatalf("single occupied zone must alert")
	}
	s.Append(rect(20, 0, 30, 10))
	if s.AllOccupied() {
		t.Fatalf("one available zone must suppress the alert")
	}
	if _, err := s.ToggleAvailable(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestStore_RoundTripFixedPoint(t *testing.T) {
	s := NewStore(nil)
	s.Append(rect(10, 10, 50, 40))
	s.Append(rect(60, 5, 90, 80))
	_, _ = s.ToggleAvailable(1)

	first := NewStore(nil)
	if err := first.Deserialize(s.Serialize()); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	second := NewStore(nil)
	if err := second.Deserialize(first.Serialize()); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	orig, a, b := s.Zones(), first.Zones(), second.Zones()
	if len(a) != len(orig) || len(b) != len(orig) {
		t.Fatalf("length mismatch %d %d %d", len(orig), len(a), len(b))
	}
	for i := range orig {
		if a[i] != orig[i] || b[i] != orig[i] {
			t.Fatalf("zone %d differs: %+v %+v %+v", i, orig[i], a[i], b[i])
		}
	}
}

func TestStore_DeserializeMigration(t *testing.T) {
	raw := `[
		{"name": "Spot1", "coordinates": [[1,1],[1,9],[9,9],[9,1]]},
		{"name": "Spot2", "coordinates": [[10,1],[10,9],[19,9],[19,1]], "available": false},
		{"name": "Spot3", "coordinates": [[20,1],[20,9],[29,9],[29,1]], "available": true}
	]`
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s := NewStore(nil)
	if err := s.Deserialize(records); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	zs := s.Zones()
	if !zs[0].Available || zs[1].Available || !zs[2].Available {
		t.Fatalf("unexpected availability %v %v %v", zs[0].Available, zs[1].Available, zs[2].Available)
	}
}

func TestStore_DeserializeMalformedLeavesStore(t *testing.T) {
	cases := map[string]struct {
		raw   string
		index int
	}{
		"missing coordinates": {`[{"name": "Spot1"}]`, 0},
		"three points":        {`[{"name": "Spot1", "coordinates": [[1,1],[1,9],[9,9]]}]`, 0},
		"three components":    {`[{"name": "Spot1", "coordinates": [[1,1,1],[1,9],[9,9],[9,1]]}]`, 0},
		"one component":       {`[{"name": "Spot1", "coordinates": [[1],[1,9],[9,9],[9,1]]}]`, 0},
		"duplicate name": {`[{"name": "Spot1", "coordinates": [[1,1],[1,9],[9,9],[9,1]]},
			{"name": "Spot1", "coordinates": [[20,20],[20,29],[29,29],[29,20]]}]`, 1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewStore(nil)
			s.Append(rect(0, 0, 5, 5))
			var records []Record
			if err := json.Unmarshal([]byte(c.raw), &records); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := s.Deserialize(records)
			var mre *MalformedRecordError
			if !errors.Is(err, ErrMalformedRecord) || !errors.As(err, &mre) || mre.Index != c.index {
				t.Fatalf("expected malformed record %d, got %v", c.index, err)
			}
			if s.Len() != 1 {
				t.Fatalf("store should be unchanged, len=%d", s.Len())
			}
		})
	}
}

func TestStore_SaveEmptyDoesNotTouchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte("sentinel"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewStore(nil)
	if err := s.Save(path); !errors.Is(err, ErrNoSpotsToSave) {
		t.Fatalf("expected ErrNoSpotsToSave, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "sentinel" {
		t.Fatalf("file was overwritten: %q", data)
	}
	other := filepath.Join(dir, "none.json")
	_ = s.Save(other)
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Fatalf("save on empty store created a file")
	}
}

func TestStore_SaveLoadReproducesZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := NewStore(discardLogger)
	want := s.Append(rect(10, 10, 50, 40))
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := NewStore(discardLogger)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	zs := loaded.Zones()
	if len(zs) != 1 || zs[0] != want {
		t.Fatalf("expected %+v got %+v", want, zs)
	}
	var raw []map[string]any
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not a JSON array: %v", err)
	}
	if _, ok := raw[0]["available"]; !ok {
		t.Fatalf("saved record lacks available field: %s", data)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(nil)
	s.Append(rect(0, 0, 5, 5))

	err := s.Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"name": "not an array"`), 0o644)
	err = s.Load(bad)
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Op != "load" || errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected load persistence error, got %v", err)
	}

	malformed := filepath.Join(dir, "malformed.json")
	_ = os.WriteFile(malformed, []byte(`[{"name": "Spot1", "coordinates": [[0,0]]}]`), 0o644)
	if err := s.Load(malformed); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("failed loads must keep prior state, len=%d", s.Len())
	}
}

func TestStore_SaveIntoMissingDirectory(t *testing.T) {
	s := NewStore(nil)
	s.Append(rect(0, 0, 5, 5))
	err := s.Save(filepath.Join(t.TempDir(), "no", "such", "dir", DefaultFileName))
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Op != "save" || pe.Err == nil {
		t.Fatalf("expected save persistence error with cause, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("failed save must keep in-memory state")
	}
}
