package zone

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileName is the spots file created next to the executable.
const DefaultFileName = "parking_spots.json"

// Save writes the store to path as a JSON array. An empty store returns
// ErrNoSpotsToSave without touching the file. The data is written to a
// temporary file in the same directory, synced and renamed over path.
func (s *Store) Save(path string) error {
	if s.Len() == 0 {
		return ErrNoSpotsToSave
	}
	if err := writeRecords(path, s.Serialize()); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if s.logger != nil {
		s.logger.Info("parking spots saved", "path", path, "count", s.Len())
	}
	return nil
}

func writeRecords(path string, records []Record) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err = enc.Encode(records); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load replaces the store with the zones stored at path. A missing file
// returns an error matching ErrFileNotFound; read and decode failures return
// a *PersistenceError; invalid records return a *MalformedRecordError. On any
// error the store keeps its previous contents.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PersistenceError{Op: "load", Path: path, Err: ErrFileNotFound}
		}
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()
	var records []Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	if err := s.Deserialize(records); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("parking spots loaded", "path", path, "count", s.Len())
	}
	return nil
}
