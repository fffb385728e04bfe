package zone

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStore is returned when a removal is requested on an empty store.
	ErrEmptyStore = errors.New("no parking spots to delete")
	// ErrIndexOutOfRange is returned when an index (or a hit test) does not
	// address an existing zone.
	ErrIndexOutOfRange = errors.New("no parking spot at that position")
	// ErrNoSpotsToSave reports a save request on an empty store. No file is
	// touched when it is returned.
	ErrNoSpotsToSave = errors.New("no parking spots to save")
	// ErrFileNotFound reports a missing spots file on load. Callers usually
	// continue with an empty store.
	ErrFileNotFound = errors.New("parking spots file not found")
	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed parking spot record")
)

// PersistenceError wraps an I/O or decoding failure during Save or Load.
type PersistenceError struct {
	Op   string // "save" or "load"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MalformedRecordError identifies the first record that failed validation.
type MalformedRecordError struct {
	Index  int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }
