package store

import (
	"errors"
	"fmt"
)

// PersistenceKind classifies storage failures.
type PersistenceKind int

const (
	// CorruptData means the file exists but does not hold the expected JSON.
	CorruptData PersistenceKind = iota
	// ReadFailure means the file exists but could not be read.
	ReadFailure
	// WriteFailure means the file could not be written.
	WriteFailure
)

func (k PersistenceKind) String() string {
	switch k {
	case CorruptData:
		return "corrupt data"
	case ReadFailure:
		return "read failure"
	case WriteFailure:
		return "write failure"
	}
	return fmt.Sprintf("PersistenceKind(%d)", int(k))
}

var (
	ErrCorruptData     = errors.New("store: corrupt data")
	ErrReadFailure     = errors.New("store: read failure")
	ErrWriteFailure    = errors.New("store: write failure")
	ErrInvalidIndex    = errors.New("store: invalid index")
	ErrInvalidFontSize = errors.New("store: invalid font size")
)

// PersistenceError reports a storage problem. None of them are fatal: loads
// fall back to an empty collection and failed writes leave memory intact.
type PersistenceError struct {
	Kind PersistenceKind
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store: %s in %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("store: %s in %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support for the Err* sentinels.
func (e *PersistenceError) Is(target error) bool {
	switch e.Kind {
	case CorruptData:
		return target == ErrCorruptData
	case ReadFailure:
		return target == ErrReadFailure
	case WriteFailure:
		return target == ErrWriteFailure
	}
	return false
}

// IndexError is returned when a caller addresses a position outside the
// collection.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("store: invalid index %d (have %d goals)", e.Index, e.Len)
}

// Is implements errors.Is support.
func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}
