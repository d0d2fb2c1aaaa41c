package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

const (
	MinFontSize     = 12
	MaxFontSize     = 24
	FontSizeStep    = 2
	DefaultFontSize = 16
)

// FontSizes lists every accepted font size in ascending order.
func FontSizes() []int {
	sizes := make([]int, 0, (MaxFontSize-MinFontSize)/FontSizeStep+1)
	for s := MinFontSize; s <= MaxFontSize; s += FontSizeStep {
		sizes = append(sizes, s)
	}
	return sizes
}

// ValidFontSize reports whether size is one of FontSizes.
func ValidFontSize(size int) bool {
	return size >= MinFontSize && size <= MaxFontSize && (size-MinFontSize)%FontSizeStep == 0
}

// NextFontSize is one step larger than size, clamped to MaxFontSize.
func NextFontSize(size int) int {
	return clampFontSize(size + FontSizeStep)
}

// PrevFontSize is one step smaller than size, clamped to MinFontSize.
func PrevFontSize(size int) int {
	return clampFontSize(size - FontSizeStep)
}

func clampFontSize(size int) int {
	switch {
	case size < MinFontSize:
		return MinFontSize
	case size > MaxFontSize:
		return MaxFontSize
	}
	if !ValidFontSize(size) {
		return size - (size-MinFontSize)%FontSizeStep
	}
	return size
}

type settingsFile struct {
	FontSize *int `json:"fontSize,omitempty"`
	// font_size is what the desktop version of this tool wrote.
	LegacyFontSize *int `json:"font_size,omitempty"`
}

// SettingsStore owns the persisted display preferences.
type SettingsStore struct {
	backend Backend
	key     string
	log     zerolog.Logger

	fontSize int
}

// NewSettingsStore returns a store holding the default font size.
func NewSettingsStore(b Backend, opts ...Option) *SettingsStore {
	o := newOptions(SettingsKey, opts)
	return &SettingsStore{
		backend:  b,
		key:      o.key,
		log:      o.log,
		fontSize: DefaultFontSize,
	}
}

// Load reads the persisted font size. Missing or invalid values yield
// DefaultFontSize; unreadable or malformed files also return a
// *PersistenceError as a warning.
func (s *SettingsStore) Load() (int, error) {
	s.fontSize = DefaultFontSize

	data, err := s.backend.Read(s.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.fontSize, nil
		}
		perr := &PersistenceError{Kind: ReadFailure, Path: s.backend.Path(s.key), Err: err}
		s.log.Warn().Err(err).Str("path", perr.Path).Msg("could not read settings, using defaults")
		return s.fontSize, perr
	}

	var f settingsFile
	if err := json.Unmarshal(data, &f); err != nil {
		perr := &PersistenceError{Kind: CorruptData, Path: s.backend.Path(s.key), Err: err}
		s.log.Warn().Err(err).Str("path", perr.Path).Msg("settings file is not valid JSON, using defaults")
		return s.fontSize, perr
	}

	size := f.FontSize
	if size == nil {
		size = f.LegacyFontSize
	}
	switch {
	case size == nil:
	case ValidFontSize(*size):
		s.fontSize = *size
	default:
		s.log.Debug().Int("fontSize", *size).Msg("ignoring out of range font size")
	}
	return s.fontSize, nil
}

// FontSize is the current font size.
func (s *SettingsStore) FontSize() int {
	return s.fontSize
}

// Save sets and persists the font size. Invalid sizes are rejected without
// changing anything. A write failure is returned after the in-memory value
// has been updated.
func (s *SettingsStore) Save(size int) error {
	if !ValidFontSize(size) {
		return fmt.Errorf("%w: %d (want %d-%d in steps of %d)", ErrInvalidFontSize, size, MinFontSize, MaxFontSize, FontSizeStep)
	}
	s.fontSize = size

	data, err := json.MarshalIndent(settingsFile{FontSize: &size}, "", "    ")
	if err != nil {
		return &PersistenceError{Kind: WriteFailure, Path: s.backend.Path(s.key), Err: err}
	}
	if err := s.backend.Write(s.key, data); err != nil {
		perr := &PersistenceError{Kind: WriteFailure, Path: s.backend.Path(s.key), Err: err}
		s.log.Error().Err(err).Str("path", perr.Path).Msg("could not save settings")
		return perr
	}
	return nil
}
