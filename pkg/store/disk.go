package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// GoalsKey names the goal file inside the base path.
	GoalsKey = "goals_data.json"
	// SettingsKey names the settings file inside the base path.
	SettingsKey = "settings.json"

	tempDirName = ".tmp"
)

// Backend reads and writes whole files by key.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Path(key string) string
}

// Load creates a diskv-backed Backend using the provided config.
func Load(cfg Config) (*DiskBackend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return NewDiskBackend(cfg.BasePath())
}

// NewDiskBackend stores each key as a file directly under basePath. Writes go
// through a temp file and a rename so a crash never leaves half a file.
func NewDiskBackend(basePath string) (*DiskBackend, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskBackend{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, tempDirName),
			CacheSizeMax: 0, // always read through, files may change underneath us
			PathPerm:     0o755,
			FilePerm:     0o644,
		}),
		basePath: basePath,
	}, nil
}

// DiskBackend is a Backend on top of diskv.
type DiskBackend struct {
	d        *diskv.Diskv
	basePath string
}

func (b *DiskBackend) Read(key string) ([]byte, error) {
	return b.d.Read(key)
}

func (b *DiskBackend) Write(key string, data []byte) error {
	return b.d.Write(key, data)
}

// Path returns the file that holds key.
func (b *DiskBackend) Path(key string) string {
	return filepath.Join(b.basePath, key)
}

// BasePath is the directory holding every key.
func (b *DiskBackend) BasePath() string {
	return b.basePath
}
