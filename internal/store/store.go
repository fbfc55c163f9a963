// Package store persists the restocking list as a JSON array of entries.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
)

// Store reads and writes the list file on a hackpadfs filesystem. Paths
// are slash separated and relative to the filesystem root.
type Store struct {
	fs      hackpadfs.FS
	path    string
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New returns a Store for name on fsys. Loaded entries are checked against
// cat; a nil cat uses catalog.Default.
func New(fsys hackpadfs.FS, name string, cat *catalog.Catalog, logger *slog.Logger) *Store {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{fs: fsys, path: name, catalog: cat, logger: logger}
}

// NewOS returns a Store for an operating system path.
func NewOS(osPath string, cat *catalog.Catalog, logger *slog.Logger) (*Store, error) {
	abs, err := filepath.Abs(osPath)
	if err != nil {
		return nil, fmt.Errorf("resolving list file: %w", err)
	}
	abs = filepath.ToSlash(strings.TrimPrefix(abs, filepath.VolumeName(abs)))
	return New(osfs.NewFS(), strings.TrimPrefix(abs, "/"), cat, logger), nil
}

// Path returns the file name inside the filesystem.
func (s *Store) Path() string {
	return s.path
}

// Load reads the list. A missing file is an empty list. A payload that
// fails validation is discarded whole and reported as ErrInvalidPayload.
func (s *Store) Load() ([]restock.Entry, error) {
	data, err := hackpadfs.ReadFile(s.fs, s.path)
	if errors.Is(err, hackpadfs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	entries, err := Decode(data, s.catalog)
	if err != nil {
		s.logger.Warn("discarding stored list", "path", s.path, "error", err)
		return nil, err
	}
	return entries, nil
}

// Save writes entries. An empty list removes the file.
func (s *Store) Save(entries []restock.Entry) error {
	if len(entries) == 0 {
		err := hackpadfs.Remove(s.fs, s.path)
		if err != nil && !errors.Is(err, hackpadfs.ErrNotExist) {
			return fmt.Errorf("removing list file: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding list: %w", err)
	}

	if dir := path.Dir(s.path); dir != "." {
		if err := hackpadfs.MkdirAll(s.fs, dir, 0o755); err != nil {
			return fmt.Errorf("creating list directory: %w", err)
		}
	}
	if err := hackpadfs.WriteFullFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing list file: %w", err)
	}
	return nil
}
