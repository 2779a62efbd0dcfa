package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"focusly/internal/modules/ambient/domain"
	ambientout "focusly/internal/modules/ambient/port/out"
)

// FSCatalog discovers categories as the subdirectories of an fs.FS root.
type FSCatalog struct {
	fsys fs.FS
	base string
}

// NewDirCatalog scans root, or root/sounds when that directory exists.
func NewDirCatalog(root string) ambientout.Catalog {
	if info, err := os.Stat(filepath.Join(root, "sounds")); err == nil && info.IsDir() {
		root = filepath.Join(root, "sounds")
	}
	return NewFSCatalog(os.DirFS(root), root)
}

// NewFSCatalog reads fsys and reports track paths relative to base.
func NewFSCatalog(fsys fs.FS, base string) *FSCatalog {
	return &FSCatalog{fsys: fsys, base: base}
}

func (c *FSCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Category{}, nil
		}
		return nil, fmt.Errorf("read sounds dir: %w", err)
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	categories := domain.NameCategories(dirs)
	for i := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := fs.ReadDir(c.fsys, categories[i].Dir)
		if err != nil {
			return nil, fmt.Errorf("read category %s: %w", categories[i].Dir, err)
		}
		names := make([]string, 0, len(files))
		for _, f := range files {
			if !f.IsDir() {
				names = append(names, f.Name())
			}
		}
		categories[i].Tracks = domain.FilterTracks(names)
	}
	return categories, nil
}

func (c *FSCatalog) TrackPath(category domain.Category, track string) string {
	if c.base == "" {
		return path.Join(category.Dir, track)
	}
	return filepath.Join(c.base, category.Dir, track)
}
