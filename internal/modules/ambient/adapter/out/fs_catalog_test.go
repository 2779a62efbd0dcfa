package out_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"

	ambientout "focusly/internal/modules/ambient/adapter/out"
)

func TestFSCatalogDiscoversCategories(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"dreamscape/waves.ogg":  {Data: []byte("x")},
		"dreamscape/cover.png":  {Data: []byte("x")},
		"rain/b.mp3":            {Data: []byte("x")},
		"rain/a.wav":            {Data: []byte("x")},
		"deep-focus/brown.flac": {Data: []byte("x")},
		"README.md":             {Data: []byte("x")},
	}
	catalog := ambientout.NewFSCatalog(fsys, "/assets")
	categories, err := catalog.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{"Deep Focus", "Dreamscapes", "Rain"}) {
		t.Fatalf("unexpected category names %v", names)
	}
	rain := categories[2]
	if !slices.Equal(rain.Tracks, []string{"a.wav", "b.mp3"}) {
		t.Fatalf("unexpected rain tracks %v", rain.Tracks)
	}
	if len(categories[1].Tracks) != 1 {
		t.Fatalf("non-audio files must be skipped, got %v", categories[1].Tracks)
	}
	if got := catalog.TrackPath(rain, "a.wav"); got != filepath.Join("/assets", "rain", "a.wav") {
		t.Fatalf("unexpected track path %s", got)
	}
}

func TestDirCatalogPrefersSoundsSubdir(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sounds", "rainy"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "images"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "sounds", "rainy", "drops.wav"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	catalog := ambientout.NewDirCatalog(root)
	categories, err := catalog.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Rain" {
		t.Fatalf("expected only the sounds subdir, got %+v", categories)
	}
	want := filepath.Join(root, "sounds", "rainy", "drops.wav")
	if got := catalog.TrackPath(categories[0], "drops.wav"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDirCatalogMissingRootIsEmpty(t *testing.T) {
	t.Parallel()
	catalog := ambientout.NewDirCatalog(filepath.Join(t.TempDir(), "missing"))
	categories, err := catalog.Categories(context.Background())
	if err != nil || len(categories) != 0 {
		t.Fatalf("expected empty catalog, got %+v err=%v", categories, err)
	}
}
