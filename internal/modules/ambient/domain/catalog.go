package domain

import (
	"path"
	"slices"
	"strconv"
	"strings"
)

var AudioExtensions = []string{".wav", ".mp3", ".ogg", ".flac"}

// Category is one subdirectory of the sound assets root.
type Category struct {
	Name   string
	Dir    string
	Tracks []string
}

func IsAudioFile(name string) bool {
	return slices.Contains(AudioExtensions, strings.ToLower(path.Ext(name)))
}

// DisplayName maps an asset directory name to the label shown to the user.
func DisplayName(dir string) string {
	lower := strings.ToLower(dir)
	switch {
	case strings.HasPrefix(lower, "dream"):
		return "Dreamscapes"
	case strings.Contains(lower, "rain"):
		return "Rain"
	case strings.HasPrefix(lower, "deep"):
		return "Deep Focus"
	default:
		return dir
	}
}

// NameCategories assigns display names to directories in sorted order. A
// name already taken gets the first free " N" suffix starting at 1.
func NameCategories(dirs []string) []Category {
	sorted := slices.Clone(dirs)
	slices.Sort(sorted)
	taken := make(map[string]bool, len(sorted))
	out := make([]Category, 0, len(sorted))
	for _, dir := range sorted {
		base := DisplayName(dir)
		name := base
		for i := 1; taken[name]; i++ {
			name = base + " " + strconv.Itoa(i)
		}
		taken[name] = true
		out = append(out, Category{Name: name, Dir: dir})
	}
	return out
}

// FilterTracks keeps audio files and sorts them by name.
func FilterTracks(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if IsAudioFile(name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ResolveTrack accepts a file name or a zero-based index into tracks.
func (c Category) ResolveTrack(ref string) (string, bool) {
	if slices.Contains(c.Tracks, ref) {
		return ref, true
	}
	if idx, err := strconv.Atoi(ref); err == nil && idx >= 0 && idx < len(c.Tracks) {
		return c.Tracks[idx], true
	}
	return "", false
}
