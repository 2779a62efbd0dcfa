package domain

import "strings"

// Window is one observation of the foreground window. Empty fields mean the
// probe could not resolve them.
type Window struct {
	Process string
	Title   string
}

type Metadata struct {
	Name     string
	Version  string
	Platform string
}

// Clean trims whitespace and folds control characters that would break
// single-line rendering.
func (w Window) Clean() Window {
	return Window{Process: cleanField(w.Process), Title: cleanField(w.Title)}
}

func cleanField(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
