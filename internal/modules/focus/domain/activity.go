package domain

import (
	"strings"
	"time"
)

// AppKey identifies one foreground window.
type AppKey struct {
	Process string
	Title   string
}

func NewAppKey(process, title string) AppKey {
	return AppKey{Process: strings.TrimSpace(process), Title: strings.TrimSpace(title)}
}

// ActivityEvent is one contiguous span of a window being foreground-active.
// Seconds is authoritative for scoring; Start and End drive pruning.
type ActivityEvent struct {
	Start   time.Time
	End     time.Time
	Process string
	Title   string
	Seconds int
}

func (e ActivityEvent) Key() AppKey {
	return AppKey{Process: e.Process, Title: e.Title}
}

// overlap returns the seconds of e that fall within [from, to].
func (e ActivityEvent) overlap(from, to time.Time) float64 {
	start := e.Start
	if from.After(start) {
		start = from
	}
	end := e.End
	if to.Before(end) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Seconds()
}
