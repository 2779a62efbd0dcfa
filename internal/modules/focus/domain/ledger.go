package domain

import (
	"slices"
	"time"
)

const DefaultWindow = 30 * time.Minute

// Ledger is the sliding-window store of activity events, ordered by Start.
// Consecutive reports of the same window merge into one event. Pruning runs
// after every push and on window changes, never in the background.
type Ledger struct {
	classifier *Classifier
	window     time.Duration
	events     []ActivityEvent
}

func NewLedger(classifier *Classifier, window time.Duration) *Ledger {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Ledger{classifier: classifier, window: window}
}

// Push records that process/title was active for the seconds ending at now and
// returns the resulting (possibly merged) event with its classification.
func (l *Ledger) Push(process, title string, seconds int, now time.Time) (ActivityEvent, Classification) {
	if seconds < 0 {
		seconds = 0
	}
	key := NewAppKey(process, title)
	if n := len(l.events); n > 0 && l.events[n-1].Key() == key {
		last := &l.events[n-1]
		last.Seconds += seconds
		last.End = now
	} else {
		l.events = append(l.events, ActivityEvent{
			Start:   now.Add(-time.Duration(seconds) * time.Second),
			End:     now,
			Process: key.Process,
			Title:   key.Title,
			Seconds: seconds,
		})
	}
	l.Prune(now)
	last := l.events[len(l.events)-1]
	return last, l.classifier.Classify(last.Process, last.Title, last.Seconds)
}

// Prune drops events from the front whose End is before now minus the window.
func (l *Ledger) Prune(now time.Time) {
	cutoff := now.Add(-l.window)
	drop := 0
	for drop < len(l.events) && l.events[drop].End.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		l.events = slices.Delete(l.events, 0, drop)
	}
}

// ScoreWindow sums the seconds of every event overlapping [cutoff, now], and
// separately the part of it that classifies as a distraction.
func (l *Ledger) ScoreWindow(cutoff, now time.Time) (total, distractor float64) {
	for _, ev := range l.events {
		ov := ev.overlap(cutoff, now)
		if ov <= 0 {
			continue
		}
		total += ov
		if l.classifier.Classify(ev.Process, ev.Title, ev.Seconds) == Distractor {
			distractor += ov
		}
	}
	return total, distractor
}

func (l *Ledger) SetWindow(window time.Duration, now time.Time) {
	if window <= 0 {
		return
	}
	l.window = window
	l.Prune(now)
}

func (l *Ledger) Window() time.Duration {
	return l.window
}

func (l *Ledger) Clear() {
	l.events = nil
}

func (l *Ledger) Len() int {
	return len(l.events)
}

// Events returns a copy of the retained events, oldest first.
func (l *Ledger) Events() []ActivityEvent {
	return slices.Clone(l.events)
}

// ClassifiedEvent pairs an event with its current classification.
type ClassifiedEvent struct {
	ActivityEvent
	Class Classification
}

func (l *Ledger) Classified() []ClassifiedEvent {
	out := make([]ClassifiedEvent, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ClassifiedEvent{ActivityEvent: ev, Class: l.classifier.Classify(ev.Process, ev.Title, ev.Seconds)})
	}
	return out
}
