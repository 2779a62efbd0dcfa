package out

//go:generate mockgen -source=focus.go -destination=focus_mock.go -package=out

import (
	"context"

	"focusly/internal/modules/focus/domain"
)

type SessionSink interface {
	Persist(ctx context.Context, record domain.SessionRecord) (string, error)
}

// WindowProbe reports the foreground window. Implementations return empty
// strings rather than an error when the window cannot be resolved.
type WindowProbe interface {
	ActiveWindow(ctx context.Context) (process, title string, err error)
}

// Listener receives tracker events synchronously and must not block.
type Listener interface {
	ScoreUpdated(score int)
	DistractionAlert(process, title string, seconds int)
	ScoreThresholdAlert(score int, message string)
	SessionSaved(id string, record domain.SessionRecord)
}

type HistoryWriter interface {
	Write(ctx context.Context, path string, events []domain.ClassifiedEvent) error
}
