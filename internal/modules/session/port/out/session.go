package out

import (
	"context"

	"focusly/internal/modules/session/domain"
)

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	List(ctx context.Context, limit int) ([]domain.Session, error)
	Get(ctx context.Context, sessionID string) (domain.Session, error)
}

// NoteWriter renders a human-readable copy of a session and returns its path.
type NoteWriter interface {
	Write(ctx context.Context, session domain.Session) (string, error)
}
