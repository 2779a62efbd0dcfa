package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"focusly/internal/modules/session/domain"
	sessionout "focusly/internal/modules/session/port/out"
	apperrors "focusly/internal/platform/errors"
	"focusly/internal/platform/id"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 500
	minDuration      = 10
)

type SessionService struct {
	idGen id.Generator
	store sessionout.SessionStore
	notes sessionout.NoteWriter
}

func NewSessionService(idGen id.Generator, store sessionout.SessionStore, notes sessionout.NoteWriter) *SessionService {
	return &SessionService{idGen: idGen, store: store, notes: notes}
}

// Save assigns an id and stores the session. The note is written after the
// row commits, so a note failure still returns the stored session.
func (s *SessionService) Save(ctx context.Context, startedAt, endedAt time.Time, durationSeconds, finalScore int, reason string, apps []domain.App) (domain.Session, string, error) {
	if startedAt.IsZero() || endedAt.Before(startedAt) {
		return domain.Session{}, "", fmt.Errorf("%w: session times out of order", apperrors.ErrInvalidInput)
	}
	if durationSeconds < minDuration {
		return domain.Session{}, "", fmt.Errorf("%w: %ds", apperrors.ErrSessionTooShort, durationSeconds)
	}
	if finalScore < 0 || finalScore > 100 {
		return domain.Session{}, "", fmt.Errorf("%w: score %d outside 0..100", apperrors.ErrInvalidInput, finalScore)
	}
	kept := make([]domain.App, 0, len(apps))
	for _, app := range apps {
		process := strings.TrimSpace(app.Process)
		if process == "" || app.Seconds <= 0 {
			continue
		}
		kept = append(kept, domain.App{Process: process, Title: strings.TrimSpace(app.Title), Seconds: app.Seconds})
	}
	domain.SortApps(kept)
	session := domain.Session{
		ID:              s.idGen.New(),
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		DurationSeconds: durationSeconds,
		FinalScore:      finalScore,
		Reason:          reason,
		AppsUsed:        domain.AppsUsedSummary(kept),
		Apps:            kept,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, "", fmt.Errorf("save session: %w", err)
	}
	if s.notes == nil {
		return session, "", nil
	}
	path, err := s.notes.Write(ctx, session)
	if err != nil {
		return session, "", fmt.Errorf("write session note: %w", err)
	}
	return session, path, nil
}

func (s *SessionService) List(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Session{}, fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Get(ctx, sessionID)
}
