package out

import (
	"context"

	"focusly/internal/modules/focus/domain"
	focusout "focusly/internal/modules/focus/port/out"
	sessiondto "focusly/internal/modules/session/dto"
	sessionin "focusly/internal/modules/session/port/in"
)

type SessionSinkAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionSinkAdapter(sessions sessionin.Usecase) focusout.SessionSink {
	return &SessionSinkAdapter{sessions: sessions}
}

func (a *SessionSinkAdapter) Persist(ctx context.Context, record domain.SessionRecord) (string, error) {
	apps := make([]sessiondto.App, 0, len(record.Apps))
	for _, app := range record.Apps {
		apps = append(apps, sessiondto.App{Process: app.Process, Title: app.Title, Seconds: app.Seconds})
	}
	out, err := a.sessions.Save(ctx, sessiondto.SaveInput{
		StartedAt:       record.StartedAt,
		EndedAt:         record.EndedAt,
		DurationSeconds: record.DurationSeconds,
		FinalScore:      record.FinalScore,
		Reason:          string(record.Reason),
		Apps:            apps,
	})
	return out.SessionID, err
}
