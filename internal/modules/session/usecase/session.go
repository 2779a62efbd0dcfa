package usecase

import (
	"context"

	"focusly/internal/modules/session/domain"
	sessiondto "focusly/internal/modules/session/dto"
	sessionin "focusly/internal/modules/session/port/in"
	"focusly/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Save(ctx context.Context, input sessiondto.SaveInput) (sessiondto.SaveOutput, error) {
	apps := make([]domain.App, 0, len(input.Apps))
	for _, app := range input.Apps {
		apps = append(apps, domain.App{Process: app.Process, Title: app.Title, Seconds: app.Seconds})
	}
	session, path, err := i.svc.Save(ctx, input.StartedAt, input.EndedAt, input.DurationSeconds, input.FinalScore, input.Reason, apps)
	if session.ID == "" {
		return sessiondto.SaveOutput{}, err
	}
	return sessiondto.SaveOutput{SessionID: session.ID, NotePath: path}, err
}

func (i *Interactor) List(ctx context.Context, input sessiondto.ListInput) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, sessionID string) (sessiondto.SessionDetailOutput, error) {
	session, err := i.svc.Get(ctx, sessionID)
	if err != nil {
		return sessiondto.SessionDetailOutput{}, err
	}
	apps := make([]sessiondto.App, 0, len(session.Apps))
	for _, app := range session.Apps {
		apps = append(apps, sessiondto.App{Process: app.Process, Title: app.Title, Seconds: app.Seconds})
	}
	return sessiondto.SessionDetailOutput{SessionOutput: toOutput(session), Apps: apps}, nil
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		SessionID:       s.ID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,
		FinalScore:      s.FinalScore,
		Reason:          s.Reason,
		AppsUsed:        s.AppsUsed,
	}
}
