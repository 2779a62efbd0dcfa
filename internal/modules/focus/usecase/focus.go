package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"focusly/internal/modules/focus/domain"
	"focusly/internal/modules/focus/dto"
	focusin "focusly/internal/modules/focus/port/in"
	focusout "focusly/internal/modules/focus/port/out"
	"focusly/internal/modules/focus/service"
	apperrors "focusly/internal/platform/errors"
)

type Interactor struct {
	svc     *service.TrackerService
	history focusout.HistoryWriter
}

func NewInteractor(svc *service.TrackerService, history focusout.HistoryWriter) focusin.Usecase {
	return &Interactor{svc: svc, history: history}
}

func (i *Interactor) Start(ctx context.Context) error {
	return i.svc.Start(ctx)
}

func (i *Interactor) Pause(ctx context.Context) error {
	return i.svc.Pause(ctx)
}

func (i *Interactor) Reset(ctx context.Context) (dto.SessionResult, error) {
	outcome, err := i.svc.Reset(ctx)
	return toSessionResult(outcome), err
}

func (i *Interactor) Stop(ctx context.Context) (dto.SessionResult, error) {
	outcome, err := i.svc.Stop(ctx)
	return toSessionResult(outcome), err
}

func (i *Interactor) ReportActive(ctx context.Context, input dto.ReportInput) error {
	i.svc.ReportActive(ctx, input.Process, input.Title)
	return nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	score, finished, outcome, err := i.svc.Tick(ctx)
	return dto.TickOutput{Score: score, Finished: finished, Session: toSessionResult(outcome)}, err
}

func (i *Interactor) Snapshot(_ context.Context) (dto.Snapshot, error) {
	snap := i.svc.Snapshot()
	apps := make([]dto.AppSeconds, 0, len(snap.TopApps))
	for idx, app := range snap.TopApps {
		apps = append(apps, dto.AppSeconds{Process: app.Process, Title: app.Title, Seconds: app.Seconds, Classification: string(snap.TopClasses[idx])})
	}
	return dto.Snapshot{
		TimerText:      snap.TimerText,
		Remaining:      snap.Remaining,
		Progress:       snap.Progress,
		Running:        snap.Running,
		Minutes:        snap.Minutes,
		Score:          snap.Score,
		Strategy:       string(snap.Strategy),
		Process:        snap.Process,
		Title:          snap.Title,
		Classification: string(snap.Classification),
		SessionStarted: snap.SessionStarted,
		TopApps:        apps,
	}, nil
}

func (i *Interactor) Classify(_ context.Context, input dto.ClassifyInput) (dto.ClassifyOutput, error) {
	if input.Seconds < 0 {
		return dto.ClassifyOutput{}, fmt.Errorf("%w: seconds must not be negative", apperrors.ErrInvalidInput)
	}
	cls := i.svc.Classify(input.Process, input.Title, input.Seconds)
	return dto.ClassifyOutput{Classification: string(cls)}, nil
}

func (i *Interactor) EditKeyword(_ context.Context, input dto.KeywordInput) (dto.KeywordOutput, error) {
	if strings.TrimSpace(input.Keyword) == "" {
		return dto.KeywordOutput{}, fmt.Errorf("%w: keyword is required", apperrors.ErrInvalidInput)
	}
	keywords, err := i.svc.EditKeyword(input.List, input.Keyword, input.Remove)
	if err != nil {
		return dto.KeywordOutput{}, err
	}
	return dto.KeywordOutput{List: input.List, Keywords: keywords}, nil
}

func (i *Interactor) Configure(_ context.Context, input dto.ScorerSettings) error {
	if input.WindowSeconds < 0 || input.DistractorThresholdSeconds < 0 || input.NotificationCooldownSeconds < 0 {
		return fmt.Errorf("%w: scorer settings must not be negative", apperrors.ErrInvalidInput)
	}
	return i.svc.Configure(service.Settings{
		Window:               time.Duration(input.WindowSeconds) * time.Second,
		DistractorThreshold:  input.DistractorThresholdSeconds,
		NotificationCooldown: time.Duration(input.NotificationCooldownSeconds) * time.Second,
		Strategy:             domain.Strategy(input.Strategy),
		ProductiveKeywords:   input.ProductiveKeywords,
		DistractorKeywords:   input.DistractorKeywords,
	})
}

func (i *Interactor) SetTimerMinutes(_ context.Context, minutes int) error {
	return i.svc.SetTimerMinutes(minutes)
}

func (i *Interactor) ExportHistory(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	if i.history == nil {
		return dto.ExportOutput{}, fmt.Errorf("export history: no writer configured")
	}
	events := i.svc.History()
	if err := i.history.Write(ctx, input.Path, events); err != nil {
		return dto.ExportOutput{}, fmt.Errorf("export history: %w", err)
	}
	return dto.ExportOutput{Path: input.Path, Events: len(events)}, nil
}

func (i *Interactor) Run(ctx context.Context, input dto.RunInput) error {
	return i.svc.Run(ctx, input.PollInterval, input.ExitOnFinish)
}

func toSessionResult(outcome service.Outcome) dto.SessionResult {
	if !outcome.Saved {
		return dto.SessionResult{}
	}
	rec := outcome.Record
	apps := make([]dto.AppSeconds, 0, len(rec.Apps))
	for _, app := range rec.Apps {
		apps = append(apps, dto.AppSeconds{Process: app.Process, Title: app.Title, Seconds: app.Seconds})
	}
	return dto.SessionResult{
		Saved:           true,
		SessionID:       outcome.SessionID,
		StartedAt:       rec.StartedAt,
		EndedAt:         rec.EndedAt,
		DurationSeconds: rec.DurationSeconds,
		FinalScore:      rec.FinalScore,
		Reason:          string(rec.Reason),
		Apps:            apps,
	}
}
