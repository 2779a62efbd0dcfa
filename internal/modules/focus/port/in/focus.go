package in

import (
	"context"

	"focusly/internal/modules/focus/dto"
)

type Usecase interface {
	Start(ctx context.Context) error
	Pause(ctx context.Context) error
	Reset(ctx context.Context) (dto.SessionResult, error)
	Stop(ctx context.Context) (dto.SessionResult, error)
	ReportActive(ctx context.Context, input dto.ReportInput) error
	Tick(ctx context.Context) (dto.TickOutput, error)
	Snapshot(ctx context.Context) (dto.Snapshot, error)
	Classify(ctx context.Context, input dto.ClassifyInput) (dto.ClassifyOutput, error)
	EditKeyword(ctx context.Context, input dto.KeywordInput) (dto.KeywordOutput, error)
	Configure(ctx context.Context, input dto.ScorerSettings) error
	SetTimerMinutes(ctx context.Context, minutes int) error
	ExportHistory(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Run(ctx context.Context, input dto.RunInput) error
}
