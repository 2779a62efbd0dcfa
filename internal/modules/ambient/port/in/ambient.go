package in

import (
	"context"

	"focusly/internal/modules/ambient/dto"
)

type Usecase interface {
	Categories(ctx context.Context) ([]dto.CategoryOutput, error)
	Play(ctx context.Context, input dto.PlayInput) (dto.StateOutput, error)
	Pause(ctx context.Context) (dto.StateOutput, error)
	Resume(ctx context.Context) (dto.StateOutput, error)
	Stop(ctx context.Context) (dto.StateOutput, error)
	SetVolume(ctx context.Context, volume float64) (dto.StateOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
}
