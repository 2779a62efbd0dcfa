package in

import (
	"context"

	"focusly/internal/modules/ambient/dto"
	ambientin "focusly/internal/modules/ambient/port/in"
)

type CLIHandler struct {
	usecase ambientin.Usecase
}

func NewCLIHandler(usecase ambientin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.Categories(ctx)
}

func (h CLIHandler) Play(ctx context.Context, category, track string) (dto.StateOutput, error) {
	return h.usecase.Play(ctx, dto.PlayInput{Category: category, Track: track})
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Stop(ctx)
}
