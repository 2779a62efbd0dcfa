package in

import (
	"context"

	"focusly/internal/modules/probe/dto"
	probein "focusly/internal/modules/probe/port/in"
)

type CLIHandler struct {
	usecase probein.Usecase
}

func NewCLIHandler(usecase probein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (dto.WindowOutput, error) {
	return h.usecase.ActiveWindow(ctx)
}

func (h CLIHandler) Describe(ctx context.Context) (dto.MetadataOutput, error) {
	return h.usecase.Describe(ctx)
}
