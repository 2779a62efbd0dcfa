package in

import (
	"context"

	sessiondto "focusly/internal/modules/session/dto"
	sessionin "focusly/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx, sessiondto.ListInput{Limit: limit})
}

func (h CLIHandler) Show(ctx context.Context, sessionID string) (sessiondto.SessionDetailOutput, error) {
	return h.usecase.Get(ctx, sessionID)
}
