package in

import (
	"context"

	sessiondto "focusly/internal/modules/session/dto"
)

type Usecase interface {
	Save(ctx context.Context, input sessiondto.SaveInput) (sessiondto.SaveOutput, error)
	List(ctx context.Context, input sessiondto.ListInput) ([]sessiondto.SessionOutput, error)
	Get(ctx context.Context, sessionID string) (sessiondto.SessionDetailOutput, error)
}
