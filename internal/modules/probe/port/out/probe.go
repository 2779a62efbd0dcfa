package out

import (
	"context"

	"focusly/internal/modules/probe/domain"
)

type WindowSource interface {
	Metadata(ctx context.Context) (domain.Metadata, error)
	ActiveWindow(ctx context.Context) (domain.Window, error)
	Close() error
}
