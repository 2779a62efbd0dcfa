package in

import (
	"context"

	"focusly/internal/modules/probe/dto"
)

type Usecase interface {
	ActiveWindow(ctx context.Context) (dto.WindowOutput, error)
	Describe(ctx context.Context) (dto.MetadataOutput, error)
	Close() error
}
