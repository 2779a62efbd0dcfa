package out

//go:generate mockgen -source=ambient.go -destination=ambient_mock.go -package=out

import (
	"context"

	"focusly/internal/modules/ambient/domain"
)

type Catalog interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	// TrackPath returns the absolute file for a track in category.
	TrackPath(category domain.Category, track string) string
}

// Player drives one looping audio output at a time.
type Player interface {
	Start(ctx context.Context, path string, volume float64) error
	Pause() error
	Resume() error
	Stop() error
}
