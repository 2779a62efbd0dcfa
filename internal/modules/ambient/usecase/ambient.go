package usecase

import (
	"context"
	"fmt"
	"strings"

	"focusly/internal/modules/ambient/domain"
	"focusly/internal/modules/ambient/dto"
	ambientin "focusly/internal/modules/ambient/port/in"
	"focusly/internal/modules/ambient/service"
	apperrors "focusly/internal/platform/errors"
)

type Interactor struct {
	svc *service.AmbientService
}

func NewInteractor(svc *service.AmbientService) ambientin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Categories(ctx context.Context) ([]dto.CategoryOutput, error) {
	categories, err := i.svc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryOutput, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryOutput{Name: c.Name, Tracks: append([]string(nil), c.Tracks...)})
	}
	return out, nil
}

func (i *Interactor) Play(ctx context.Context, input dto.PlayInput) (dto.StateOutput, error) {
	category := strings.TrimSpace(input.Category)
	track := strings.TrimSpace(input.Track)
	if category == "" || track == "" {
		return dto.StateOutput{}, fmt.Errorf("%w: category and track are required", apperrors.ErrInvalidInput)
	}
	state, err := i.svc.Play(ctx, category, track)
	return toState(state), err
}

func (i *Interactor) Pause(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Pause(ctx)
	return toState(state), err
}

func (i *Interactor) Resume(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Resume(ctx)
	return toState(state), err
}

func (i *Interactor) Stop(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Stop(ctx)
	return toState(state), err
}

func (i *Interactor) SetVolume(ctx context.Context, volume float64) (dto.StateOutput, error) {
	if volume < 0 || volume > 1 {
		return dto.StateOutput{}, fmt.Errorf("%w: volume must be within 0..1", apperrors.ErrInvalidInput)
	}
	return toState(i.svc.SetVolume(ctx, volume)), nil
}

func (i *Interactor) State(context.Context) (dto.StateOutput, error) {
	return toState(i.svc.State()), nil
}

func toState(p domain.Playback) dto.StateOutput {
	return dto.StateOutput{Status: string(p.Status), Category: p.Category, Track: p.Track, Volume: p.Volume}
}
