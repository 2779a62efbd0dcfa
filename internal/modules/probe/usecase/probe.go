package usecase

import (
	"context"

	"focusly/internal/modules/probe/dto"
	probein "focusly/internal/modules/probe/port/in"
	"focusly/internal/modules/probe/service"
)

type Interactor struct {
	svc *service.ProbeService
}

func NewInteractor(svc *service.ProbeService) probein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ActiveWindow(ctx context.Context) (dto.WindowOutput, error) {
	w, err := i.svc.ActiveWindow(ctx)
	if err != nil {
		return dto.WindowOutput{}, err
	}
	return dto.WindowOutput{Process: w.Process, Title: w.Title}, nil
}

func (i *Interactor) Describe(ctx context.Context) (dto.MetadataOutput, error) {
	meta, err := i.svc.Describe(ctx)
	if err != nil {
		return dto.MetadataOutput{}, err
	}
	return dto.MetadataOutput{Name: meta.Name, Version: meta.Version, Platform: meta.Platform}, nil
}

func (i *Interactor) Close() error {
	return i.svc.Close()
}
