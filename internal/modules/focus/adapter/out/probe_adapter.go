package out

import (
	"context"

	focusout "focusly/internal/modules/focus/port/out"
	probein "focusly/internal/modules/probe/port/in"
)

type ProbeAdapter struct {
	probe probein.Usecase
}

func NewProbeAdapter(probe probein.Usecase) focusout.WindowProbe {
	return &ProbeAdapter{probe: probe}
}

func (a *ProbeAdapter) ActiveWindow(ctx context.Context) (string, string, error) {
	window, err := a.probe.ActiveWindow(ctx)
	if err != nil {
		return "", "", err
	}
	return window.Process, window.Title, nil
}
