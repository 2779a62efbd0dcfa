package in

import (
	"context"

	"focusly/internal/modules/focus/dto"
	focusin "focusly/internal/modules/focus/port/in"
)

// TUIHandler is the dashboard's view of the tracker. The tracker loop runs in
// the background through Run; the dashboard only issues commands and reads
// snapshots.
type TUIHandler struct {
	usecase focusin.Usecase
}

func NewTUIHandler(usecase focusin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

// Toggle starts a paused timer and pauses a running one.
func (h TUIHandler) Toggle(ctx context.Context) (dto.Snapshot, error) {
	snap, err := h.usecase.Snapshot(ctx)
	if err != nil {
		return dto.Snapshot{}, err
	}
	if snap.Running {
		err = h.usecase.Pause(ctx)
	} else {
		err = h.usecase.Start(ctx)
	}
	if err != nil {
		return dto.Snapshot{}, err
	}
	return h.usecase.Snapshot(ctx)
}

func (h TUIHandler) Pause(ctx context.Context) error {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.SessionResult, error) {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) Stop(ctx context.Context) (dto.SessionResult, error) {
	return h.usecase.Stop(ctx)
}

func (h TUIHandler) Run(ctx context.Context, input dto.RunInput) error {
	return h.usecase.Run(ctx, input)
}

func (h TUIHandler) Snapshot(ctx context.Context) (dto.Snapshot, error) {
	return h.usecase.Snapshot(ctx)
}

func (h TUIHandler) SetMinutes(ctx context.Context, minutes int) error {
	return h.usecase.SetTimerMinutes(ctx, minutes)
}

func (h TUIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.ExportHistory(ctx, dto.ExportInput{Path: path})
}

func (h TUIHandler) EditKeyword(ctx context.Context, list, keyword string, remove bool) (dto.KeywordOutput, error) {
	return h.usecase.EditKeyword(ctx, dto.KeywordInput{List: list, Keyword: keyword, Remove: remove})
}
