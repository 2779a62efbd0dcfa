package in

import (
	"context"

	"focusly/internal/modules/focus/dto"
	focusin "focusly/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Classify(ctx context.Context, process, title string, seconds int) (dto.ClassifyOutput, error) {
	return h.usecase.Classify(ctx, dto.ClassifyInput{Process: process, Title: title, Seconds: seconds})
}

// EditKeyword changes a keyword list for the lifetime of this process.
func (h CLIHandler) EditKeyword(ctx context.Context, list, keyword string, remove bool) (dto.KeywordOutput, error) {
	return h.usecase.EditKeyword(ctx, dto.KeywordInput{List: list, Keyword: keyword, Remove: remove})
}

// Track runs a headless session until the timer finishes or ctx is cancelled.
func (h CLIHandler) Track(ctx context.Context, minutes int, input dto.RunInput) error {
	if minutes > 0 {
		if err := h.usecase.SetTimerMinutes(ctx, minutes); err != nil {
			return err
		}
	}
	if err := h.usecase.Start(ctx); err != nil {
		return err
	}
	return h.usecase.Run(ctx, input)
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.ExportHistory(ctx, dto.ExportInput{Path: path})
}
