package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"focusly/internal/modules/probe/domain"
	"focusly/internal/modules/probe/service"
	apperrors "focusly/internal/platform/errors"
)

type scriptedSource struct {
	windows []domain.Window
	errs    []error
	calls   int
	closed  bool
}

func (s *scriptedSource) Metadata(context.Context) (domain.Metadata, error) {
	return domain.Metadata{Name: "scripted", Version: "1"}, nil
}

func (s *scriptedSource) ActiveWindow(context.Context) (domain.Window, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return domain.Window{}, s.errs[i]
	}
	if i < len(s.windows) {
		return s.windows[i], nil
	}
	return domain.Window{}, nil
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

func TestProbeServiceDegradesFailuresToEmptyWindow(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	boom := errors.New("no display")
	source := &scriptedSource{
		errs:    []error{boom, boom, boom, nil},
		windows: []domain.Window{{}, {}, {}, {Process: " code ", Title: "main.go\n"}},
	}
	svc := service.NewProbeService(source, logger)

	for i := 0; i < 3; i++ {
		w, err := svc.ActiveWindow(context.Background())
		if err != nil || w != (domain.Window{}) {
			t.Fatalf("poll %d: expected degraded empty window, got %+v err=%v", i, w, err)
		}
	}
	w, err := svc.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("recovered poll: %v", err)
	}
	if w.Process != "code" || w.Title != "main.go" {
		t.Fatalf("expected cleaned window, got %+v", w)
	}
	out := logs.String()
	if strings.Count(out, "event=probe_failure") != 3 || !strings.Contains(out, "event=probe_recovered") {
		t.Fatalf("unexpected probe logs:\n%s", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Fatalf("expected warn after repeated failures:\n%s", out)
	}
}

func TestProbeServiceWithoutSource(t *testing.T) {
	t.Parallel()
	svc := service.NewProbeService(nil, nil)
	if _, err := svc.ActiveWindow(context.Background()); !errors.Is(err, apperrors.ErrProbeUnavailable) {
		t.Fatalf("expected probe unavailable, got %v", err)
	}
	if _, err := svc.Describe(context.Background()); !errors.Is(err, apperrors.ErrProbeUnavailable) {
		t.Fatalf("expected probe unavailable, got %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestProbeServiceCloseReleasesSource(t *testing.T) {
	t.Parallel()
	source := &scriptedSource{}
	svc := service.NewProbeService(source, nil)
	meta, err := svc.Describe(context.Background())
	if err != nil || meta.Name != "scripted" {
		t.Fatalf("describe: %+v %v", meta, err)
	}
	if err := svc.Close(); err != nil || !source.closed {
		t.Fatalf("expected source closed, err=%v", err)
	}
}
