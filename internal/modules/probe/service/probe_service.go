package service

import (
	"context"
	"fmt"
	"log/slog"

	"focusly/internal/modules/probe/domain"
	probeout "focusly/internal/modules/probe/port/out"
	apperrors "focusly/internal/platform/errors"
)

// warnAfter is the number of consecutive failures logged at debug before the
// probe is reported as broken.
const warnAfter = 3

// ProbeService degrades every probe failure to an empty window. Callers only
// ever see an error when no source is configured.
type ProbeService struct {
	source   probeout.WindowSource
	logger   *slog.Logger
	failures int
}

func NewProbeService(source probeout.WindowSource, logger *slog.Logger) *ProbeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProbeService{source: source, logger: logger}
}

func (s *ProbeService) ActiveWindow(ctx context.Context) (domain.Window, error) {
	if s.source == nil {
		return domain.Window{}, apperrors.ErrProbeUnavailable
	}
	w, err := s.source.ActiveWindow(ctx)
	if err != nil {
		s.failures++
		attrs := []any{slog.String("event", "probe_failure"), slog.Int("consecutive", s.failures), slog.String("error", err.Error())}
		if s.failures == warnAfter {
			s.logger.Warn("window probe keeps failing", attrs...)
		} else {
			s.logger.Debug("window probe failed", attrs...)
		}
		return domain.Window{}, nil
	}
	if s.failures >= warnAfter {
		s.logger.Info("window probe recovered", slog.String("event", "probe_recovered"))
	}
	s.failures = 0
	return w.Clean(), nil
}

func (s *ProbeService) Describe(ctx context.Context) (domain.Metadata, error) {
	if s.source == nil {
		return domain.Metadata{}, apperrors.ErrProbeUnavailable
	}
	meta, err := s.source.Metadata(ctx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %w", apperrors.ErrProbeUnavailable, err)
	}
	return meta, nil
}

func (s *ProbeService) Close() error {
	if s.source == nil {
		return nil
	}
	return s.source.Close()
}
