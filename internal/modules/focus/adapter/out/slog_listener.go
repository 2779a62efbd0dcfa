package out

import (
	"log/slog"

	"focusly/internal/modules/focus/domain"
	focusout "focusly/internal/modules/focus/port/out"
)

// SlogListener writes tracker alerts to a structured logger. Score updates
// are logged at debug since they arrive every tick.
type SlogListener struct {
	logger *slog.Logger
}

func NewSlogListener(logger *slog.Logger) focusout.Listener {
	return &SlogListener{logger: logger}
}

func (l *SlogListener) ScoreUpdated(score int) {
	l.logger.Debug("score updated", slog.String("event", "score_updated"), slog.Int("score", score))
}

func (l *SlogListener) DistractionAlert(process, title string, seconds int) {
	l.logger.Warn(domain.DistractionMessage(process, seconds),
		slog.String("event", "distraction"),
		slog.String("process", process),
		slog.String("title", title),
		slog.Int("seconds", seconds),
	)
}

func (l *SlogListener) ScoreThresholdAlert(score int, message string) {
	l.logger.Warn(message, slog.String("event", "score_threshold"), slog.Int("score", score))
}

func (l *SlogListener) SessionSaved(id string, record domain.SessionRecord) {
	l.logger.Info("focus session recorded",
		slog.String("event", "session_recorded"),
		slog.String("session_id", id),
		slog.Int("final_score", record.FinalScore),
		slog.Int("duration_seconds", record.DurationSeconds),
	)
}
