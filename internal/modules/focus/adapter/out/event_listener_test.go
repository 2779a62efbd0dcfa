package out_test

import (
	"testing"

	focusadapter "focusly/internal/modules/focus/adapter/out"
	"focusly/internal/modules/focus/domain"
	"focusly/internal/modules/focus/dto"
)

func TestEventListenerDropsWhenFull(t *testing.T) {
	t.Parallel()
	l := focusadapter.NewEventListener(2)
	l.ScoreUpdated(99)
	l.DistractionAlert("chrome", "YouTube", 45)
	l.ScoreThresholdAlert(95, "never delivered")

	first := <-l.Events()
	if first.Kind != dto.EventScore || first.Score != 99 {
		t.Fatalf("unexpected first event %+v", first)
	}
	second := <-l.Events()
	if second.Kind != dto.EventDistraction || second.Message != domain.DistractionMessage("chrome", 45) {
		t.Fatalf("unexpected second event %+v", second)
	}
	if l.Dropped() != 1 {
		t.Fatalf("expected one dropped event, got %d", l.Dropped())
	}
	l.SessionSaved("s-1", domain.SessionRecord{FinalScore: 80, DurationSeconds: 1500})
	saved := <-l.Events()
	if saved.Kind != dto.EventSaved || saved.SessionID != "s-1" || saved.Score != 80 {
		t.Fatalf("unexpected saved event %+v", saved)
	}
}
