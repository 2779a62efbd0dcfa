package domain_test

import (
	"testing"
	"time"

	"focusly/internal/modules/focus/domain"
	"pgregory.net/rapid"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestLedgerMergesConsecutiveSameWindow(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	l.Push("code", "main.go", 10, t0)
	ev, cls := l.Push(" code ", "main.go ", 5, t0.Add(5*time.Second))
	if l.Len() != 1 {
		t.Fatalf("expected merged event, got %d events", l.Len())
	}
	if ev.Seconds != 15 || !ev.Start.Equal(t0.Add(-10*time.Second)) || !ev.End.Equal(t0.Add(5*time.Second)) {
		t.Fatalf("unexpected merged event %+v", ev)
	}
	if cls != domain.Productive {
		t.Fatalf("expected productive, got %s", cls)
	}

	l.Push("slack", "general", 3, t0.Add(8*time.Second))
	l.Push("code", "main.go", 3, t0.Add(11*time.Second))
	if l.Len() != 3 {
		t.Fatalf("non-consecutive windows must not merge, got %d events", l.Len())
	}
}

func TestLedgerClampsNegativeSeconds(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	ev, _ := l.Push("code", "x", -4, t0)
	if ev.Seconds != 0 || !ev.Start.Equal(t0) {
		t.Fatalf("expected clamped event, got %+v", ev)
	}
}

func TestLedgerPruneAndWindowChange(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), 10*time.Minute)
	l.Push("a", "1", 60, t0)
	l.Push("b", "2", 60, t0.Add(5*time.Minute))
	l.Push("c", "3", 60, t0.Add(11*time.Minute))
	events := l.Events()
	if len(events) != 2 || events[0].Process != "b" {
		t.Fatalf("expected oldest event pruned, got %+v", events)
	}

	l.SetWindow(3*time.Minute, t0.Add(11*time.Minute))
	if l.Len() != 1 || l.Window() != 3*time.Minute {
		t.Fatalf("expected window change to re-prune, got %d events", l.Len())
	}
	l.SetWindow(0, t0.Add(11*time.Minute))
	if l.Window() != 3*time.Minute {
		t.Fatalf("non-positive window must be ignored")
	}

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger after clear")
	}
}

func TestLedgerScoreWindowOverlap(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	l.Push("chrome", "Cats - YouTube", 100, t0)
	l.Push("code", "main.go", 100, t0.Add(100*time.Second))

	total, distractor := l.ScoreWindow(t0.Add(-50*time.Second), t0.Add(100*time.Second))
	if total != 150 || distractor != 50 {
		t.Fatalf("expected overlap 150/50, got %v/%v", total, distractor)
	}
	total, distractor = l.ScoreWindow(t0.Add(200*time.Second), t0.Add(300*time.Second))
	if total != 0 || distractor != 0 {
		t.Fatalf("expected no overlap, got %v/%v", total, distractor)
	}
}

func TestLedgerClassified(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	l.Push("chrome", "Netflix", 5, t0)
	l.Push("idle", "blank", 90, t0.Add(90*time.Second))
	got := l.Classified()
	if len(got) != 2 || got[0].Class != domain.Distractor || got[1].Class != domain.Distractor {
		t.Fatalf("unexpected classification %+v", got)
	}
}

func TestPropertyLedgerMerge(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 600).Draw(rt, "a")
		b := rapid.IntRange(0, 600).Draw(rt, "b")
		l := domain.NewLedger(domain.NewDefaultClassifier(), 2*time.Hour)
		first, _ := l.Push("editor", "notes.txt", a, t0)
		merged, _ := l.Push("editor", "notes.txt", b, t0.Add(time.Duration(b)*time.Second))
		if l.Len() != 1 {
			rt.Fatalf("expected one event, got %d", l.Len())
		}
		if merged.Seconds != a+b {
			rt.Fatalf("seconds = %d, want %d", merged.Seconds, a+b)
		}
		if !merged.Start.Equal(first.Start) {
			rt.Fatalf("start moved from %v to %v", first.Start, merged.Start)
		}
	})
}

func TestPropertyLedgerPrune(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		window := time.Duration(rapid.IntRange(1, 3600).Draw(rt, "window")) * time.Second
		l := domain.NewLedger(domain.NewDefaultClassifier(), window)
		now := t0
		n := rapid.IntRange(1, 40).Draw(rt, "pushes")
		for i := 0; i < n; i++ {
			step := rapid.IntRange(0, 900).Draw(rt, "step")
			now = now.Add(time.Duration(step) * time.Second)
			proc := rapid.SampledFrom([]string{"code", "chrome", "steam", "idle"}).Draw(rt, "proc")
			l.Push(proc, "t", step, now)
			cutoff := now.Add(-window)
			for _, ev := range l.Events() {
				if ev.End.Before(cutoff) {
					rt.Fatalf("event ending %v retained past cutoff %v", ev.End, cutoff)
				}
			}
		}
	})
}
