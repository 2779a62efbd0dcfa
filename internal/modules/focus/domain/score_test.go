package domain_test

import (
	"testing"
	"time"

	"focusly/internal/modules/focus/domain"
	"pgregory.net/rapid"
)

func TestCurrentScoreScenario(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	l.Push("youtube... chrome.exe", "Funny Cat - YouTube", 40, t0)
	now := t0.Add(200 * time.Second)
	l.Push("code.exe", "main.py - VS Code", 200, now)

	total, distractor := l.ScoreWindow(now.Add(-time.Hour), now)
	if total != 240 || distractor != 40 {
		t.Fatalf("expected 240/40, got %v/%v", total, distractor)
	}
	if got := l.CurrentScore(time.Hour, time.Time{}, now); got != 83 {
		t.Fatalf("expected score 83, got %d", got)
	}
	if got := l.CurrentScore(0, time.Time{}, now); got != 83 {
		t.Fatalf("expected ledger window default, got %d", got)
	}
}

func TestCurrentScoreSessionStartBoundsWindow(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
	l.Push("chrome", "Netflix", 100, t0)
	now := t0.Add(100 * time.Second)
	l.Push("code", "main.go", 100, now)

	if got := l.CurrentScore(time.Hour, t0, now); got != 100 {
		t.Fatalf("session start should exclude earlier distraction, got %d", got)
	}
	if got := l.CurrentScore(50*time.Second, t0.Add(-time.Hour), now); got != 100 {
		t.Fatalf("window must bound an old session start, got %d", got)
	}
	if got := l.CurrentScore(time.Hour, t0.Add(-time.Hour), now); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestRatioScore(t *testing.T) {
	t.Parallel()
	cases := []struct {
		total, distractor float64
		want              int
	}{
		{0, 0, 100},
		{-1, 5, 100},
		{100, 0, 100},
		{100, 100, 0},
		{3, 1, 66},
		{100, 150, 0},
	}
	for _, tc := range cases {
		if got := domain.RatioScore(tc.total, tc.distractor); got != tc.want {
			t.Fatalf("RatioScore(%v, %v) = %d, want %d", tc.total, tc.distractor, got, tc.want)
		}
	}
}

func TestProgressiveScore(t *testing.T) {
	t.Parallel()
	c := domain.NewDefaultClassifier()
	isDistractor := func(k domain.AppKey) bool { return c.ClassifyByName(k.Process, k.Title) == domain.Distractor }
	perApp := map[domain.AppKey]int{
		{Process: "chrome", Title: "Cats - YouTube"}: 300,
		{Process: "code", Title: "main.go"}:          900,
	}
	if got := domain.ProgressiveScore(25, 20*time.Minute, perApp, isDistractor); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
	if got := domain.ProgressiveScore(10, 20*time.Minute, perApp, isDistractor); got != 50 {
		t.Fatalf("shorter target must penalize harder, got %d", got)
	}
	if got := domain.ProgressiveScore(25, 9*time.Second, perApp, isDistractor); got != 100 {
		t.Fatalf("expected grace period, got %d", got)
	}
	if got := domain.ProgressiveScore(0, time.Minute, perApp, isDistractor); got != 0 {
		t.Fatalf("zero target clamps to one minute, got %d", got)
	}
	if got := domain.ProgressiveScore(25, time.Minute, nil, isDistractor); got != 100 {
		t.Fatalf("expected 100 with no data, got %d", got)
	}
}

func TestPropertyScoreBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := domain.NewDefaultClassifier()
		l := domain.NewLedger(c, time.Duration(rapid.IntRange(1, 7200).Draw(rt, "window"))*time.Second)
		perApp := map[domain.AppKey]int{}
		now := t0
		n := rapid.IntRange(0, 30).Draw(rt, "pushes")
		for i := 0; i < n; i++ {
			seconds := rapid.IntRange(0, 1200).Draw(rt, "seconds")
			now = now.Add(time.Duration(seconds) * time.Second)
			proc := rapid.SampledFrom([]string{"code", "chrome", "steam", "unknown", "vlc"}).Draw(rt, "proc")
			title := rapid.SampledFrom([]string{"YouTube", "main.go", "", "Netflix"}).Draw(rt, "title")
			l.Push(proc, title, seconds, now)
			perApp[domain.NewAppKey(proc, title)] += seconds
		}
		window := time.Duration(rapid.IntRange(-10, 7200).Draw(rt, "score_window")) * time.Second
		if got := l.CurrentScore(window, time.Time{}, now); got < 0 || got > 100 {
			rt.Fatalf("ratio score out of bounds: %d", got)
		}
		target := rapid.IntRange(-5, 120).Draw(rt, "target")
		elapsed := time.Duration(rapid.IntRange(0, 7200).Draw(rt, "elapsed")) * time.Second
		got := domain.ProgressiveScore(target, elapsed, perApp, func(k domain.AppKey) bool {
			return c.ClassifyByName(k.Process, k.Title) == domain.Distractor
		})
		if got < 0 || got > 100 {
			rt.Fatalf("progressive score out of bounds: %d", got)
		}
		if elapsed < domain.GracePeriod && got != 100 {
			rt.Fatalf("grace period violated: %d", got)
		}
	})
}

func TestPropertyEmptyLedgerScoresFull(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := domain.NewLedger(domain.NewDefaultClassifier(), time.Hour)
		offset := time.Duration(rapid.IntRange(0, 86400).Draw(rt, "offset")) * time.Second
		if got := l.CurrentScore(time.Hour, time.Time{}, t0.Add(offset)); got != 100 {
			rt.Fatalf("empty ledger scored %d", got)
		}
	})
}
