package domain_test

import (
	"strings"
	"testing"
	"time"

	"focusly/internal/modules/focus/domain"
	"pgregory.net/rapid"
)

func TestGateRatchet(t *testing.T) {
	t.Parallel()
	g := domain.NewNotificationGate(domain.DefaultNotificationCooldown)
	var fired []int
	for _, score := range []int{100, 96, 95, 91, 90} {
		if _, ok := g.OnScore(score); ok {
			fired = append(fired, score)
		}
	}
	if len(fired) != 2 || fired[0] != 95 || fired[1] != 90 {
		t.Fatalf("expected alerts at 95 and 90, got %v", fired)
	}

	if _, ok := g.OnScore(90); ok {
		t.Fatalf("repeated score must not alert")
	}
	if _, ok := g.OnScore(97); ok {
		t.Fatalf("rising score must not alert")
	}
	if g.LastNotifiedScore() != 97 {
		t.Fatalf("rising score should raise the floor, got %d", g.LastNotifiedScore())
	}
	msg, ok := g.OnScore(95)
	if !ok || !strings.Contains(msg, "95%") {
		t.Fatalf("expected re-armed alert at 95, got %q %v", msg, ok)
	}
}

func TestGateSkipsBoundaryWhenJumpingPast(t *testing.T) {
	t.Parallel()
	g := domain.NewNotificationGate(0)
	g.OnScore(50)
	if _, ok := g.OnScore(47); ok {
		t.Fatalf("non multiple must not alert")
	}
	if _, ok := g.OnScore(44); ok {
		t.Fatalf("jump past 45 must not alert")
	}
	if _, ok := g.OnScore(40); !ok {
		t.Fatalf("expected alert at 40")
	}
	g.Reset()
	if g.LastNotifiedScore() != 100 {
		t.Fatalf("reset should re-arm at 100")
	}
}

func TestGateDistractionCooldown(t *testing.T) {
	t.Parallel()
	g := domain.NewNotificationGate(30 * time.Second)
	if !g.OnDistraction(t0) {
		t.Fatalf("first distraction should fire")
	}
	if g.OnDistraction(t0.Add(29 * time.Second)) {
		t.Fatalf("distraction inside cooldown must not fire")
	}
	if !g.OnDistraction(t0.Add(30 * time.Second)) {
		t.Fatalf("distraction after cooldown should fire")
	}
	g.SetCooldown(time.Minute)
	if g.OnDistraction(t0.Add(80 * time.Second)) {
		t.Fatalf("new cooldown should apply")
	}
	g.Reset()
	if !g.OnDistraction(t0.Add(81 * time.Second)) {
		t.Fatalf("reset should clear the cooldown")
	}
}

func TestThresholdMessage(t *testing.T) {
	t.Parallel()
	if got := domain.ThresholdMessage(0); got != "Focus: 0%" {
		t.Fatalf("unexpected fallback %q", got)
	}
	for score := 5; score <= 95; score += 5 {
		if got := domain.ThresholdMessage(score); strings.HasPrefix(got, "Focus: ") {
			t.Fatalf("missing message for %d", score)
		}
	}
}

func TestPropertyGateFiresOnlyOnDownwardMultiples(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := domain.NewNotificationGate(0)
		last := 100
		scores := rapid.SliceOfN(rapid.IntRange(0, 100), 1, 50).Draw(rt, "scores")
		for _, score := range scores {
			_, ok := g.OnScore(score)
			want := score%5 == 0 && score < last
			if ok != want {
				rt.Fatalf("score %d after floor %d: fired=%v want %v", score, last, ok, want)
			}
			if want || score > last {
				last = score
			}
			if g.LastNotifiedScore() != last {
				rt.Fatalf("floor = %d, want %d", g.LastNotifiedScore(), last)
			}
		}
	})
}
