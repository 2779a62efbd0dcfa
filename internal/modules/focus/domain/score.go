package domain

import (
	"math"
	"time"
)

const (
	MaxScore = 100
	// GracePeriod suppresses point deductions right after a session starts.
	GracePeriod = 10 * time.Second
)

// Strategy names the algorithm used for the displayed score.
type Strategy string

const (
	StrategyProgressive Strategy = "progressive"
	StrategyRatio       Strategy = "ratio"
)

// RatioScore is the share of non-distracting time, floored to an integer percent.
// No recorded time counts as full focus.
func RatioScore(total, distractor float64) int {
	if total <= 0 {
		return MaxScore
	}
	score := int(math.Floor((1 - distractor/total) * 100))
	return clampScore(score)
}

// CurrentScore prunes the ledger and returns the ratio score over it. With a
// session start the window begins there but never spans more than window.
func (l *Ledger) CurrentScore(window time.Duration, sessionStart, now time.Time) int {
	l.Prune(now)
	if window <= 0 {
		window = l.window
	}
	cutoff := now.Add(-window)
	if !sessionStart.IsZero() && sessionStart.After(cutoff) {
		cutoff = sessionStart
	}
	total, distractor := l.ScoreWindow(cutoff, now)
	return RatioScore(total, distractor)
}

// ProgressiveScore deducts 100/targetMinutes points per distracting minute, so
// a short session penalizes each minute more steeply than a long one.
func ProgressiveScore(targetMinutes int, elapsed time.Duration, perApp map[AppKey]int, isDistractor func(AppKey) bool) int {
	if elapsed < GracePeriod {
		return MaxScore
	}
	if targetMinutes < 1 {
		targetMinutes = 1
	}
	distracting := 0
	for key, seconds := range perApp {
		if seconds > 0 && isDistractor(key) {
			distracting += seconds
		}
	}
	minutes := float64(distracting) / 60
	pointsPerMinute := float64(MaxScore) / float64(targetMinutes)
	return clampScore(MaxScore - int(math.Floor(minutes*pointsPerMinute)))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
