package domain

import (
	"fmt"
	"time"
)

const (
	DefaultNotificationCooldown = 30 * time.Second
	// DistractionAlertSeconds is the accumulated dwell after which a
	// distracting window may raise an alert.
	DistractionAlertSeconds = 30
	scoreBand               = 5
)

// NotificationGate decides which score and distraction events reach the user.
// Score alerts ratchet downward one exact multiple of five at a time and
// re-arm when the score recovers. Distraction alerts share one cooldown.
type NotificationGate struct {
	lastNotifiedScore int
	lastDistraction   time.Time
	cooldown          time.Duration
}

func NewNotificationGate(cooldown time.Duration) *NotificationGate {
	if cooldown < 0 {
		cooldown = 0
	}
	return &NotificationGate{lastNotifiedScore: MaxScore, cooldown: cooldown}
}

// OnScore returns the alert message when score crosses a band downward.
func (g *NotificationGate) OnScore(score int) (string, bool) {
	switch {
	case score%scoreBand == 0 && score < g.lastNotifiedScore:
		g.lastNotifiedScore = score
		return ThresholdMessage(score), true
	case score > g.lastNotifiedScore:
		g.lastNotifiedScore = score
	}
	return "", false
}

// OnDistraction reports whether a distraction alert may fire at now and, if
// so, starts a new cooldown.
func (g *NotificationGate) OnDistraction(now time.Time) bool {
	if !g.lastDistraction.IsZero() && now.Sub(g.lastDistraction) < g.cooldown {
		return false
	}
	g.lastDistraction = now
	return true
}

func (g *NotificationGate) Reset() {
	g.lastNotifiedScore = MaxScore
	g.lastDistraction = time.Time{}
}

func (g *NotificationGate) SetCooldown(cooldown time.Duration) {
	if cooldown < 0 {
		cooldown = 0
	}
	g.cooldown = cooldown
}

func (g *NotificationGate) Cooldown() time.Duration {
	return g.cooldown
}

func (g *NotificationGate) LastNotifiedScore() int {
	return g.lastNotifiedScore
}

var thresholdMessages = map[int]string{
	95: "Focus at 95% - going well, keep it up",
	90: "Focus at 90% - stay on your task",
	85: "Focus at 85% - you can hold this pace",
	80: "Focus at 80% - remember your main goal",
	75: "Focus at 75% - distractions are winning",
	70: "Focus at 70% - react now and get back to work",
	65: "Focus at 65% - your productivity is dropping",
	60: "Focus at 60% - breathe and refocus",
	55: "Focus at 55% - don't give up, focus again",
	50: "Focus at 50% - take control of your session",
	45: "Focus at 45% - the fight for focus goes on",
	40: "Focus at 40% - warning: session at risk",
	35: "Focus at 35% - do you need a scheduled break?",
	30: "Focus at 30% - low level, consider a break",
	25: "Focus at 25% - very low, restart the session?",
	20: "Focus at 20% - last warning, focus is critical",
	15: "Focus at 15% - sure you want to continue?",
	10: "Focus at 10% - minimum productivity",
	5:  "Focus at 5% - session in critical state",
}

func ThresholdMessage(score int) string {
	if msg, ok := thresholdMessages[score]; ok {
		return msg
	}
	return fmt.Sprintf("Focus: %d%%", score)
}

// DistractionMessage is the user-facing text for a distraction alert.
func DistractionMessage(process string, seconds int) string {
	return fmt.Sprintf("%.1f minutes in %s, time to refocus", float64(seconds)/60, process)
}
