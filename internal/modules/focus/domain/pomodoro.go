package domain

import (
	"fmt"
	"time"
)

const DefaultTimerMinutes = 25

// Pomodoro is a countdown advanced by one second per Tick.
type Pomodoro struct {
	minutes   int
	remaining int
	running   bool
	startedAt time.Time
}

func NewPomodoro(minutes int) *Pomodoro {
	if minutes < 1 {
		minutes = 1
	}
	return &Pomodoro{minutes: minutes, remaining: minutes * 60}
}

func (p *Pomodoro) Start(now time.Time) {
	p.running = true
	p.startedAt = now
}

func (p *Pomodoro) Pause() {
	p.running = false
}

func (p *Pomodoro) Reset() {
	p.running = false
	p.remaining = p.minutes * 60
	p.startedAt = time.Time{}
}

// SetMinutes changes the session length; an idle timer is rewound to it.
func (p *Pomodoro) SetMinutes(minutes int) {
	if minutes < 1 {
		minutes = 1
	}
	p.minutes = minutes
	if !p.running {
		p.remaining = minutes * 60
	}
}

// Tick advances the countdown. It reports finished exactly once, on the tick
// that finds nothing left, and stops the timer.
func (p *Pomodoro) Tick() (finished bool) {
	if !p.running {
		return false
	}
	if p.remaining <= 0 {
		p.running = false
		return true
	}
	p.remaining--
	return false
}

func (p *Pomodoro) Minutes() int {
	return p.minutes
}

func (p *Pomodoro) Remaining() int {
	return p.remaining
}

func (p *Pomodoro) Running() bool {
	return p.running
}

func (p *Pomodoro) Total() int {
	return p.minutes * 60
}

// Progress is the share of the session already counted down, in percent.
func (p *Pomodoro) Progress() int {
	total := p.Total()
	if total <= 0 {
		return 0
	}
	done := total - p.remaining
	if done < 0 {
		done = 0
	}
	return done * 100 / total
}

func (p *Pomodoro) Elapsed(now time.Time) time.Duration {
	if !p.running || p.startedAt.IsZero() {
		return 0
	}
	return now.Sub(p.startedAt)
}

func (p *Pomodoro) Format() string {
	return fmt.Sprintf("%02d:%02d", p.remaining/60, p.remaining%60)
}
