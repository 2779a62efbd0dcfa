package domain

import (
	"fmt"
	"sort"
	"time"

	apperrors "focusly/internal/platform/errors"
)

const (
	// MinSessionSeconds is the shortest session handed to persistence.
	MinSessionSeconds = 10
	// MinAppSeconds drops per-app entries at or below it as noise.
	MinAppSeconds = 5
)

// EndReason records what closed a session.
type EndReason string

const (
	EndFinished EndReason = "finished"
	EndReset    EndReason = "reset"
	EndStopped  EndReason = "stopped"
)

type AppUsage struct {
	Process string
	Title   string
	Seconds int
}

// SessionRecord is the immutable summary of one finished session.
type SessionRecord struct {
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	FinalScore      int
	Apps            []AppUsage
	Reason          EndReason
}

func NewSessionRecord(startedAt, endedAt time.Time, finalScore int, perApp map[AppKey]int, reason EndReason) (SessionRecord, error) {
	duration := int(endedAt.Sub(startedAt).Seconds())
	if duration < MinSessionSeconds {
		return SessionRecord{}, fmt.Errorf("%w: %ds", apperrors.ErrSessionTooShort, duration)
	}
	return SessionRecord{
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		DurationSeconds: duration,
		FinalScore:      clampScore(finalScore),
		Apps:            RankApps(perApp, MinAppSeconds),
		Reason:          reason,
	}, nil
}

// RankApps lists the entries above minSeconds, longest first.
func RankApps(perApp map[AppKey]int, minSeconds int) []AppUsage {
	apps := make([]AppUsage, 0, len(perApp))
	for key, seconds := range perApp {
		if seconds <= minSeconds {
			continue
		}
		apps = append(apps, AppUsage{Process: key.Process, Title: key.Title, Seconds: seconds})
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Seconds != apps[j].Seconds {
			return apps[i].Seconds > apps[j].Seconds
		}
		if apps[i].Process != apps[j].Process {
			return apps[i].Process < apps[j].Process
		}
		return apps[i].Title < apps[j].Title
	})
	return apps
}
