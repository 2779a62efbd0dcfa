package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	SchemaVersion = 1
	// summaryApps is how many apps the apps_used column lists.
	summaryApps = 5
)

type App struct {
	Process string
	Title   string
	Seconds int
}

// Session is a persisted focus session with its per-app breakdown.
type Session struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	FinalScore      int
	Reason          string
	AppsUsed        string
	Apps            []App
}

// SortApps orders apps longest first, ties by process then title.
func SortApps(apps []App) {
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Seconds != apps[j].Seconds {
			return apps[i].Seconds > apps[j].Seconds
		}
		if apps[i].Process != apps[j].Process {
			return apps[i].Process < apps[j].Process
		}
		return apps[i].Title < apps[j].Title
	})
}

// AppsUsedSummary renders the first apps as "proc(Ns), ...".
func AppsUsedSummary(apps []App) string {
	n := min(len(apps), summaryApps)
	parts := make([]string, 0, n)
	for _, app := range apps[:n] {
		parts = append(parts, fmt.Sprintf("%s(%ds)", app.Process, app.Seconds))
	}
	return strings.Join(parts, ", ")
}
