package dto

import "time"

type App struct {
	Process string
	Title   string
	Seconds int
}

type SaveInput struct {
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	FinalScore      int
	Reason          string
	Apps            []App
}

type SaveOutput struct {
	SessionID string
	NotePath  string
}

type ListInput struct {
	Limit int
}

type SessionOutput struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	FinalScore      int
	Reason          string
	AppsUsed        string
}

type SessionDetailOutput struct {
	SessionOutput
	Apps []App
}
