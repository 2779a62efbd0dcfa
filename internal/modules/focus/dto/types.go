package dto

import "time"

type ReportInput struct {
	Process string
	Title   string
}

type ClassifyInput struct {
	Process string
	Title   string
	Seconds int
}

type ClassifyOutput struct {
	Classification string
}

const (
	ListProductive = "productive"
	ListDistractor = "distractor"
)

type KeywordInput struct {
	List    string
	Keyword string
	Remove  bool
}

type KeywordOutput struct {
	List     string
	Keywords []string
}

type ScorerSettings struct {
	WindowSeconds               int
	DistractorThresholdSeconds  int
	NotificationCooldownSeconds int
	Strategy                    string
	ProductiveKeywords          []string
	DistractorKeywords          []string
}

type AppSeconds struct {
	Process        string
	Title          string
	Seconds        int
	Classification string
}

type Snapshot struct {
	TimerText      string
	Remaining      int
	Progress       int
	Running        bool
	Minutes        int
	Score          int
	Strategy       string
	Process        string
	Title          string
	Classification string
	SessionStarted time.Time
	TopApps        []AppSeconds
}

type TickOutput struct {
	Score    int
	Finished bool
	Session  SessionResult
}

// SessionResult describes a session closed by finish, reset or stop. Saved is
// false when nothing was long enough to persist.
type SessionResult struct {
	Saved           bool
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	FinalScore      int
	Reason          string
	Apps            []AppSeconds
}

type RunInput struct {
	PollInterval time.Duration
	ExitOnFinish bool
}

type ExportInput struct {
	Path string
}

type ExportOutput struct {
	Path   string
	Events int
}

type EventKind string

const (
	EventScore       EventKind = "score"
	EventDistraction EventKind = "distraction"
	EventThreshold   EventKind = "threshold"
	EventSaved       EventKind = "saved"
)

// Event is a tracker notification flattened for presentation layers.
type Event struct {
	Kind      EventKind
	Score     int
	Process   string
	Title     string
	Seconds   int
	Message   string
	SessionID string
}
