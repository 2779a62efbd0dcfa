package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("session already running")
	ErrSessionTooShort     = errors.New("session too short to persist")
	ErrProbeUnavailable    = errors.New("window probe unavailable")
	ErrTrackNotFound       = errors.New("track not found")
)
