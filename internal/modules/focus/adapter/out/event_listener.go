package out

import (
	"sync/atomic"

	"focusly/internal/modules/focus/domain"
	"focusly/internal/modules/focus/dto"
	focusout "focusly/internal/modules/focus/port/out"
)

const defaultEventBuffer = 64

// EventListener turns tracker callbacks into dto.Event values on a buffered
// channel. Callbacks run under the tracker lock, so a full buffer drops the
// event instead of waiting for the reader.
type EventListener struct {
	events  chan dto.Event
	dropped atomic.Int64
}

func NewEventListener(buffer int) *EventListener {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &EventListener{events: make(chan dto.Event, buffer)}
}

var _ focusout.Listener = (*EventListener)(nil)

func (l *EventListener) Events() <-chan dto.Event {
	return l.events
}

func (l *EventListener) Dropped() int64 {
	return l.dropped.Load()
}

func (l *EventListener) ScoreUpdated(score int) {
	l.emit(dto.Event{Kind: dto.EventScore, Score: score})
}

func (l *EventListener) DistractionAlert(process, title string, seconds int) {
	l.emit(dto.Event{
		Kind:    dto.EventDistraction,
		Process: process,
		Title:   title,
		Seconds: seconds,
		Message: domain.DistractionMessage(process, seconds),
	})
}

func (l *EventListener) ScoreThresholdAlert(score int, message string) {
	l.emit(dto.Event{Kind: dto.EventThreshold, Score: score, Message: message})
}

func (l *EventListener) SessionSaved(id string, record domain.SessionRecord) {
	l.emit(dto.Event{Kind: dto.EventSaved, Score: record.FinalScore, Seconds: record.DurationSeconds, SessionID: id})
}

func (l *EventListener) emit(event dto.Event) {
	select {
	case l.events <- event:
	default:
		l.dropped.Add(1)
	}
}
