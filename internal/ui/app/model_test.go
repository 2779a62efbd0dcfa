package app

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	focusdto "focusly/internal/modules/focus/dto"
	"focusly/internal/ui/components"
)

type fakeFocus struct {
	mu      sync.Mutex
	running bool
	minutes int
	exports []string
}

func (f *fakeFocus) Toggle(context.Context) (focusdto.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = !f.running
	return focusdto.Snapshot{Running: f.running, TimerText: "25:00"}, nil
}

func (f *fakeFocus) Pause(context.Context) error { return nil }

func (f *fakeFocus) Reset(context.Context) (focusdto.SessionResult, error) {
	return focusdto.SessionResult{}, nil
}

func (f *fakeFocus) Run(ctx context.Context, _ focusdto.RunInput) error {
	<-ctx.Done()
	return nil
}

func (f *fakeFocus) Snapshot(context.Context) (focusdto.Snapshot, error) {
	return focusdto.Snapshot{TimerText: "25:00", Score: 100}, nil
}

func (f *fakeFocus) SetMinutes(_ context.Context, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.minutes = minutes
	return nil
}

func (f *fakeFocus) Export(_ context.Context, path string) (focusdto.ExportOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exports = append(f.exports, path)
	return focusdto.ExportOutput{Path: path, Events: 3}, nil
}

func (f *fakeFocus) EditKeyword(_ context.Context, list, _ string, _ bool) (focusdto.KeywordOutput, error) {
	return focusdto.KeywordOutput{List: list, Keywords: []string{"vim"}}, nil
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitWaitsForTrackerLoop(t *testing.T) {
	t.Parallel()
	focus := &fakeFocus{}
	m := NewModel(focus, nil, nil, Options{})
	done := make(chan tea.Msg, 1)
	go func() { done <- m.runCmd()() }()

	next, cmd := m.Update(runeKey("q"))
	if cmd != nil {
		t.Fatalf("quit must wait for the tracker loop instead of exiting")
	}
	model := next.(Model)
	if !model.quitting {
		t.Fatalf("expected quitting state")
	}
	msg := <-done
	if _, ok := msg.(runDoneMsg); !ok {
		t.Fatalf("expected run to finish after cancel, got %T", msg)
	}
	if _, cmd := model.Update(msg); cmd == nil {
		t.Fatalf("expected quit command once the loop is done")
	}
}

func TestToggleAndExportKeys(t *testing.T) {
	t.Parallel()
	focus := &fakeFocus{}
	m := NewModel(focus, nil, nil, Options{ExportDir: "/tmp/exports"})

	_, cmd := m.Update(runeKey("s"))
	status, ok := cmd().(statusMsg)
	if !ok || status.text != "focus session running" {
		t.Fatalf("unexpected toggle result %#v", status)
	}

	_, cmd = m.Update(runeKey("e"))
	status = cmd().(statusMsg)
	if len(focus.exports) != 1 || !strings.HasPrefix(focus.exports[0], "/tmp/exports/activity-") || !strings.HasSuffix(focus.exports[0], ".csv") {
		t.Fatalf("unexpected export path %v", focus.exports)
	}
	if !strings.Contains(status.text, "exported 3 events") {
		t.Fatalf("unexpected export status %q", status.text)
	}
}

func TestPaletteTimerCommand(t *testing.T) {
	t.Parallel()
	focus := &fakeFocus{}
	m := NewModel(focus, nil, nil, Options{})
	next, cmd := m.Update(components.PaletteSubmitMsg{Input: "timer 50"})
	if cmd == nil {
		t.Fatalf("expected timer command")
	}
	if status := cmd().(statusMsg); status.err != nil {
		t.Fatalf("timer: %v", status.err)
	}
	if focus.minutes != 50 {
		t.Fatalf("expected 50 minutes, got %d", focus.minutes)
	}
	if _, cmd := next.(Model).Update(components.PaletteSubmitMsg{Input: "timer abc"}); cmd != nil {
		t.Fatalf("invalid minutes must not issue a command")
	}
}

func TestThresholdEventShowsBanner(t *testing.T) {
	t.Parallel()
	events := make(chan focusdto.Event, 1)
	m := NewModel(&fakeFocus{}, nil, nil, Options{Events: events})
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ := sized.(Model).Update(eventMsg(focusdto.Event{Kind: focusdto.EventThreshold, Score: 90, Message: "Focus at 90%"}))
	model := next.(Model)
	if !strings.Contains(model.renderTabBar(), "Focus at 90%") {
		t.Fatalf("expected banner in tab bar")
	}
	if !strings.Contains(model.focusView.View(), "Focus at 90%") {
		t.Fatalf("expected alert in focus view history")
	}
}
