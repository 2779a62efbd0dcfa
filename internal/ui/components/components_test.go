package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPaletteTabCompletesFirstHint(t *testing.T) {
	t.Parallel()
	p := NewPalette([]string{"timer <minutes>", "keyword add <list> <keyword>"})
	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ke")})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "keyword add " {
		t.Fatalf("expected completion, got %q", got)
	}
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "keyword add" {
		t.Fatalf("unexpected submit %#v", msg)
	}
}

func TestBannerExpires(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var b Banner
	if b.Active(now) {
		t.Fatalf("empty banner must be inactive")
	}
	b.Show("Focus at 95%", now, 8*time.Second)
	if !b.Active(now.Add(7*time.Second)) || b.View(now) == "" {
		t.Fatalf("banner should be visible before expiry")
	}
	if b.Active(now.Add(8 * time.Second)) {
		t.Fatalf("banner should expire after its ttl")
	}
}
