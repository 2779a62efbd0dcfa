//go:build unix

package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestProcessPlayerLifecycle(t *testing.T) {
	t.Parallel()
	script := filepath.Join(t.TempDir(), "fake-player")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexec sleep 30\n"), 0o755); err != nil {
		t.Fatalf("write fake player: %v", err)
	}
	p := NewProcessPlayer(script)
	if err := p.Start(context.Background(), "/tmp/a.wav", 0.5); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := p.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := p.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := p.Pause(); err != nil {
		t.Fatalf("pause again: %v", err)
	}
	// Stopping a suspended process still reaps it.
	if err := p.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := p.Resume(); err == nil {
		t.Fatalf("resume after stop must fail")
	}
}
