package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	ambientout "focusly/internal/modules/ambient/port/out"
)

const stopTimeout = 2 * time.Second

var errNotPlaying = errors.New("no player process running")

// ProcessPlayer loops a track in an external player process. Pause and resume
// suspend the process rather than asking the player to pause.
type ProcessPlayer struct {
	binary string

	mu     sync.Mutex
	cmd    *exec.Cmd
	done   chan struct{}
	paused bool
}

func NewProcessPlayer(binary string) *ProcessPlayer {
	if binary == "" {
		binary = "mpv"
	}
	return &ProcessPlayer{binary: binary}
}

var _ ambientout.Player = (*ProcessPlayer)(nil)

func (p *ProcessPlayer) Start(_ context.Context, path string, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.stopLocked(); err != nil {
		return err
	}
	cmd := exec.Command(p.binary, playerArgs(p.binary, path, volume)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.binary, err)
	}
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	p.cmd = cmd
	p.done = done
	p.paused = false
	return nil
}

func (p *ProcessPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.signalLocked(pauseSignal); err != nil {
		return err
	}
	p.paused = true
	return nil
}

func (p *ProcessPlayer) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.signalLocked(resumeSignal); err != nil {
		return err
	}
	p.paused = false
	return nil
}

func (p *ProcessPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *ProcessPlayer) signalLocked(sig os.Signal) error {
	if !p.aliveLocked() {
		return errNotPlaying
	}
	if sig == nil {
		return errors.New("process suspension is not supported on this platform")
	}
	return p.cmd.Process.Signal(sig)
}

func (p *ProcessPlayer) aliveLocked() bool {
	if p.cmd == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *ProcessPlayer) stopLocked() error {
	if !p.aliveLocked() {
		p.cmd, p.done, p.paused = nil, nil, false
		return nil
	}
	if p.paused && resumeSignal != nil {
		_ = p.cmd.Process.Signal(resumeSignal)
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop %s: %w", p.binary, err)
	}
	select {
	case <-p.done:
	case <-time.After(stopTimeout):
		return fmt.Errorf("stop %s: process did not exit", p.binary)
	}
	p.cmd, p.done, p.paused = nil, nil, false
	return nil
}

func playerArgs(binary, path string, volume float64) []string {
	percent := strconv.Itoa(int(volume*100 + 0.5))
	switch filepath.Base(binary) {
	case "ffplay":
		return []string{"-nodisp", "-loglevel", "quiet", "-loop", "0", "-volume", percent, path}
	default:
		return []string{"--no-video", "--really-quiet", "--loop=inf", "--volume=" + percent, path}
	}
}
