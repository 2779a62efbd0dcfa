package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"focusly/internal/modules/probe/domain"
	probeout "focusly/internal/modules/probe/port/out"
)

const xdotoolVersion = "0.1.0"

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// XdotoolSource resolves the focused X11 window in-process. The process name
// comes from /proc/<pid>/comm, falling back to the executable link.
type XdotoolSource struct {
	run      commandRunner
	readFile func(string) ([]byte, error)
	readLink func(string) (string, error)
	procRoot string
}

func NewXdotoolSource() *XdotoolSource {
	return &XdotoolSource{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		readFile: os.ReadFile,
		readLink: os.Readlink,
		procRoot: "/proc",
	}
}

var _ probeout.WindowSource = (*XdotoolSource)(nil)

func (s *XdotoolSource) Metadata(context.Context) (domain.Metadata, error) {
	return domain.Metadata{Name: "xdotool", Version: xdotoolVersion, Platform: runtime.GOOS}, nil
}

func (s *XdotoolSource) ActiveWindow(ctx context.Context) (domain.Window, error) {
	rawID, err := s.run(ctx, "xdotool", "getactivewindow")
	if err != nil {
		return domain.Window{}, fmt.Errorf("xdotool getactivewindow: %w", err)
	}
	windowID := strings.TrimSpace(string(rawID))
	if windowID == "" {
		return domain.Window{}, errors.New("xdotool returned no active window")
	}

	title, err := s.run(ctx, "xdotool", "getwindowname", windowID)
	if err != nil {
		return domain.Window{}, fmt.Errorf("xdotool getwindowname: %w", err)
	}
	window := domain.Window{Title: strings.TrimSpace(string(title))}

	rawPID, err := s.run(ctx, "xdotool", "getwindowpid", windowID)
	if err != nil {
		// Some windows expose no _NET_WM_PID; keep the title.
		return window, nil
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(rawPID)))
	if err != nil || pid <= 0 {
		return window, nil
	}
	window.Process = s.processName(pid)
	return window, nil
}

func (s *XdotoolSource) Close() error { return nil }

func (s *XdotoolSource) processName(pid int) string {
	dir := filepath.Join(s.procRoot, strconv.Itoa(pid))
	if comm, err := s.readFile(filepath.Join(dir, "comm")); err == nil {
		if name := strings.TrimSpace(string(comm)); name != "" {
			return name
		}
	}
	if exe, err := s.readLink(filepath.Join(dir, "exe")); err == nil {
		return filepath.Base(exe)
	}
	return ""
}
