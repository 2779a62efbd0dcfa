package out

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeXdotool(outputs map[string]string) commandRunner {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		key := name + " " + strings.Join(args, " ")
		out, ok := outputs[key]
		if !ok {
			return nil, errors.New("exit status 1")
		}
		return []byte(out), nil
	}
}

func TestXdotoolSourceResolvesProcessFromProc(t *testing.T) {
	t.Parallel()
	procRoot := t.TempDir()
	if err := os.MkdirAll(filepath.Join(procRoot, "4242"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(procRoot, "4242", "comm"), []byte("firefox\n"), 0o644); err != nil {
		t.Fatalf("write comm: %v", err)
	}
	source := &XdotoolSource{
		run: fakeXdotool(map[string]string{
			"xdotool getactivewindow":  "77\n",
			"xdotool getwindowname 77": "Cats - YouTube - Mozilla Firefox\n",
			"xdotool getwindowpid 77":  "4242\n",
		}),
		readFile: os.ReadFile,
		readLink: os.Readlink,
		procRoot: procRoot,
	}
	window, err := source.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("active window: %v", err)
	}
	if window.Process != "firefox" || window.Title != "Cats - YouTube - Mozilla Firefox" {
		t.Fatalf("unexpected window %+v", window)
	}
}

func TestXdotoolSourceKeepsTitleWithoutPID(t *testing.T) {
	t.Parallel()
	source := &XdotoolSource{
		run: fakeXdotool(map[string]string{
			"xdotool getactivewindow": "9\n",
			"xdotool getwindowname 9": "Terminal\n",
		}),
		readFile: os.ReadFile,
		readLink: os.Readlink,
		procRoot: t.TempDir(),
	}
	window, err := source.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("active window: %v", err)
	}
	if window.Process != "" || window.Title != "Terminal" {
		t.Fatalf("unexpected window %+v", window)
	}
}

func TestXdotoolSourceFailsWithoutDisplay(t *testing.T) {
	t.Parallel()
	source := &XdotoolSource{run: fakeXdotool(nil), readFile: os.ReadFile, readLink: os.Readlink, procRoot: t.TempDir()}
	if _, err := source.ActiveWindow(context.Background()); err == nil {
		t.Fatalf("expected error when xdotool fails")
	}
}
