package out

import (
	"slices"
	"testing"
)

func TestPlayerArgs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		binary string
		want   []string
	}{
		{"mpv", []string{"--no-video", "--really-quiet", "--loop=inf", "--volume=70", "/a.wav"}},
		{"/usr/bin/ffplay", []string{"-nodisp", "-loglevel", "quiet", "-loop", "0", "-volume", "70", "/a.wav"}},
	}
	for _, tc := range cases {
		if got := playerArgs(tc.binary, "/a.wav", 0.7); !slices.Equal(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.binary, tc.want, got)
		}
	}
}

func TestProcessPlayerRequiresRunningProcess(t *testing.T) {
	t.Parallel()
	p := NewProcessPlayer("")
	if err := p.Pause(); err == nil {
		t.Fatalf("pause without a process must fail")
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("stop without a process is a no-op, got %v", err)
	}
}
