package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	proberpc "focusly/internal/modules/probe/adapter/out/rpc"
	"focusly/internal/modules/probe/domain"
	probeout "focusly/internal/modules/probe/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = time.Second
)

// PluginSource keeps one probe plugin process alive across polls. A failed
// call kills the process so the next call relaunches it.
type PluginSource struct {
	binary string
	args   []string

	mu     sync.Mutex
	client *plugin.Client
	rpc    proberpc.WindowProbeClient
}

func NewPluginSource(binary string, args ...string) probeout.WindowSource {
	return &PluginSource{binary: binary, args: args}
}

func (s *PluginSource) Metadata(ctx context.Context) (domain.Metadata, error) {
	client, err := s.connect()
	if err != nil {
		return domain.Metadata{}, err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		s.drop()
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Platform: meta.Platform}, nil
}

func (s *PluginSource) ActiveWindow(ctx context.Context) (domain.Window, error) {
	client, err := s.connect()
	if err != nil {
		return domain.Window{}, err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	window, err := client.ActiveWindow(callCtx)
	if err != nil {
		s.drop()
		return domain.Window{}, fmt.Errorf("active window: %w", err)
	}
	return domain.Window{Process: window.Process, Title: window.Title}, nil
}

func (s *PluginSource) Close() error {
	s.drop()
	return nil
}

func (s *PluginSource) connect() (proberpc.WindowProbeClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil && !s.client.Exited() && s.rpc != nil {
		return s.rpc, nil
	}
	s.killLocked()

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  proberpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          proberpc.PluginMap(nil),
		Cmd:              exec.Command(s.binary, s.args...),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	protocol, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start probe plugin: %w", err)
	}
	raw, err := protocol.Dispense(proberpc.PluginMapKey)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense probe plugin: %w", err)
	}
	typed, ok := raw.(proberpc.WindowProbeClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("probe rpc client type mismatch")
	}
	s.client = client
	s.rpc = typed
	return typed, nil
}

func (s *PluginSource) drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()
}

func (s *PluginSource) killLocked() {
	if s.client != nil {
		s.client.Kill()
	}
	s.client = nil
	s.rpc = nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
