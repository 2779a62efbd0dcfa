package main

import (
	"context"

	"github.com/hashicorp/go-plugin"

	probeout "focusly/internal/modules/probe/adapter/out"
	proberpc "focusly/internal/modules/probe/adapter/out/rpc"
)

// server exposes the in-process xdotool source over the plugin contract.
type server struct {
	source *probeout.XdotoolSource
}

func (s server) GetMetadata(ctx context.Context, _ *proberpc.Empty) (*proberpc.Metadata, error) {
	meta, err := s.source.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	return &proberpc.Metadata{Name: "focusly-probe-" + meta.Name, Version: meta.Version, Platform: meta.Platform}, nil
}

func (s server) ActiveWindow(ctx context.Context, _ *proberpc.Empty) (*proberpc.ActiveWindowResponse, error) {
	window, err := s.source.ActiveWindow(ctx)
	if err != nil {
		return nil, err
	}
	return &proberpc.ActiveWindowResponse{Process: window.Process, Title: window.Title}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: proberpc.HandshakeConfig,
		Plugins:         proberpc.PluginMap(server{source: probeout.NewXdotoolSource()}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
