package rpc_test

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"focusly/internal/modules/probe/adapter/out/rpc"
)

type stubServer struct{}

func (stubServer) GetMetadata(context.Context, *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{Name: "stub", Version: "0.1.0", Platform: "test"}, nil
}

func (stubServer) ActiveWindow(context.Context, *rpc.Empty) (*rpc.ActiveWindowResponse, error) {
	return &rpc.ActiveWindowResponse{Process: "code", Title: "main.go - focusly"}, nil
}

func TestContractRoundTripOverGRPC(t *testing.T) {
	t.Parallel()
	listener := bufconn.Listen(1 << 16)
	server := grpc.NewServer()
	rpc.RegisterWindowProbeServer(server, stubServer{})
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return listener.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	client := rpc.NewWindowProbeClient(conn)
	meta, err := client.GetMetadata(context.Background())
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if meta.Name != "stub" || meta.Platform != "test" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	window, err := client.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("active window: %v", err)
	}
	if window.Process != "code" || window.Title != "main.go - focusly" {
		t.Fatalf("unexpected window %+v", window)
	}
}
