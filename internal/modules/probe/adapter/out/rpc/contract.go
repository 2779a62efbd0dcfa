package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey       = "window_probe"
	serviceName        = "focusly.probe.v1.WindowProbe"
	jsonCodecName      = "json"
	methodGetMetadata  = "/" + serviceName + "/GetMetadata"
	methodActiveWindow = "/" + serviceName + "/ActiveWindow"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "FOCUSLY_PROBE",
	MagicCookieValue: "focusly",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
}

type ActiveWindowResponse struct {
	Process string `json:"process"`
	Title   string `json:"title"`
}

type WindowProbeServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ActiveWindow(ctx context.Context, in *Empty) (*ActiveWindowResponse, error)
}

type WindowProbeClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ActiveWindow(ctx context.Context) (*ActiveWindowResponse, error)
}

type windowProbeClient struct {
	conn grpc.ClientConnInterface
}

func NewWindowProbeClient(conn grpc.ClientConnInterface) WindowProbeClient {
	return &windowProbeClient{conn: conn}
}

func (c *windowProbeClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *windowProbeClient) ActiveWindow(ctx context.Context) (*ActiveWindowResponse, error) {
	out := &ActiveWindowResponse{}
	if err := c.conn.Invoke(ctx, methodActiveWindow, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

// emptyUnary adapts a no-argument method to a grpc unary handler, routing
// through the interceptor when one is installed.
func emptyUnary[T any](fullMethod string, call func(context.Context, *Empty) (T, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := &Empty{}
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			empty, ok := req.(*Empty)
			if !ok {
				return nil, fmt.Errorf("invalid request type %T", req)
			}
			return call(ctx, empty)
		})
	}
}

func RegisterWindowProbeServer(server grpc.ServiceRegistrar, impl WindowProbeServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*WindowProbeServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "GetMetadata", Handler: emptyUnary(methodGetMetadata, impl.GetMetadata)},
			{MethodName: "ActiveWindow", Handler: emptyUnary(methodActiveWindow, impl.ActiveWindow)},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "focusly/probe/v1",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl WindowProbeServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterWindowProbeServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewWindowProbeClient(conn), nil
}

func PluginMap(impl WindowProbeServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
