package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-health-server/internal/handler/grpc"
	"github.com/MKhiriev/go-health-server/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening grpc on %s: %w", address, err)
	}

	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) name() string {
	return "grpc"
}

func (g *grpcServer) addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) serve() error {
	return g.server.Serve(g.gRPCNetListener)
}

// shutdown reports NOT_SERVING, then drains in-flight calls. When ctx
// expires first the remaining calls are cut off.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("grpc server shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) close() error {
	return g.gRPCNetListener.Close()
}
