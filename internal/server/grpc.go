package server

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/meshwire/connector/internal/dispatch"
	"github.com/meshwire/connector/pb"
)

// serveGRPC runs the dispatch gRPC server until ctx is cancelled, then
// drains in-flight RPCs with GracefulStop.
func serveGRPC(ctx context.Context, addr string, srv *dispatch.Server, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: grpc listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterDispatchServiceServer(grpcServer, srv)

	go func() {
		<-ctx.Done()
		logger.Info("grpc server shutting down gracefully")
		grpcServer.GracefulStop()
	}()

	logger.Info("grpc server listening", zap.String("addr", addr))

	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("server: grpc serve: %w", err)
	}
	return nil
}
