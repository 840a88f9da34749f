package server

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/fekuna/omnipos-storefront/internal/logger"
)

const healthPingInterval = 10 * time.Second

// GRPCServer exposes the standard health service so orchestrators can probe the storefront.
type GRPCServer struct {
	srv    *grpc.Server
	health *health.Server
	db     Pinger
	logger logger.ZapLogger
}

func NewGRPCServer(db Pinger, log logger.ZapLogger) *GRPCServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &GRPCServer{srv: srv, health: hs, db: db, logger: log}
}

// Serve blocks until the server stops. port may omit the leading colon.
func (s *GRPCServer) Serve(port string) error {
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	lis, err := net.Listen("tcp", port)
	if err != nil {
		return err
	}
	s.logger.Info("Starting gRPC server", zap.String("port", port))
	return s.srv.Serve(lis)
}

// WatchDatabase flips the overall serving status with each database ping until ctx is done.
func (s *GRPCServer) WatchDatabase(ctx context.Context) {
	s.check(ctx)
	ticker := time.NewTicker(healthPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *GRPCServer) check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := s.db.PingContext(pingCtx)
		cancel()
		if err != nil {
			s.logger.Warn("database ping failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", status)
}

func (s *GRPCServer) GracefulStop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
