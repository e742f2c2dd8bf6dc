package grpc

import (
	"fmt"
	"net"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server exposes the standard gRPC health protocol for the payment service
// so orchestrators can probe it alongside the HTTP API.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	server   *grpc.Server
	health   *health.Server
}

func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(log)),
		grpc.ChainStreamInterceptor(logger.NewGrpcStreamServerInterceptor(log)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(cfg.Service.Name, healthpb.HealthCheckResponse_SERVING)

	if !cfg.IsProduction() {
		reflection.Register(server)
	}

	return &Server{
		config: cfg,
		logger: log,
		server: server,
		health: healthServer,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.GRPC.Host, s.config.Server.GRPC.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Info("Starting gRPC server", zap.String("address", addr))
	return s.Serve(listener)
}

// Serve runs the server on an existing listener and blocks until it stops.
func (s *Server) Serve(listener net.Listener) error {
	return s.server.Serve(listener)
}

func (s *Server) Shutdown() {
	s.logger.Info("Shutting down gRPC server")
	s.health.Shutdown()
	s.server.GracefulStop()
}
