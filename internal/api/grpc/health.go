package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"moto-rentals-backend/internal/api/grpc/interceptor"
	"moto-rentals-backend/internal/logger"
)

// CatalogService is the health-checked service name for the vehicle catalog.
const CatalogService = "moto.rentals.v1.Catalog"

// HealthServer exposes grpc.health.v1 for the process. Both the overall
// status and the catalog status start as NOT_SERVING.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
}

func NewHealthServer() *HealthServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(interceptor.Unary()))
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(CatalogService, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, h)

	// Register reflection service for grpcurl
	reflection.Register(s)

	return &HealthServer{server: s, health: h}
}

// MarkServing is called once the catalog has been loaded.
func (s *HealthServer) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(CatalogService, healthpb.HealthCheckResponse_SERVING)
	logger.Info("gRPC health status changed", "status", "SERVING")
}

func (s *HealthServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// Stop flips every status to NOT_SERVING and drains in-flight RPCs.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
