package grpcserver

import (
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"shipment-service/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	// ServiceName - имя сервиса в grpc.health.v1, пустое имя отвечает за весь сервер.
	ServiceName = "shipment-service"
)

type serverLogger interface {
	Info(msg string, fields ...logger.Field)
}

// HealthServer - gRPC сервер только со стандартным health сервисом.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	log    serverLogger
}

func NewHealthServer(log serverLogger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		server: server,
		health: healthServer,
		log:    log,
	}
}

// Serve блокируется до Stop/GracefulStop.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))
	return s.server.Serve(lis)
}

// SetNotServing переводит health в NOT_SERVING, новые проверки балансировщика
// видят остановку раньше закрытия соединений.
func (s *HealthServer) SetNotServing() {
	s.health.Shutdown()
}

func (s *HealthServer) GracefulStop() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.log.Info("gRPC health server stopped")
}
