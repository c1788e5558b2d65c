package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// serviceName имя сервиса в grpc.health.v1
	serviceName = "shortlink.URLShortener"

	storageProbeInterval = 10 * time.Second
)

// pinger проверяет доступность хранилища
type pinger interface {
	Ping(ctx context.Context) error
}

// healthService gRPC сервер со стандартным health сервисом.
// Статус SERVING пока хранилище отвечает на ping.
type healthService struct {
	server  *grpc.Server
	health  *health.Server
	storage pinger
	logger  *zap.Logger
}

func newHealthService(storage pinger, logger *zap.Logger) *healthService {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &healthService{
		server:  server,
		health:  healthServer,
		storage: storage,
		logger:  logger,
	}
}

// watch проверяет хранилище сразу и затем с интервалом до отмены ctx
func (s *healthService) watch(ctx context.Context, interval time.Duration) {
	s.probe(ctx, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx, interval)
		}
	}
}

func (s *healthService) probe(ctx context.Context, timeout time.Duration) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.storage.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("storage ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(serviceName, status)
}

// stop переводит сервисы в NOT_SERVING и останавливает сервер.
// Если активные вызовы не завершились до отмены ctx, сервер останавливается принудительно.
func (s *healthService) stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}
