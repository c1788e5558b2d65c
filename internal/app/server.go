package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

// serve запускает HTTP сервер и, если задан адрес, gRPC health сервер.
// При отмене ctx оба сервера останавливаются в пределах ShutdownTimeout.
func (a *App) serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           newRouter(a.handler, a.logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var grpcListener net.Listener
	if a.config.GRPCAddress != "" {
		listener, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC address: %w", err)
		}
		grpcListener = listener
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting HTTP server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	var grpcHealth *healthService
	if grpcListener != nil {
		grpcHealth = newHealthService(a.storage, a.logger)

		g.Go(func() error {
			a.logger.Info("Starting gRPC health server", zap.String("address", grpcListener.Addr().String()))
			if err := grpcHealth.server.Serve(grpcListener); err != nil {
				return fmt.Errorf("grpc server failed: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			grpcHealth.watch(gctx, storageProbeInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if grpcHealth != nil {
			grpcHealth.stop(shutdownCtx)
		}

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
