package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/repository"
)

// startupTimeout ограничивает подключение к хранилищу и создание индексов
const startupTimeout = 30 * time.Second

// App представляет приложение URL shortener
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	storage repository.Store
}

// New создает приложение: подключает хранилище, создает индексы и собирает зависимости
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	deps, err := initDependencies(startupCtx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: deps.handler,
		storage: deps.storage,
	}, nil
}

// Run запускает приложение и блокируется до сигнала завершения
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", zap.Error(err))
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	return app.serve(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.storage == nil {
		return
	}

	if err := a.storage.Close(); err != nil {
		a.logger.Error("Failed to close storage", zap.Error(err))
		return
	}
	a.logger.Info("Storage closed")
}
