package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
)

type dependencies struct {
	storage repository.Store
	handler *handler.Handler
}

// initDependencies инициализирует все зависимости приложения.
// Индексы хранилища создаются до того, как сервер начнет принимать запросы.
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	urlService := service.NewURLService(repo, cfg)

	if err := urlService.EnsureIndexes(ctx); err != nil {
		_ = storage.Close()
		return nil, err
	}
	logger.Info("Storage indexes ensured")

	urlUsecase := usecase.NewURLUsecase(urlService, cfg, logger)
	h := handler.New(urlUsecase, logger, repo)

	return &dependencies{
		storage: storage,
		handler: h,
	}, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	switch cfg.Storage() {
	case config.StorePostgres:
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database), nil

	case config.StoreMongo:
		mongoStore, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB storage", zap.String("database", cfg.MongoDatabase))
		return mongoStore, nil

	case config.StoreRedis:
		redisStore, err := store.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis storage", zap.String("address", cfg.RedisAddr))
		return redisStore, nil

	case config.StoreFile:
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil

	default:
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil
	}
}
