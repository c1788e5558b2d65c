package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrator управляет миграциями таблицы urls
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator создает новый экземпляр migrator
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// RunUp применяет все миграции вверх
func (m *Migrator) RunUp() error {
	m.logger.Info("Starting database migrations")

	instance, err := m.instance()
	if err != nil {
		return err
	}
	defer m.closeInstance(instance)

	err = instance.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("No migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		m.logger.Info("Migrations applied successfully")
	}

	return nil
}

// Version возвращает текущую версию схемы и признак "грязной" миграции
func (m *Migrator) Version() (uint, bool, error) {
	instance, err := m.instance()
	if err != nil {
		return 0, false, err
	}
	defer m.closeInstance(instance)

	version, dirty, err := instance.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

// instance собирает migrate.Migrate поверх embed источника и отдельного соединения из пула.
// Драйвер владеет только этим соединением, поэтому закрытие экземпляра не закрывает *sql.DB.
func (m *Migrator) instance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	ctx := context.Background()
	conn, err := m.db.Conn(ctx)
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("failed to acquire connection for migrations: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		_ = source.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		_ = source.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return instance, nil
}

// closeInstance возвращает соединение миграций в пул
func (m *Migrator) closeInstance(instance *migrate.Migrate) {
	sourceErr, databaseErr := instance.Close()
	if sourceErr != nil {
		m.logger.Warn("failed to close migration source", zap.Error(sourceErr))
	}
	if databaseErr != nil {
		m.logger.Warn("failed to close migration connection", zap.Error(databaseErr))
	}
}
