package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// applicationName видно в pg_stat_activity
const applicationName = "shortlink"

// ErrEmptyDSN возвращается, если строка подключения не задана
var ErrEmptyDSN = errors.New("database DSN is required")

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	// MigrationConns ограничивает *sql.DB, который используется только миграциями
	MigrationConns int
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		MigrationConns:    2,
	}
}

// poolConfig разбирает DSN и применяет настройки пула
func (c *Config) poolConfig() (*pgxpool.Config, error) {
	if c.DSN == "" {
		return nil, ErrEmptyDSN
	}

	config, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = c.MaxConns
	config.MinConns = c.MinConns
	config.MaxConnLifetime = c.MaxConnLifetime
	config.MaxConnIdleTime = c.MaxConnIdleTime
	config.HealthCheckPeriod = c.HealthCheckPeriod

	if _, ok := config.ConnConfig.RuntimeParams["application_name"]; !ok {
		config.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	return config, nil
}

// Connect создает пул pgx и *sql.DB для миграций с одними и теми же параметрами подключения
func (c *Config) Connect(ctx context.Context) (Database, error) {
	config, err := c.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB := stdlib.OpenDB(*config.ConnConfig.Copy())
	sqlDB.SetMaxOpenConns(c.MigrationConns)
	sqlDB.SetConnMaxLifetime(c.MaxConnLifetime)

	return NewDBAdapter(pool, sqlDB), nil
}

//go:generate mockery --name Database

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// Pool возвращает пул pgx для запросов хранилища
	Pool() *pgxpool.Pool
	// DB возвращает *sql.DB для миграций
	DB() *sql.DB
}

// DBAdapter объединяет пул pgx и *sql.DB поверх одной базы
type DBAdapter struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		pool:  pool,
		sqlDB: sqlDB,
	}
}

func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Close закрывает пул и *sql.DB
func (d *DBAdapter) Close() {
	d.pool.Close()
	if d.sqlDB != nil {
		_ = d.sqlDB.Close()
	}
}

func (d *DBAdapter) Pool() *pgxpool.Pool {
	return d.pool
}

func (d *DBAdapter) DB() *sql.DB {
	return d.sqlDB
}
