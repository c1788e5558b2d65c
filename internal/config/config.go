package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultBaseURL       = URLPrefix("https://localhost:7001")
	DefaultMongoDatabase = "urlshortener"
)

// StoreKind тип хранилища, выбранный по конфигурации
type StoreKind string

const (
	StorePostgres StoreKind = "postgres"
	StoreMongo    StoreKind = "mongo"
	StoreRedis    StoreKind = "redis"
	StoreFile     StoreKind = "file"
	StoreMemory   StoreKind = "memory"
)

// RetryConfig настройки повторов при коллизии короткого кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Config содержит всю конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	MongoURI        string         `env:"MONGODB_URI"`
	MongoDatabase   string         `env:"MONGODB_DATABASE"`
	RedisAddr       string         `env:"REDIS_ADDR"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	LogLevel        string         `env:"LOG_LEVEL"`
	LogFile         string         `env:"LOG_FILE"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig    `envPrefix:"RETRY_"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         DefaultBaseURL,
		MongoDatabase:   DefaultMongoDatabase,
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем переменные окружения, затем флаги
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs то же, что Load, но с явным списком аргументов командной строки
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Значения флагов по умолчанию уже учитывают окружение, поэтому явно заданный флаг побеждает
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "MongoDB connection URI")
	fs.StringVar(&cfg.MongoDatabase, "mdb", cfg.MongoDatabase, "MongoDB database name")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "file storage path")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC health server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "lf", cfg.LogFile, "log file with rotation, stdout only when empty")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}

	return nil
}

// Storage определяет хранилище: PostgreSQL, MongoDB, Redis, файл, память - в таком порядке
func (c *Config) Storage() StoreKind {
	switch {
	case c.DatabaseDSN != "":
		return StorePostgres
	case c.MongoURI != "":
		return StoreMongo
	case c.RedisAddr != "":
		return StoreRedis
	case c.FileStoragePath != "":
		return StoreFile
	default:
		return StoreMemory
	}
}
