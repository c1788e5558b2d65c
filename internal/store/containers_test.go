package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/migrations"
)

// skipIntegration пропускает тест в режиме -short и без docker
func skipIntegration(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)
}

// startPostgres запускает контейнер PostgreSQL и применяет миграции
func startPostgres(t *testing.T) *DatabaseStore {
	t.Helper()
	skipIntegration(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("urlshortener"),
		tcpostgres.WithUsername("shortener"),
		tcpostgres.WithPassword("shortener"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := db.NewConfig(dsn).Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, migrations.NewMigrator(database.DB(), zap.NewNop()).RunUp())

	s := NewDatabaseStore(database)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// startMongo запускает контейнер MongoDB
func startMongo(t *testing.T) *MongoStore {
	t.Helper()
	skipIntegration(t)

	ctx := context.Background()
	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := ConnectMongo(ctx, uri, "urlshortener_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// startRedis запускает контейнер Redis
func startRedis(t *testing.T) *RedisStore {
	t.Helper()
	skipIntegration(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	s, err := ConnectRedis(ctx, endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestDatabaseStore_Contract(t *testing.T) {
	s := startPostgres(t)

	runStoreContract(t, func(t *testing.T) urlStore {
		ctx := context.Background()
		_, err := s.pool.Exec(ctx, "TRUNCATE TABLE urls")
		require.NoError(t, err)
		require.NoError(t, s.EnsureIndexes(ctx))
		return s
	})
}

func TestMongoStore_Contract(t *testing.T) {
	s := startMongo(t)

	runStoreContract(t, func(t *testing.T) urlStore {
		ctx := context.Background()
		_, err := s.collection.DeleteMany(ctx, bson.D{})
		require.NoError(t, err)
		require.NoError(t, s.EnsureIndexes(ctx))
		return s
	})
}

// TestMongoStore_EnsureIndexesOverLegacyIndexes проверяет коллекцию с неуникальными индексами
// shortCode_1 и originalUrl_1, созданными прежней версией сервиса
func TestMongoStore_EnsureIndexesOverLegacyIndexes(t *testing.T) {
	// Arrange
	s := startMongo(t)
	ctx := context.Background()

	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: shortCodeField, Value: 1}}},
		{Keys: bson.D{{Key: originalURLField, Value: 1}}},
	})
	require.NoError(t, err)

	existing, _, err := s.CreateOrGet(ctx, newMapping("Legacy", "https://example.com/legacy"))
	require.NoError(t, err)

	// Act
	require.NoError(t, s.EnsureIndexes(ctx))
	require.NoError(t, s.EnsureIndexes(ctx))

	// Assert
	specs, err := s.collection.Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	for _, field := range []string{shortCodeField, originalURLField} {
		spec := findSingleFieldIndex(specs, field)
		require.NotNil(t, spec, field)
		require.NotNil(t, spec.Unique, field)
		require.True(t, *spec.Unique, field)
	}

	again, created, err := s.CreateOrGet(ctx, newMapping("Other1", "https://example.com/legacy"))
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing.ID, again.ID)

	_, _, err = s.CreateOrGet(ctx, newMapping("Legacy", "https://example.com/another"))
	require.ErrorIs(t, err, ErrCodeConflict)
}

func TestRedisStore_Contract(t *testing.T) {
	s := startRedis(t)

	runStoreContract(t, func(t *testing.T) urlStore {
		require.NoError(t, s.client.FlushDB(context.Background()).Err())
		return s
	})
}

// TestRedisStore_Layout проверяет раскладку ключей в Redis
func TestRedisStore_Layout(t *testing.T) {
	s := startRedis(t)
	ctx := context.Background()

	created, _, err := s.CreateOrGet(ctx, newMapping("Layout", "https://example.com/layout"))
	require.NoError(t, err)

	fields, err := s.client.HGetAll(ctx, codeKey("Layout")).Result()
	require.NoError(t, err)
	require.Equal(t, created.ID, fields["id"])
	require.Equal(t, "https://example.com/layout", fields["originalUrl"])
	require.Equal(t, "0", fields["clickCount"])

	code, err := s.client.Get(ctx, urlKey("https://example.com/layout")).Result()
	require.NoError(t, err)
	require.Equal(t, "Layout", code)

	_, err = s.client.Get(ctx, urlKey("https://example.com/other")).Result()
	require.ErrorIs(t, err, redis.Nil)
}

// TestMigrator_Version проверяет что миграции применяются один раз
func TestMigrator_Version(t *testing.T) {
	s := startPostgres(t)
	migrator := migrations.NewMigrator(s.database.DB(), zap.NewNop())

	require.NoError(t, migrator.RunUp())

	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	require.False(t, dirty)
}

// TestMigrator_ReleasesConnection проверяет что после миграций соединение возвращено в пул, а *sql.DB открыт
func TestMigrator_ReleasesConnection(t *testing.T) {
	s := startPostgres(t)
	sqlDB := s.database.DB()
	migrator := migrations.NewMigrator(sqlDB, zap.NewNop())

	for range 3 {
		require.NoError(t, migrator.RunUp())
		_, _, err := migrator.Version()
		require.NoError(t, err)
	}

	require.Zero(t, sqlDB.Stats().InUse)
	require.NoError(t, sqlDB.PingContext(context.Background()))
}
