package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "shortlink:"

// createScript атомарно проверяет оба уникальных ключа и создает запись.
// Возвращает {1, code} при создании, {0, code} если URL уже сохранен, {-1, ""} при занятом коде.
var createScript = redis.NewScript(`
local existing = redis.call('GET', KEYS[1])
if existing then
	return {0, existing}
end
if redis.call('EXISTS', KEYS[2]) == 1 then
	return {-1, ''}
end
redis.call('HSET', KEYS[2], 'id', ARGV[1], 'originalUrl', ARGV[2], 'shortCode', ARGV[3], 'createdAt', ARGV[4], 'clickCount', ARGV[5])
redis.call('SET', KEYS[1], ARGV[3])
return {1, ARGV[3]}
`)

// incrementScript увеличивает clickCount только у существующей записи
var incrementScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
redis.call('HINCRBY', KEYS[1], 'clickCount', 1)
return redis.call('HGETALL', KEYS[1])
`)

// RedisStore хранит запись как hash shortlink:code:<code>,
// а ключ shortlink:url:<sha256(url)> служит индексом по оригинальному URL.
type RedisStore struct {
	client *redis.Client
}

// ConnectRedis создает клиента и проверяет соединение
func ConnectRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisStore(client), nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	fields, err := rs.client.HGetAll(ctx, codeKey(code)).Result()
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to read from redis: %w", err)
	}

	if len(fields) == 0 {
		return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return parseMapping(fields)
}

func (rs *RedisStore) FindByOriginalURL(ctx context.Context, url model.URL) (model.URLMapping, error) {
	code, err := rs.client.Get(ctx, urlKey(url)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.URLMapping{}, fmt.Errorf("url %s: %w", url, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to read from redis: %w", err)
	}

	return rs.FindByCode(ctx, model.Code(code))
}

func (rs *RedisStore) CreateOrGet(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	if mapping.ID == "" {
		mapping.ID = uuid.NewString()
	}

	keys := []string{urlKey(mapping.OriginalURL), codeKey(mapping.ShortCode)}
	result, err := createScript.Run(ctx, rs.client, keys,
		mapping.ID,
		mapping.OriginalURL.String(),
		mapping.ShortCode.String(),
		mapping.CreatedAt.UTC().Format(time.RFC3339Nano),
		mapping.ClickCount,
	).Slice()
	if err != nil {
		return model.URLMapping{}, false, fmt.Errorf("failed to run create script: %w", err)
	}

	if len(result) != 2 {
		return model.URLMapping{}, false, fmt.Errorf("unexpected create script result: %v", result)
	}

	status, _ := result[0].(int64)
	code, _ := result[1].(string)

	switch status {
	case 1:
		return mapping, true, nil
	case 0:
		existing, err := rs.FindByCode(ctx, model.Code(code))
		if err != nil {
			return model.URLMapping{}, false, err
		}
		return existing, false, nil
	default:
		return model.URLMapping{}, false, fmt.Errorf("code %s: %w", mapping.ShortCode, ErrCodeConflict)
	}
}

func (rs *RedisStore) IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error) {
	result, err := incrementScript.Run(ctx, rs.client, []string{codeKey(code)}).StringSlice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to run increment script: %w", err)
	}

	fields := make(map[string]string, len(result)/2)
	for i := 0; i+1 < len(result); i += 2 {
		fields[result[i]] = result[i+1]
	}

	return parseMapping(fields)
}

// EnsureIndexes ничего не создает: индекс по URL поддерживается createScript
func (rs *RedisStore) EnsureIndexes(_ context.Context) error {
	return nil
}

func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func codeKey(code model.Code) string {
	return redisKeyPrefix + "code:" + code.String()
}

func urlKey(url model.URL) string {
	sum := sha256.Sum256([]byte(url))
	return redisKeyPrefix + "url:" + hex.EncodeToString(sum[:])
}

func parseMapping(fields map[string]string) (model.URLMapping, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("invalid createdAt: %w", err)
	}

	clickCount, err := strconv.ParseInt(fields["clickCount"], 10, 64)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("invalid clickCount: %w", err)
	}

	return model.URLMapping{
		ID:          fields["id"],
		OriginalURL: model.URL(fields["originalUrl"]),
		ShortCode:   model.Code(fields["shortCode"]),
		CreatedAt:   createdAt,
		ClickCount:  clickCount,
	}, nil
}
