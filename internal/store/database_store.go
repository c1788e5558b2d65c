package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// uniqueViolation код ошибки PostgreSQL unique_violation
	uniqueViolation = "23505"

	shortCodeIndexName   = "idx_urls_short_code"
	originalURLIndexName = "idx_urls_original_url"

	selectColumns = `id, original_url, short_code, created_at, click_count`
)

// DatabaseStore реализует хранилище на PostgreSQL.
// Таблица urls создается миграциями, уникальные индексы - в EnsureIndexes.
type DatabaseStore struct {
	database db.Database
	pool     *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	return &DatabaseStore{
		database: database,
		pool:     database.Pool(),
	}
}

func (ds *DatabaseStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM urls WHERE short_code = $1`

	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, code.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}

func (ds *DatabaseStore) FindByOriginalURL(ctx context.Context, url model.URL) (model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM urls WHERE original_url = $1`

	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, url.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("url %s: %w", url, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}

// CreateOrGet вставляет запись, если URL еще не сохранен.
// Конфликт по original_url разрешается через ON CONFLICT, конфликт по short_code возвращает ErrCodeConflict.
func (ds *DatabaseStore) CreateOrGet(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	if mapping.ID == "" {
		mapping.ID = uuid.NewString()
	}

	query := `
		INSERT INTO urls (id, original_url, short_code, created_at, click_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (original_url) DO NOTHING
		RETURNING ` + selectColumns

	stored, err := scanMapping(ds.pool.QueryRow(ctx, query,
		mapping.ID,
		mapping.OriginalURL.String(),
		mapping.ShortCode.String(),
		mapping.CreatedAt,
		mapping.ClickCount,
	))
	if err == nil {
		return stored, true, nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		// URL уже сохранен другим запросом
		existing, err := ds.FindByOriginalURL(ctx, mapping.OriginalURL)
		if err != nil {
			return model.URLMapping{}, false, err
		}
		return existing, false, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.URLMapping{}, false, fmt.Errorf("code %s: %w", mapping.ShortCode, ErrCodeConflict)
	}

	return model.URLMapping{}, false, fmt.Errorf("failed to insert into database: %w", err)
}

// IncrementClicks атомарно увеличивает click_count и возвращает обновленную строку
func (ds *DatabaseStore) IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error) {
	query := `
		UPDATE urls
		SET click_count = click_count + 1
		WHERE short_code = $1
		RETURNING ` + selectColumns

	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, code.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to increment click count: %w", err)
	}

	return mapping, nil
}

// EnsureIndexes создает уникальные индексы по short_code и original_url
func (ds *DatabaseStore) EnsureIndexes(ctx context.Context) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + shortCodeIndexName + ` ON urls (short_code ASC)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + originalURLIndexName + ` ON urls (original_url ASC)`,
	}

	for _, stmt := range statements {
		if _, err := ds.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.database.Ping(ctx)
}

func (ds *DatabaseStore) Close() error {
	ds.database.Close()
	return nil
}

func scanMapping(row pgx.Row) (model.URLMapping, error) {
	var (
		mapping     model.URLMapping
		originalURL string
		shortCode   string
	)

	err := row.Scan(&mapping.ID, &originalURL, &shortCode, &mapping.CreatedAt, &mapping.ClickCount)
	if err != nil {
		return model.URLMapping{}, err
	}

	mapping.OriginalURL = model.URL(originalURL)
	mapping.ShortCode = model.Code(shortCode)
	mapping.CreatedAt = mapping.CreatedAt.UTC()

	return mapping, nil
}
