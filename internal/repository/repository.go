package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name Store

// Store описывает хранилище записей URL.
// Реализации обязаны обеспечивать уникальность originalUrl и shortCode на своей стороне.
type Store interface {
	FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error)
	FindByOriginalURL(ctx context.Context, url model.URL) (model.URLMapping, error)
	CreateOrGet(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error)
	IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error)
	EnsureIndexes(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := r.underlying.IncrementClicks(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to increment clicks: %w", err)
	}

	return mapping, nil
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	if err := r.underlying.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
