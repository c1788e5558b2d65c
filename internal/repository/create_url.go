package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// CreateOrGetURL сохраняет запись или возвращает уже существующую для того же URL.
// Ошибка store.ErrCodeConflict пробрасывается обернутой, чтобы вызывающий мог повторить генерацию.
func (r *Repository) CreateOrGetURL(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	stored, created, err := r.underlying.CreateOrGet(ctx, mapping)
	if err != nil {
		return model.URLMapping{}, false, fmt.Errorf("failed to create or get URL: %w", err)
	}

	return stored, created, nil
}
