package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// Exists сообщает, занят ли короткий код.
// store.ErrNotFound означает свободный код, остальные ошибки хранилища возвращаются вызывающему.
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	_, err := r.underlying.FindByCode(ctx, code)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to look up code %s: %w", code, err)
	}
}
