package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r *Repository) GetURLByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByCode(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get URL by code: %w", err)
	}

	return mapping, nil
}

func (r *Repository) GetURLByOriginal(ctx context.Context, url model.URL) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByOriginalURL(ctx, url)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get URL by original: %w", err)
	}

	return mapping, nil
}
