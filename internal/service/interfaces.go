package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name URLRepository
//go:generate mockery --name Generator

// URLRepository определяет методы для работы с хранилищем URL
type URLRepository interface {
	GetURLByCode(ctx context.Context, code model.Code) (model.URLMapping, error)
	GetURLByOriginal(ctx context.Context, url model.URL) (model.URLMapping, error)
	// Exists возвращает true если код уже занят
	Exists(ctx context.Context, code model.Code) (bool, error)
	// CreateOrGetURL сохраняет запись или возвращает существующую для того же URL
	// Возвращает ошибку store.ErrCodeConflict если код занят
	CreateOrGetURL(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error)
	IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error)
	EnsureIndexes(ctx context.Context) error
}

// Generator выдает код, свободный на момент проверки
type Generator interface {
	GenerateUniqueCode(ctx context.Context, exists func(ctx context.Context, code model.Code) (bool, error)) (model.Code, error)
}
