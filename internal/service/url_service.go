package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// URLService содержит бизнес-логику для работы с короткими URL
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	maxAttempts   int
	now           func() time.Time
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, cfg *config.Config) *URLService {
	return NewURLServiceWithGenerator(repo, NewRandomCodeGenerator(), cfg)
}

// NewURLServiceWithGenerator создает URLService с заданным генератором кодов
func NewURLServiceWithGenerator(repo URLRepository, generator Generator, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: generator,
		maxAttempts:   cfg.Retry.MaxAttempts,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CreateShortURL возвращает запись для originalURL, создавая ее при необходимости.
// Повторный вызов с тем же URL возвращает ту же запись и created=false.
func (s *URLService) CreateShortURL(ctx context.Context, originalURL model.URL) (model.URLMapping, bool, error) {
	existing, err := s.repo.GetURLByOriginal(ctx, originalURL)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.URLMapping{}, false, fmt.Errorf("failed to look up URL: %w", err)
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, err := s.codeGenerator.GenerateUniqueCode(ctx, s.repo.Exists)
		if err != nil {
			return model.URLMapping{}, false, fmt.Errorf("failed to generate unique code: %w", err)
		}

		mapping := model.URLMapping{
			OriginalURL: originalURL,
			ShortCode:   code,
			// Точность до миллисекунд одинакова для всех хранилищ
			CreatedAt:  s.now().Truncate(time.Millisecond),
			ClickCount: 0,
		}

		saved, created, err := s.repo.CreateOrGetURL(ctx, mapping)
		switch {
		case err == nil:
			return saved, created, nil
		case errors.Is(err, store.ErrCodeConflict):
			// Код заняли между проверкой и записью, пробуем другой
			continue
		default:
			return model.URLMapping{}, false, fmt.Errorf("failed to create or get URL: %w", err)
		}
	}

	return model.URLMapping{}, false, fmt.Errorf("failed to store URL after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

// ResolveShortCode возвращает запись по коду и атомарно увеличивает счетчик переходов
func (s *URLService) ResolveShortCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := s.repo.IncrementClicks(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.URLMapping{}, ErrNotFound
		}
		return model.URLMapping{}, fmt.Errorf("failed to resolve code %s: %w", code, err)
	}

	return mapping, nil
}

// GetStats возвращает запись по коду без изменения счетчика
func (s *URLService) GetStats(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := s.repo.GetURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.URLMapping{}, ErrNotFound
		}
		return model.URLMapping{}, fmt.Errorf("failed to get stats for code %s: %w", code, err)
	}

	return mapping, nil
}

// EnsureIndexes создает уникальные индексы хранилища
func (s *URLService) EnsureIndexes(ctx context.Context) error {
	if err := s.repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}
	return nil
}
