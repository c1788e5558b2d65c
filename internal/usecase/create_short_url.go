package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// CreateShortURL создает короткий URL для строки оригинального URL или возвращает уже существующий.
// Выполняет очистку и валидацию URL, затем собирает ответ с полным коротким адресом.
func (u *URLUsecase) CreateShortURL(ctx context.Context, urlString string) (model.CreateURLResponse, error) {
	urlString = strings.TrimSpace(urlString)

	if urlString == "" {
		return model.CreateURLResponse{}, ErrEmptyURL
	}

	if err := u.validateURL(urlString); err != nil {
		return model.CreateURLResponse{}, err
	}

	originalURL := model.URL(urlString)
	mapping, created, err := u.service.CreateShortURL(ctx, originalURL)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", originalURL.String()),
			zap.Error(err),
		)
		return model.CreateURLResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if created {
		u.logger.Info("short URL created",
			zap.String("code", mapping.ShortCode.String()),
			zap.String("original_url", originalURL.String()),
		)
	}

	return u.buildResponse(mapping)
}

func (u *URLUsecase) validateURL(urlString string) error {
	err := u.validate.Struct(model.CreateURLRequest{OriginalURL: urlString})
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidURL, strings.Join(messages, "; "))
}

// buildResponse собирает ответ: shortenedUrl = BASE_URL + "/" + код
func (u *URLUsecase) buildResponse(mapping model.URLMapping) (model.CreateURLResponse, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), mapping.ShortCode.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", mapping.ShortCode.String()),
			zap.Error(err),
		)
		return model.CreateURLResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return model.CreateURLResponse{
		OriginalURL:  mapping.OriginalURL.String(),
		ShortCode:    mapping.ShortCode.String(),
		ShortenedURL: shortURL,
		CreatedAt:    mapping.CreatedAt,
	}, nil
}
