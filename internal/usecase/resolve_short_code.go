package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
)

// ResolveShortCode возвращает оригинальный URL по короткому коду и засчитывает переход
func (u *URLUsecase) ResolveShortCode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCode
	}

	mapping, err := u.service.ResolveShortCode(ctx, model.Code(code))
	if err != nil {
		return "", u.classifyLookupError(code, err)
	}

	return mapping.OriginalURL.String(), nil
}

// GetStats возвращает запись по коду вместе со счетчиком переходов
func (u *URLUsecase) GetStats(ctx context.Context, code string) (model.URLStatsResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.URLStatsResponse{}, ErrEmptyCode
	}

	mapping, err := u.service.GetStats(ctx, model.Code(code))
	if err != nil {
		return model.URLStatsResponse{}, u.classifyLookupError(code, err)
	}

	response, err := u.buildResponse(mapping)
	if err != nil {
		return model.URLStatsResponse{}, err
	}

	return model.URLStatsResponse{
		CreateURLResponse: response,
		ClickCount:        mapping.ClickCount,
	}, nil
}

// classifyLookupError отделяет отсутствие записи от сбоев хранилища.
// Отсутствие записи - нормальный исход и не логируется как ошибка.
func (u *URLUsecase) classifyLookupError(code string, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		u.logger.Debug("short code not found", zap.String("code", code))
		return fmt.Errorf("%w: %s", ErrURLNotFound, code)
	}

	u.logger.Error("failed to look up short code",
		zap.String("code", code),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
