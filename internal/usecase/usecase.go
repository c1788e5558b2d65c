package usecase

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name URLService

// URLService определяет интерфейс для работы с сервисом коротких URL
type URLService interface {
	CreateShortURL(ctx context.Context, originalURL model.URL) (model.URLMapping, bool, error)
	ResolveShortCode(ctx context.Context, code model.Code) (model.URLMapping, error)
	GetStats(ctx context.Context, code model.Code) (model.URLMapping, error)
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	service  URLService
	cfg      *config.Config
	validate *validator.Validate
	logger   *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service URLService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена полей из JSON
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &URLUsecase{
		service:  service,
		cfg:      cfg,
		validate: validate,
		logger:   logger,
	}
}
