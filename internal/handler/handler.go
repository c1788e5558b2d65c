package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name URLUsecase
//go:generate mockery --name Pinger

// URLUsecase определяет интерфейс для работы с бизнес-логикой URL
type URLUsecase interface {
	CreateShortURL(ctx context.Context, originalURL string) (model.CreateURLResponse, error)
	ResolveShortCode(ctx context.Context, code string) (string, error)
	GetStats(ctx context.Context, code string) (model.URLStatsResponse, error)
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
	pinger  Pinger
	now     func() time.Time
}

// New создает новый HTTP handler
func New(usecase URLUsecase, logger *zap.Logger, pinger Pinger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		pinger:  pinger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
