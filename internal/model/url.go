package model

import "time"

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// URLMapping представляет сохраненную запись соответствия короткого кода и оригинального URL
type URLMapping struct {
	ID          string    `json:"id"`
	OriginalURL URL       `json:"originalUrl"`
	ShortCode   Code      `json:"shortCode"`
	CreatedAt   time.Time `json:"createdAt"`
	ClickCount  int64     `json:"clickCount"`
}

// CreateURLRequest тело запроса POST /api/urls
type CreateURLRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required,http_url"`
}

// CreateURLResponse представляет ответ с коротким URL
type CreateURLResponse struct {
	OriginalURL  string    `json:"originalUrl"`
	ShortCode    string    `json:"shortCode"`
	ShortenedURL string    `json:"shortenedUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// URLStatsResponse дополняет CreateURLResponse счетчиком переходов
type URLStatsResponse struct {
	CreateURLResponse
	ClickCount int64 `json:"clickCount"`
}

// HealthResponse ответ эндпоинта /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
