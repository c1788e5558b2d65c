package app

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
)

// compressionLevel уровень gzip для ответов
const compressionLevel = 5

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.DecompressRequest(logger))
	r.Use(chimiddleware.Compress(compressionLevel, "application/json", "application/problem+json"))

	// Routes
	r.Get("/health", h.Health)
	r.Get("/ping", h.Ping)

	r.Route("/api/urls", func(r chi.Router) {
		r.Post("/", h.CreateURL)
		r.Get("/{shortCode}", h.GetStats)
	})

	r.Get("/{shortCode}", h.Redirect)

	return r
}
