package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// Health обрабатывает GET /health и не обращается к хранилищу
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
	})
}

// Ping обрабатывает GET /ping: 200 если хранилище отвечает
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.pinger == nil {
		h.logger.Error("storage is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.pinger.Ping(req.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
