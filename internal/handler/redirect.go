package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avc-dev/shortlink/internal/usecase"
)

// Redirect обрабатывает GET /{shortCode}: 302 на оригинальный URL с учетом перехода
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortCode")

	originalURL, err := h.usecase.ResolveShortCode(req.Context(), code)
	if err != nil {
		h.writeLookupError(w, err, "Error retrieving URL: ")
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}

// GetStats обрабатывает GET /api/urls/{shortCode} без изменения счетчика
func (h *Handler) GetStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortCode")

	stats, err := h.usecase.GetStats(req.Context(), code)
	if err != nil {
		h.writeLookupError(w, err, "Error retrieving URL stats: ")
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error, internalPrefix string) {
	switch {
	case errors.Is(err, usecase.ErrEmptyCode):
		h.writeProblem(w, http.StatusBadRequest, "Short code is required")
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeProblem(w, http.StatusNotFound, "Short URL not found")
	default:
		h.writeProblem(w, http.StatusInternalServerError, internalPrefix+err.Error())
	}
}
