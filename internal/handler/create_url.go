package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
)

// maxRequestBody ограничивает размер тела запроса на создание
const maxRequestBody = 1 << 20

// CreateURL обрабатывает POST /api/urls
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	var request model.CreateURLRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxRequestBody)).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeProblem(w, http.StatusBadRequest, "Invalid JSON in request body: "+err.Error())
		return
	}

	response, err := h.usecase.CreateShortURL(req.Context(), request.OriginalURL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
			h.writeProblem(w, http.StatusBadRequest, err.Error())
		default:
			h.writeProblem(w, http.StatusInternalServerError, "Error creating shortened URL: "+err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
