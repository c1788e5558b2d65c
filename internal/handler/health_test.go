package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/mocks"
)

func TestHealth(t *testing.T) {
	// Arrange
	handler := New(nil, zap.NewNop(), nil)
	fixedNow := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return fixedNow }

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	handler.Health(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2024-06-01T12:00:00Z", body["timestamp"])
}

func TestPing_Success(t *testing.T) {
	mockPinger := mocks.NewMockPinger(t)
	mockPinger.EXPECT().Ping(mock.Anything).Return(nil).Once()

	handler := New(nil, zap.NewNop(), mockPinger)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPing_StorageError(t *testing.T) {
	mockPinger := mocks.NewMockPinger(t)
	mockPinger.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()

	handler := New(nil, zap.NewNop(), mockPinger)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPing_StorageNotConfigured(t *testing.T) {
	handler := New(nil, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
