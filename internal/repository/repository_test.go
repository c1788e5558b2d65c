package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

func TestRepository_Exists(t *testing.T) {
	tests := []struct {
		name      string
		findErr   error
		expected  bool
		expectErr bool
	}{
		{name: "code taken", expected: true},
		{name: "code free", findErr: fmt.Errorf("code abc: %w", store.ErrNotFound), expected: false},
		{name: "store failure", findErr: assert.AnError, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockStore := mocks.NewMockStore(t)
			mockStore.EXPECT().
				FindByCode(mock.Anything, model.Code("abcDEF")).
				Return(model.URLMapping{}, tt.findErr).
				Once()
			repo := New(mockStore)

			// Act
			exists, err := repo.Exists(context.Background(), "abcDEF")

			// Assert
			if tt.expectErr {
				require.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestRepository_CreateOrGetURL_WrapsConflict(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	mapping := model.URLMapping{OriginalURL: "https://example.com", ShortCode: "abcDEF"}
	mockStore.EXPECT().
		CreateOrGet(mock.Anything, mapping).
		Return(model.URLMapping{}, false, store.ErrCodeConflict).
		Once()
	repo := New(mockStore)

	// Act
	_, created, err := repo.CreateOrGetURL(context.Background(), mapping)

	// Assert
	require.ErrorIs(t, err, store.ErrCodeConflict)
	assert.False(t, created)
}

func TestRepository_Lookups(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	mapping := model.URLMapping{ID: "1", OriginalURL: "https://example.com", ShortCode: "abcDEF", ClickCount: 2}
	mockStore.EXPECT().FindByCode(mock.Anything, model.Code("abcDEF")).Return(mapping, nil).Once()
	mockStore.EXPECT().FindByOriginalURL(mock.Anything, model.URL("https://example.com")).Return(mapping, nil).Once()
	mockStore.EXPECT().IncrementClicks(mock.Anything, model.Code("nope00")).Return(model.URLMapping{}, store.ErrNotFound).Once()
	repo := New(mockStore)
	ctx := context.Background()

	// Act
	byCode, codeErr := repo.GetURLByCode(ctx, "abcDEF")
	byURL, urlErr := repo.GetURLByOriginal(ctx, "https://example.com")
	_, incErr := repo.IncrementClicks(ctx, "nope00")

	// Assert
	require.NoError(t, codeErr)
	require.NoError(t, urlErr)
	assert.Equal(t, mapping, byCode)
	assert.Equal(t, mapping, byURL)
	assert.ErrorIs(t, incErr, store.ErrNotFound)
}

func TestRepository_EnsureIndexesAndPing(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().EnsureIndexes(mock.Anything).Return(nil).Once()
	mockStore.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()
	repo := New(mockStore)

	// Act & Assert
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	assert.ErrorIs(t, repo.Ping(context.Background()), assert.AnError)
}
