package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/store"
)

const testURL = model.URL("https://example.com/some/long/path")

func newMockedService(t *testing.T) (*URLService, *mocks.MockURLRepository, *mocks.MockGenerator) {
	t.Helper()

	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	service := NewURLServiceWithGenerator(mockRepo, mockGenerator, config.NewDefaultConfig())

	return service, mockRepo, mockGenerator
}

func newMemoryService() (*URLService, *store.Store) {
	memory := store.NewStore()
	repo := repository.New(memory)
	generator := NewCodeGenerator(rand.NewPCG(42, 7))

	return NewURLServiceWithGenerator(repo, generator, config.NewDefaultConfig()), memory
}

// TestCreateShortURL_ExistingURL проверяет что для известного URL возвращается существующая запись
func TestCreateShortURL_ExistingURL(t *testing.T) {
	// Arrange
	service, mockRepo, _ := newMockedService(t)
	existing := model.URLMapping{
		ID:          "id-1",
		OriginalURL: testURL,
		ShortCode:   "Ab3dE9",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ClickCount:  5,
	}

	mockRepo.EXPECT().
		GetURLByOriginal(mock.Anything, testURL).
		Return(existing, nil).
		Once()

	// Act
	mapping, created, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, mapping)
}

// TestCreateShortURL_NewURL проверяет создание новой записи
func TestCreateShortURL_NewURL(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newMockedService(t)
	fixedNow := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)
	service.now = func() time.Time { return fixedNow }

	mockRepo.EXPECT().
		GetURLByOriginal(mock.Anything, testURL).
		Return(model.URLMapping{}, store.ErrNotFound).
		Once()
	mockGenerator.EXPECT().
		GenerateUniqueCode(mock.Anything, mock.Anything).
		Return(model.Code("Xy12Zq"), nil).
		Once()
	mockRepo.EXPECT().
		CreateOrGetURL(mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool {
			return m.ShortCode == "Xy12Zq" &&
				m.OriginalURL == testURL &&
				m.ClickCount == 0 &&
				m.CreatedAt.Equal(fixedNow.Truncate(time.Millisecond))
		})).
		RunAndReturn(func(_ context.Context, m model.URLMapping) (model.URLMapping, bool, error) {
			m.ID = "generated-id"
			return m, true, nil
		}).
		Once()

	// Act
	mapping, created, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "generated-id", mapping.ID)
	assert.Equal(t, model.Code("Xy12Zq"), mapping.ShortCode)
	assert.Equal(t, int64(0), mapping.ClickCount)
}

// TestCreateShortURL_LostRace проверяет что параллельно созданная запись возвращается как есть
func TestCreateShortURL_LostRace(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newMockedService(t)
	winner := model.URLMapping{ID: "winner", OriginalURL: testURL, ShortCode: "Winner"}

	mockRepo.EXPECT().
		GetURLByOriginal(mock.Anything, testURL).
		Return(model.URLMapping{}, store.ErrNotFound).
		Once()
	mockGenerator.EXPECT().
		GenerateUniqueCode(mock.Anything, mock.Anything).
		Return(model.Code("Loser1"), nil).
		Once()
	mockRepo.EXPECT().
		CreateOrGetURL(mock.Anything, mock.Anything).
		Return(winner, false, nil).
		Once()

	// Act
	mapping, created, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner, mapping)
}

// TestCreateShortURL_CodeConflictRetry проверяет повтор генерации при коллизии кода
func TestCreateShortURL_CodeConflictRetry(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newMockedService(t)
	conflict := fmt.Errorf("failed to create or get URL: %w", store.ErrCodeConflict)

	mockRepo.EXPECT().
		GetURLByOriginal(mock.Anything, testURL).
		Return(model.URLMapping{}, store.ErrNotFound).
		Once()
	mockGenerator.EXPECT().
		GenerateUniqueCode(mock.Anything, mock.Anything).
		Return(model.Code("First1"), nil).
		Once()
	mockGenerator.EXPECT().
		GenerateUniqueCode(mock.Anything, mock.Anything).
		Return(model.Code("Second"), nil).
		Once()
	mockRepo.EXPECT().
		CreateOrGetURL(mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool { return m.ShortCode == "First1" })).
		Return(model.URLMapping{}, false, conflict).
		Once()
	mockRepo.EXPECT().
		CreateOrGetURL(mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool { return m.ShortCode == "Second" })).
		RunAndReturn(func(_ context.Context, m model.URLMapping) (model.URLMapping, bool, error) {
			return m, true, nil
		}).
		Once()

	// Act
	mapping, created, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.Code("Second"), mapping.ShortCode)
}

// TestCreateShortURL_MaxRetriesExceeded проверяет исчерпание попыток при постоянных коллизиях
func TestCreateShortURL_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = 3
	service := NewURLServiceWithGenerator(mockRepo, mockGenerator, cfg)

	mockRepo.EXPECT().
		GetURLByOriginal(mock.Anything, testURL).
		Return(model.URLMapping{}, store.ErrNotFound).
		Once()
	mockGenerator.EXPECT().
		GenerateUniqueCode(mock.Anything, mock.Anything).
		Return(model.Code("Always"), nil).
		Times(3)
	mockRepo.EXPECT().
		CreateOrGetURL(mock.Anything, mock.Anything).
		Return(model.URLMapping{}, false, store.ErrCodeConflict).
		Times(3)

	// Act
	_, _, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

// TestCreateShortURL_Errors проверяет проброс ошибок хранилища и генератора
func TestCreateShortURL_Errors(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(repo *mocks.MockURLRepository, generator *mocks.MockGenerator)
	}{
		{
			name: "lookup failure",
			setup: func(repo *mocks.MockURLRepository, _ *mocks.MockGenerator) {
				repo.EXPECT().GetURLByOriginal(mock.Anything, testURL).Return(model.URLMapping{}, storeErr).Once()
			},
		},
		{
			name: "existence check failure",
			setup: func(repo *mocks.MockURLRepository, generator *mocks.MockGenerator) {
				repo.EXPECT().GetURLByOriginal(mock.Anything, testURL).Return(model.URLMapping{}, store.ErrNotFound).Once()
				generator.EXPECT().GenerateUniqueCode(mock.Anything, mock.Anything).Return(model.Code(""), storeErr).Once()
			},
		},
		{
			name: "insert failure",
			setup: func(repo *mocks.MockURLRepository, generator *mocks.MockGenerator) {
				repo.EXPECT().GetURLByOriginal(mock.Anything, testURL).Return(model.URLMapping{}, store.ErrNotFound).Once()
				generator.EXPECT().GenerateUniqueCode(mock.Anything, mock.Anything).Return(model.Code("abcDEF"), nil).Once()
				repo.EXPECT().CreateOrGetURL(mock.Anything, mock.Anything).Return(model.URLMapping{}, false, storeErr).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, mockRepo, mockGenerator := newMockedService(t)
			tt.setup(mockRepo, mockGenerator)

			// Act
			_, _, err := service.CreateShortURL(context.Background(), testURL)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, storeErr)
		})
	}
}

// TestResolveShortCode проверяет разрешение кода и классификацию ошибок
func TestResolveShortCode(t *testing.T) {
	storeErr := errors.New("timeout")
	resolved := model.URLMapping{OriginalURL: testURL, ShortCode: "Ab3dE9", ClickCount: 1}

	tests := []struct {
		name        string
		returnValue model.URLMapping
		returnErr   error
		expectedErr error
	}{
		{name: "found", returnValue: resolved},
		{name: "not found", returnErr: fmt.Errorf("failed to increment clicks: %w", store.ErrNotFound), expectedErr: ErrNotFound},
		{name: "store failure", returnErr: storeErr, expectedErr: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, mockRepo, _ := newMockedService(t)
			mockRepo.EXPECT().
				IncrementClicks(mock.Anything, model.Code("Ab3dE9")).
				Return(tt.returnValue, tt.returnErr).
				Once()

			// Act
			mapping, err := service.ResolveShortCode(context.Background(), "Ab3dE9")

			// Assert
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, resolved, mapping)
		})
	}
}

// TestGetStats_NotFound проверяет что статистика не найденного кода дает ErrNotFound
func TestGetStats_NotFound(t *testing.T) {
	// Arrange
	service, mockRepo, _ := newMockedService(t)
	mockRepo.EXPECT().
		GetURLByCode(mock.Anything, model.Code("nope00")).
		Return(model.URLMapping{}, store.ErrNotFound).
		Once()

	// Act
	_, err := service.GetStats(context.Background(), "nope00")

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestEnsureIndexes проверяет проброс ошибки создания индексов
func TestEnsureIndexes(t *testing.T) {
	// Arrange
	service, mockRepo, _ := newMockedService(t)
	mockRepo.EXPECT().EnsureIndexes(mock.Anything).Return(assert.AnError).Once()

	// Act
	err := service.EnsureIndexes(context.Background())

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
}

// TestURLService_Idempotence проверяет что повторное создание возвращает ту же запись
func TestURLService_Idempotence(t *testing.T) {
	// Arrange
	service, memory := newMemoryService()
	ctx := context.Background()

	// Act
	first, firstCreated, err := service.CreateShortURL(ctx, testURL)
	require.NoError(t, err)
	second, secondCreated, err := service.CreateShortURL(ctx, testURL)
	require.NoError(t, err)

	// Assert
	assert.True(t, firstCreated)
	assert.False(t, secondCreated)
	assert.Equal(t, first.ShortCode, second.ShortCode)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.Equal(t, 1, memory.Len())
}

// TestURLService_ClickCounting проверяет что счетчик равен числу разрешений
func TestURLService_ClickCounting(t *testing.T) {
	// Arrange
	service, _ := newMemoryService()
	ctx := context.Background()
	created, _, err := service.CreateShortURL(ctx, testURL)
	require.NoError(t, err)

	// Act
	var last model.URLMapping
	for i := 0; i < 5; i++ {
		last, err = service.ResolveShortCode(ctx, created.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, testURL, last.OriginalURL)
	}

	// Assert
	assert.Equal(t, int64(5), last.ClickCount)

	stats, err := service.GetStats(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.ClickCount)
}

// TestURLService_UnknownCode проверяет что неизвестный код не изменяет хранилище
func TestURLService_UnknownCode(t *testing.T) {
	// Arrange
	service, memory := newMemoryService()
	ctx := context.Background()
	created, _, err := service.CreateShortURL(ctx, testURL)
	require.NoError(t, err)

	// Act
	_, err = service.ResolveShortCode(ctx, "zzzzzz")

	// Assert
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, memory.Len())

	stats, err := service.GetStats(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.ClickCount)
}

// TestURLService_AvoidsTakenCodes проверяет что сгенерированный код не совпадает с занятыми
func TestURLService_AvoidsTakenCodes(t *testing.T) {
	// Arrange
	memory := store.NewStore()
	seeded := NewCodeGenerator(rand.NewPCG(42, 7))
	var taken []model.URLMapping
	for i := 0; i < 3; i++ {
		taken = append(taken, model.URLMapping{
			ID:          fmt.Sprintf("seed-%d", i),
			OriginalURL: model.URL(fmt.Sprintf("https://seed.example.com/%d", i)),
			ShortCode:   seeded.GenerateCode(),
		})
	}
	memory.InitializeWith(taken)

	// Генератор с тем же зерном сначала выдаст уже занятые коды
	service := NewURLServiceWithGenerator(repository.New(memory), NewCodeGenerator(rand.NewPCG(42, 7)), config.NewDefaultConfig())

	// Act
	created, _, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	for _, m := range taken {
		assert.NotEqual(t, m.ShortCode, created.ShortCode)
	}
}

// TestURLService_ConcurrentCreate проверяет что параллельные запросы на один URL дают одну запись
func TestURLService_ConcurrentCreate(t *testing.T) {
	// Arrange
	service, memory := newMemoryService()
	numGoroutines := 20
	codes := make(chan model.Code, numGoroutines)
	errs := make(chan error, numGoroutines)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			mapping, _, err := service.CreateShortURL(context.Background(), testURL)
			errs <- err
			codes <- mapping.ShortCode
		}()
	}
	wg.Wait()
	close(codes)
	close(errs)

	// Assert
	for err := range errs {
		require.NoError(t, err)
	}

	unique := make(map[model.Code]struct{})
	for code := range codes {
		unique[code] = struct{}{}
	}
	assert.Len(t, unique, 1)
	assert.Equal(t, 1, memory.Len())
}
