package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/shortlink/internal/model"
)

func newTestGenerator() *CodeGenerator {
	return NewCodeGenerator(rand.NewPCG(1, 2))
}

func freeCode(context.Context, model.Code) (bool, error) {
	return false, nil
}

// TestGenerateCode_CodeFormat проверяет формат сгенерированного кода
func TestGenerateCode_CodeFormat(t *testing.T) {
	// Arrange
	generator := NewRandomCodeGenerator()

	// Act & Assert
	for i := 0; i < 200; i++ {
		code := generator.GenerateCode()

		assert.Len(t, code.String(), CodeLength, "Code: %s", code)
		for _, char := range code.String() {
			assert.True(t, strings.ContainsRune(AllowedChars, char),
				"Code %s contains invalid character: %c", code, char)
		}
	}
}

// TestGenerateCode_Deterministic проверяет что одинаковое зерно дает одинаковую последовательность
func TestGenerateCode_Deterministic(t *testing.T) {
	// Arrange
	first := newTestGenerator()
	second := newTestGenerator()

	// Act & Assert
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.GenerateCode(), second.GenerateCode())
	}
}

// TestGenerateCode_CodeUniqueness проверяет что генерируются разные коды
func TestGenerateCode_CodeUniqueness(t *testing.T) {
	// Arrange
	generator := NewRandomCodeGenerator()
	numCodes := 1000
	generated := make(map[model.Code]struct{}, numCodes)

	// Act
	for i := 0; i < numCodes; i++ {
		generated[generator.GenerateCode()] = struct{}{}
	}

	// Assert
	minExpectedUnique := int(float64(numCodes) * 0.99)
	assert.GreaterOrEqual(t, len(generated), minExpectedUnique)
}

// TestGenerateCode_CharacterDistribution проверяет что используются буквы обоих регистров и цифры
func TestGenerateCode_CharacterDistribution(t *testing.T) {
	// Arrange
	generator := newTestGenerator()
	charCount := make(map[rune]int)

	// Act
	for i := 0; i < 2000; i++ {
		for _, char := range generator.GenerateCode().String() {
			charCount[char]++
		}
	}

	// Assert
	assert.Len(t, charCount, len(AllowedChars))
}

// TestGenerateUniqueCode_SuccessAfterRetries проверяет успех после нескольких занятых кодов
func TestGenerateUniqueCode_SuccessAfterRetries(t *testing.T) {
	tests := []struct {
		name          string
		takenAttempts int
	}{
		{name: "First attempt success", takenAttempts: 0},
		{name: "Success on fifth attempt", takenAttempts: 4},
		{name: "Success after many collisions", takenAttempts: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			generator := newTestGenerator()
			var checked []model.Code
			exists := func(_ context.Context, code model.Code) (bool, error) {
				checked = append(checked, code)
				return len(checked) <= tt.takenAttempts, nil
			}

			// Act
			code, err := generator.GenerateUniqueCode(context.Background(), exists)

			// Assert
			require.NoError(t, err)
			assert.Len(t, checked, tt.takenAttempts+1)
			assert.Equal(t, checked[len(checked)-1], code)
		})
	}
}

// TestGenerateUniqueCode_ExistsError проверяет что ошибка проверки прерывает генерацию
func TestGenerateUniqueCode_ExistsError(t *testing.T) {
	// Arrange
	generator := newTestGenerator()
	storeErr := errors.New("connection refused")
	calls := 0
	exists := func(context.Context, model.Code) (bool, error) {
		calls++
		return false, storeErr
	}

	// Act
	code, err := generator.GenerateUniqueCode(context.Background(), exists)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, code)
	assert.Equal(t, 1, calls)
}

// TestGenerateUniqueCode_ContextCanceled проверяет остановку при отмене контекста
func TestGenerateUniqueCode_ContextCanceled(t *testing.T) {
	// Arrange
	generator := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	exists := func(context.Context, model.Code) (bool, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return true, nil
	}

	// Act
	code, err := generator.GenerateUniqueCode(ctx, exists)

	// Assert
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, code)
	assert.Equal(t, 3, calls)
}

// TestGenerateUniqueCode_ConcurrentGeneration проверяет параллельную генерацию
func TestGenerateUniqueCode_ConcurrentGeneration(t *testing.T) {
	// Arrange
	generator := NewRandomCodeGenerator()
	numGoroutines := 50
	results := make(chan model.Code, numGoroutines)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			code, err := generator.GenerateUniqueCode(context.Background(), freeCode)
			if err == nil {
				results <- code
			}
		}()
	}

	wg.Wait()
	close(results)

	// Assert
	count := 0
	for code := range results {
		assert.Len(t, code.String(), CodeLength)
		count++
	}
	assert.Equal(t, numGoroutines, count)
}
