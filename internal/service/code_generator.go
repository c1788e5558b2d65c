package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// CodeGenerator реализует генератор кодов с использованием вероятностного подхода.
// Источник случайности принадлежит генератору и не является криптостойким.
type CodeGenerator struct {
	random *rand.Rand
	mu     sync.Mutex
}

// NewCodeGenerator создает генератор поверх переданного источника
func NewCodeGenerator(src rand.Source) *CodeGenerator {
	return &CodeGenerator{
		random: rand.New(src),
	}
}

// NewRandomCodeGenerator создает генератор на ChaCha8 с зерном из crypto/rand
func NewRandomCodeGenerator() *CodeGenerator {
	var seed [32]byte
	// crypto/rand.Read не возвращает ошибок начиная с Go 1.24
	_, _ = crand.Read(seed[:])

	return NewCodeGenerator(rand.NewChaCha8(seed))
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]byte, CodeLength)

	g.mu.Lock()
	for i := range result {
		result[i] = AllowedChars[g.random.IntN(len(AllowedChars))]
	}
	g.mu.Unlock()

	return model.Code(result)
}

// GenerateUniqueCode генерирует коды, пока exists не сообщит, что код свободен.
// exists возвращает true если код уже занят.
// Число попыток не ограничено: цикл прерывают только ошибка хранилища или отмена ctx.
func (g *CodeGenerator) GenerateUniqueCode(ctx context.Context, exists func(ctx context.Context, code model.Code) (bool, error)) (model.Code, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code := g.GenerateCode()

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code %s: %w", code, err)
		}

		if !taken {
			return code, nil
		}
	}
}
