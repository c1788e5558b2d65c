package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("key not found")
	// ErrCodeConflict возвращается когда короткий код уже занят другой записью
	ErrCodeConflict = errors.New("short code already exists")
)

// Store хранит записи в памяти процесса.
// Все операции выполняются под одной блокировкой, поэтому CreateOrGet атомарна.
type Store struct {
	byCode map[model.Code]model.URLMapping
	byURL  map[model.URL]model.Code
	mutex  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		byCode: make(map[model.Code]model.URLMapping),
		byURL:  make(map[model.URL]model.Code),
	}
}

func (s *Store) FindByCode(_ context.Context, code model.Code) (model.URLMapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	mapping, ok := s.byCode[code]
	if !ok {
		return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return mapping, nil
}

func (s *Store) FindByOriginalURL(_ context.Context, url model.URL) (model.URLMapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	code, ok := s.byURL[url]
	if !ok {
		return model.URLMapping{}, fmt.Errorf("url %s: %w", url, ErrNotFound)
	}

	return s.byCode[code], nil
}

// CreateOrGet сохраняет запись, если для её URL ещё нет записи.
// Возвращает сохраненную запись и true, либо существующую запись и false.
func (s *Store) CreateOrGet(_ context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if code, exists := s.byURL[mapping.OriginalURL]; exists {
		return s.byCode[code], false, nil
	}

	if _, exists := s.byCode[mapping.ShortCode]; exists {
		return model.URLMapping{}, false, fmt.Errorf("code %s: %w", mapping.ShortCode, ErrCodeConflict)
	}

	if mapping.ID == "" {
		mapping.ID = uuid.NewString()
	}

	s.put(mapping)

	return mapping, true, nil
}

// IncrementClicks увеличивает счетчик переходов и возвращает обновленную запись
func (s *Store) IncrementClicks(_ context.Context, code model.Code) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.byCode[code]
	if !ok {
		return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	mapping.ClickCount++
	s.byCode[code] = mapping

	return mapping, nil
}

// EnsureIndexes ничего не делает: обе map и есть индексы
func (s *Store) EnsureIndexes(_ context.Context) error {
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

// InitializeWith инициализирует хранилище данными (без проверки на существование)
// Используется для массовой загрузки данных, например, из файла
func (s *Store) InitializeWith(mappings []model.URLMapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, mapping := range mappings {
		s.put(mapping)
	}
}

// Len возвращает количество записей
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.byCode)
}

func (s *Store) put(mapping model.URLMapping) {
	s.byCode[mapping.ShortCode] = mapping
	s.byURL[mapping.OriginalURL] = mapping.ShortCode
}
