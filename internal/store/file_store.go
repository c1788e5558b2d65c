package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// Записи дописываются в порядке изменений, последний снимок кода побеждает при загрузке.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	// writeMu упорядочивает изменение в памяти и запись снимка в файл
	writeMu sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	// Загружаем данные из файла при инициализации
	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	return fs.store.FindByCode(ctx, code)
}

func (fs *FileStore) FindByOriginalURL(ctx context.Context, url model.URL) (model.URLMapping, error) {
	return fs.store.FindByOriginalURL(ctx, url)
}

// CreateOrGet записывает новую запись в in-memory store и добавляет её в файл
func (fs *FileStore) CreateOrGet(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	stored, created, err := fs.store.CreateOrGet(ctx, mapping)
	if err != nil {
		return model.URLMapping{}, false, err
	}

	if !created {
		return stored, false, nil
	}

	if err := fs.fileStorage.Append(newURLEntry(stored)); err != nil {
		return model.URLMapping{}, false, fmt.Errorf("failed to append to file: %w", err)
	}

	return stored, true, nil
}

// IncrementClicks увеличивает счетчик и дописывает новое состояние записи в файл
func (fs *FileStore) IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error) {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	mapping, err := fs.store.IncrementClicks(ctx, code)
	if err != nil {
		return model.URLMapping{}, err
	}

	if err := fs.fileStorage.Append(newURLEntry(mapping)); err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to append to file: %w", err)
	}

	return mapping, nil
}

func (fs *FileStore) EnsureIndexes(ctx context.Context) error {
	return fs.store.EnsureIndexes(ctx)
}

func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

func (fs *FileStore) Close() error {
	return nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	mappings := make([]model.URLMapping, 0, len(entries))
	for _, entry := range entries {
		mappings = append(mappings, entry.toMapping())
	}

	fs.store.InitializeWith(mappings)

	return nil
}
