package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// maxEntrySize ограничивает длину одной строки журнала
const maxEntrySize = 1 << 20

// URLEntry представляет строку JSONL файла. Имена полей совпадают с документом коллекции urls.
type URLEntry struct {
	ID          string    `json:"_id"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	CreatedAt   time.Time `json:"createdAt"`
	ClickCount  int64     `json:"clickCount"`
}

func newURLEntry(mapping model.URLMapping) URLEntry {
	return URLEntry{
		ID:          mapping.ID,
		OriginalURL: mapping.OriginalURL.String(),
		ShortCode:   mapping.ShortCode.String(),
		CreatedAt:   mapping.CreatedAt,
		ClickCount:  mapping.ClickCount,
	}
}

func (e URLEntry) toMapping() model.URLMapping {
	return model.URLMapping{
		ID:          e.ID,
		OriginalURL: model.URL(e.OriginalURL),
		ShortCode:   model.Code(e.ShortCode),
		CreatedAt:   e.CreatedAt,
		ClickCount:  e.ClickCount,
	}
}

// FileStorage управляет журналом записей URL в JSONL файле.
// Каждое изменение дописывается отдельной строкой, при загрузке побеждает последняя строка для кода.
type FileStorage struct {
	filePath string
	mu       sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла
func (fs *FileStorage) Load() ([]URLEntry, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, err := os.Open(fs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []URLEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	latest := make(map[string]int)
	var entries []URLEntry

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntrySize)

	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var entry URLEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line %d: %w", line, err)
		}

		if i, ok := latest[entry.ShortCode]; ok {
			entries[i] = entry
			continue
		}
		latest[entry.ShortCode] = len(entries)
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return entries, nil
}

// Append дописывает запись в конец файла
func (fs *FileStorage) Append(entry URLEntry) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(entry); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}

	return nil
}
