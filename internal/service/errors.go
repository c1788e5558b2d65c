package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сохранить запись с уникальным кодом
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")
	// ErrNotFound возвращается когда для короткого кода нет записи
	ErrNotFound = errors.New("short code not found")
)
