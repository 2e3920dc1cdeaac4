// Package filestore реализует хранилище подписок, основанное на одном JSON-файле.
//
// Файл содержит объект, ключи которого — десятичные строковые идентификаторы,
// а значения — записи подписок. Каждая операция выполняет полный цикл
// «прочитать файл — изменить в памяти — записать файл целиком»; цикл защищён
// мьютексом, поэтому одновременные мутации не теряют запись друг друга.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/smirnovmx/subtrack/internal/models"
)

// Ошибки хранилища. Обработчики различают их через errors.Is,
// чтобы вернуть клиенту корректный HTTP-статус.
var (
	ErrRead          = errors.New("failed to read storage file")
	ErrParse         = errors.New("failed to parse storage file")
	ErrWrite         = errors.New("failed to write storage file")
	ErrEntryNotFound = errors.New("subscription not found")
)

// Store файловое хранилище подписок.
type Store struct {
	path string
	mu   sync.Mutex
}

// New создает хранилище поверх файла path. Если файл отсутствует,
// он создается с пустым объектом "{}"; существующий файл не перезаписывается.
func New(path string) (*Store, error) {
	const op = "storage.filestore.New"

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrRead, err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrWrite, err)
		}
	}
	return &Store{path: path}, nil
}

// All возвращает полное отображение id -> подписка.
func (s *Store) All(_ context.Context) (map[string]models.Subscription, error) {
	const op = "storage.filestore.All"

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// Get возвращает подписку по идентификатору или ErrEntryNotFound.
func (s *Store) Get(_ context.Context, id string) (*models.Subscription, error) {
	const op = "storage.filestore.Get"

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub, ok := subs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrEntryNotFound)
	}
	return &sub, nil
}

// Insert добавляет новую подписку под следующим свободным идентификатором
// и возвращает его.
func (s *Store) Insert(_ context.Context, sub models.Subscription) (int, error) {
	const op = "storage.filestore.Insert"

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id := NextID(subs)
	subs[strconv.Itoa(id)] = sub
	if err := s.save(subs); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Replace целиком заменяет запись под идентификатором id.
// Частичного обновления полей нет: сохраняется ровно то, что передано.
func (s *Store) Replace(_ context.Context, id string, sub models.Subscription) error {
	const op = "storage.filestore.Replace"

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := subs[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrEntryNotFound)
	}
	subs[id] = sub
	if err := s.save(subs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет запись по идентификатору или возвращает ErrEntryNotFound.
func (s *Store) Delete(_ context.Context, id string) error {
	const op = "storage.filestore.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := subs[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrEntryNotFound)
	}
	delete(subs, id)
	if err := s.save(subs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// NextID вычисляет следующий идентификатор: максимальный числовой ключ плюс один,
// либо 1 для пустой коллекции. Нечисловые ключи при поиске максимума игнорируются.
// После удалений идентификаторы не переиспользуются, дыры остаются.
func NextID(subs map[string]models.Subscription) int {
	maxID := 0
	for key := range subs {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// load читает файл целиком и разбирает его как JSON-объект.
// Вызывающий должен держать s.mu.
func (s *Store) load() (map[string]models.Subscription, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrRead)
	}
	var subs map[string]models.Subscription
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if subs == nil {
		subs = make(map[string]models.Subscription)
	}
	return subs, nil
}

// save сериализует всю коллекцию и перезаписывает файл целиком.
// Атомарной замены нет: при сбое посреди записи файл может остаться
// усечённым, это осознанное ограничение хранилища.
// Вызывающий должен держать s.mu.
func (s *Store) save(subs map[string]models.Subscription) error {
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
