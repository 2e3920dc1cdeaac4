// Package services содержит бизнес-логику для управления подписками.
package services

import (
	"context"
	"log/slog"

	"github.com/smirnovmx/subtrack/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// All возвращает полную коллекцию id -> подписка.
	All(ctx context.Context) (map[string]models.Subscription, error)
	// Get возвращает подписку по ID.
	Get(ctx context.Context, id string) (*models.Subscription, error)
	// Insert добавляет новую подписку и возвращает её ID.
	Insert(ctx context.Context, sub models.Subscription) (int, error)
	// Replace целиком заменяет подписку по ID.
	Replace(ctx context.Context, id string, sub models.Subscription) error
	// Delete удаляет подписку по ID.
	Delete(ctx context.Context, id string) error
}

// SubscriptionService реализует бизнес-логику работы с подписками.
// Сервис намеренно тонкий: проверка полей живёт в обработчиках,
// вычисление признака активности — на стороне клиента.
type SubscriptionService struct {
	repo SubscriptionRepository
	log  *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log,
	}
}

// List возвращает коллекцию целиком, в том же виде, в каком она хранится.
// Фильтрация, сортировка и пагинация — забота клиента.
func (s *SubscriptionService) List(ctx context.Context) (map[string]models.Subscription, error) {
	return s.repo.All(ctx)
}

// Read возвращает подписку по ID.
func (s *SubscriptionService) Read(ctx context.Context, id string) (*models.Subscription, error) {
	return s.repo.Get(ctx, id)
}

// Create сохраняет новую подписку и возвращает присвоенный ID.
// Поля записи на этом пути не проверяются: запись сохраняется как есть.
func (s *SubscriptionService) Create(ctx context.Context, sub models.Subscription) (int, error) {
	id, err := s.repo.Insert(ctx, sub)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new subscription", slog.Int("id", id))
	return id, nil
}

// Update заменяет подписку по ID целиком.
func (s *SubscriptionService) Update(ctx context.Context, id string, sub models.Subscription) error {
	if err := s.repo.Replace(ctx, id, sub); err != nil {
		return err
	}
	s.log.Info("updated subscription", slog.String("id", id))
	return nil
}

// Remove удаляет подписку по ID.
func (s *SubscriptionService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed subscription", slog.String("id", id))
	return nil
}
