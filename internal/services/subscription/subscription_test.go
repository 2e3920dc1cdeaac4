package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovmx/subtrack/internal/models"
	"github.com/smirnovmx/subtrack/internal/storage/filestore"
)

func newTestService(t *testing.T) *SubscriptionService {
	t.Helper()
	store, err := filestore.New(filepath.Join(t.TempDir(), "subscriptions.json"))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSubscriptionService(store, logger)
}

func TestCreateThenRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sub := models.Subscription{
		Name:       "Netflix",
		StartDate:  "2024-01-01",
		ExpiryDate: models.NeverExpires,
		UserID:     "1",
	}
	id, err := svc.Create(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	got, err := svc.Read(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, sub, *got)
}

func TestUpdateMissingEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.Update(ctx, "42", models.Subscription{Name: "Ghost", StartDate: "2024-01-01", UserID: "1"})
	assert.ErrorIs(t, err, filestore.ErrEntryNotFound)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs, "неудачное обновление не должно создавать запись")
}

// Полный жизненный цикл: пустая коллекция -> создание -> список -> удаление -> пустая коллекция.
func TestLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	id, err := svc.Create(ctx, models.Subscription{
		Name:       "Netflix",
		StartDate:  "2024-01-01",
		ExpiryDate: models.NeverExpires,
		UserID:     float64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	subs, err = svc.List(ctx)
	require.NoError(t, err)
	require.Contains(t, subs, "1")
	assert.Equal(t, "Netflix", subs["1"].Name)

	require.NoError(t, svc.Remove(ctx, "1"))

	subs, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
