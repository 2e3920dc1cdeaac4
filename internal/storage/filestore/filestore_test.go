package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovmx/subtrack/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "subscriptions.json"))
	require.NoError(t, err)
	return store
}

func TestNew(t *testing.T) {
	t.Run("создает файл с пустым объектом", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subscriptions.json")
		_, err := New(path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("не перезаписывает существующий файл", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subscriptions.json")
		existing := `{"7":{"name":"Netflix","start_date":"2024-01-01","user_id":1}}`
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

		store, err := New(path)
		require.NoError(t, err)

		subs, err := store.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, subs, 1)
		assert.Equal(t, "Netflix", subs["7"].Name)
	})
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		subs map[string]models.Subscription
		want int
	}{
		{
			name: "пустая коллекция",
			subs: map[string]models.Subscription{},
			want: 1,
		},
		{
			name: "максимум плюс один, дыры не переиспользуются",
			subs: map[string]models.Subscription{
				"2": {Name: "Netflix"},
				"5": {Name: "Spotify"},
			},
			want: 6,
		},
		{
			name: "нечисловые ключи игнорируются",
			subs: map[string]models.Subscription{
				"3":   {Name: "Netflix"},
				"abc": {Name: "Broken"},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.subs))
		})
	}
}

func TestInsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sub := models.Subscription{
		Name:       "Netflix",
		Username:   "anna",
		StartDate:  "2024-01-01",
		ExpiryDate: models.NeverExpires,
		UserID:     "1",
	}
	id, err := store.Insert(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	got, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, sub, *got)

	id, err = store.Insert(ctx, models.Subscription{Name: "Spotify", StartDate: "2024-02-01", UserID: "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "99")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestReplace(t *testing.T) {
	t.Run("заменяет запись целиком", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, models.Subscription{
			Name:      "Netflix",
			Username:  "anna",
			StartDate: "2024-01-01",
			UserID:    "1",
		})
		require.NoError(t, err)

		updated := models.Subscription{Name: "Netflix Premium", StartDate: "2024-03-01", UserID: "1"}
		require.NoError(t, store.Replace(ctx, "1", updated))

		got, err := store.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, updated, *got)
		assert.Empty(t, got.Username, "старое поле не должно пережить замену")
	})

	t.Run("несуществующий id не создает запись", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		err := store.Replace(ctx, "42", models.Subscription{Name: "Ghost", StartDate: "2024-01-01", UserID: "1"})
		assert.ErrorIs(t, err, ErrEntryNotFound)

		subs, err := store.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})
}

func TestDelete(t *testing.T) {
	t.Run("удаляет только целевую запись", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, models.Subscription{Name: "Netflix", StartDate: "2024-01-01", UserID: "1"})
		require.NoError(t, err)
		_, err = store.Insert(ctx, models.Subscription{Name: "Spotify", StartDate: "2024-02-01", UserID: "2"})
		require.NoError(t, err)

		before, err := store.All(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "1"))

		after, err := store.All(ctx)
		require.NoError(t, err)
		assert.Len(t, after, 1)
		assert.NotContains(t, after, "1")
		assert.Equal(t, before["2"], after["2"])
	})

	t.Run("несуществующий id", func(t *testing.T) {
		store := newTestStore(t)
		err := store.Delete(context.Background(), "42")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("пустой файл", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subscriptions.json")
		store, err := New(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		_, err = store.All(context.Background())
		assert.ErrorIs(t, err, ErrRead)
	})

	t.Run("невалидный JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subscriptions.json")
		store, err := New(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		_, err = store.All(context.Background())
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("файл удален после инициализации", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subscriptions.json")
		store, err := New(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		_, err = store.All(context.Background())
		assert.ErrorIs(t, err, ErrRead)
		assert.False(t, errors.Is(err, ErrParse))
	})
}

func TestRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, models.Subscription{
		Name:       "Netflix",
		Username:   "anna",
		StartDate:  "2024-01-01",
		ExpiryDate: "2025-01-01",
		UserID:     "1",
	})
	require.NoError(t, err)
	_, err = store.Insert(ctx, models.Subscription{Name: "Spotify", StartDate: "2024-02-01", ExpiryDate: models.NeverExpires, UserID: float64(2)})
	require.NoError(t, err)

	first, err := store.All(ctx)
	require.NoError(t, err)

	// Повторное сохранение той же коллекции не должно ничего менять.
	require.NoError(t, store.Replace(ctx, "1", first["1"]))

	second, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
