package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovmx/subtrack/internal/models"
	"github.com/smirnovmx/subtrack/internal/view"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(nil)
	updated, _ := m.Update(subsLoadedMsg([]view.Entry{
		{ID: "1", Subscription: models.Subscription{Name: "Netflix", UserID: "1"}, Active: true},
		{ID: "2", Subscription: models.Subscription{Name: "Spotify", Username: "ann123", UserID: "2"}, Active: false},
	}))
	return updated.(Model)
}

func TestSubsLoaded(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.Len(t, m.entries, 2)
	assert.Len(t, m.visible(), 2)
}

func TestSearchFiltersLocally(t *testing.T) {
	m := loadedModel(t)

	// Поиск фильтрует кеш без сетевых запросов.
	m.search.SetValue("ann")
	visible := m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "2", visible[0].ID)
}

func TestStatusFilterCycles(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = updated.(Model)
	assert.Equal(t, view.StatusActive, m.status)
	require.Len(t, m.visible(), 1)
	assert.Equal(t, "1", m.visible()[0].ID)

	updated, _ = m.updateBrowse(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = updated.(Model)
	assert.Equal(t, view.StatusInactive, m.status)

	updated, _ = m.updateBrowse(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = updated.(Model)
	assert.Equal(t, view.StatusAll, m.status)
}

func TestRecordLoadedOpensEditForm(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(recordLoadedMsg{
		id: "1",
		sub: models.Subscription{
			Name:      "Netflix",
			StartDate: "2024-01-01",
			UserID:    float64(1),
		},
	})
	m = updated.(Model)

	assert.Equal(t, modeForm, m.mode)
	assert.True(t, m.formMode.IsEdit())
	id, _ := m.formMode.EditID()
	assert.Equal(t, "1", id)
	assert.Equal(t, "Netflix", m.form[0].Value())
	assert.Equal(t, "2024-01-01", m.form[2].Value())
	assert.Equal(t, "1", m.form[4].Value())
}

func TestMutationDoneTriggersReload(t *testing.T) {
	m := loadedModel(t)
	m.mode = modeForm

	updated, cmd := m.Update(mutationDoneMsg("subscription created"))
	m = updated.(Model)

	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.loading)
	assert.NotNil(t, cmd, "после мутации кеш перечитывается целиком")
}

func TestErrorKeepsEntries(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(errorMsg("connection refused"))
	m = updated.(Model)

	assert.Equal(t, "connection refused", m.errMsg)
	// Ошибка не трогает уже загруженные строки.
	assert.Len(t, m.entries, 2)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	assert.Equal(t, modeConfirmDelete, m.mode)
	assert.Equal(t, "1", m.pendingDelete)

	// Отказ возвращает в просмотр без удаления.
	updated, cmd := m.updateConfirm(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, cmd)
	assert.Len(t, m.entries, 2)
}

func TestFormRecord(t *testing.T) {
	m := NewModel(nil)
	m.fillForm(models.Subscription{ExpiryDate: models.NeverExpires})
	m.form[0].SetValue("  Netflix ")
	m.form[2].SetValue("2024-01-01")
	m.form[4].SetValue("7")

	sub := m.formRecord()
	assert.Equal(t, "Netflix", sub.Name)
	assert.Equal(t, "2024-01-01", sub.StartDate)
	assert.Equal(t, models.NeverExpires, sub.ExpiryDate)
	assert.Equal(t, "7", sub.UserID)
}
