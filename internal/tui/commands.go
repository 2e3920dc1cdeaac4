package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smirnovmx/subtrack/internal/client"
	"github.com/smirnovmx/subtrack/internal/models"
	"github.com/smirnovmx/subtrack/internal/view"
)

// subsLoadedMsg приходит после успешной загрузки коллекции с сервера.
// Содержит уже аннотированные записи: признак активности вычислен
// один раз на загрузку, единым моментом времени для всех строк.
type subsLoadedMsg []view.Entry

// recordLoadedMsg приходит после загрузки одной записи для редактирования.
type recordLoadedMsg struct {
	id  string
	sub models.Subscription
}

// mutationDoneMsg приходит после успешного создания, обновления или удаления.
type mutationDoneMsg string

// errorMsg приходит при любой ошибке сети или сервера.
type errorMsg string

const requestTimeout = 30 * time.Second

// loadSubscriptions загружает коллекцию и аннотирует её для отображения.
func loadSubscriptions(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		subs, err := api.List(ctx)
		if err != nil {
			return errorMsg(err.Error())
		}
		return subsLoadedMsg(view.Annotate(subs, time.Now()))
	}
}

// fetchRecord загружает одну запись перед открытием формы редактирования.
func fetchRecord(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		sub, err := api.Get(ctx, id)
		if err != nil {
			return errorMsg(err.Error())
		}
		return recordLoadedMsg{id: id, sub: *sub}
	}
}

// submitForm отправляет запись: создание или обновление в зависимости от режима.
func submitForm(api *client.Client, mode view.FormMode, sub models.Subscription) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if id, ok := mode.EditID(); ok {
			if err := api.Update(ctx, id, sub); err != nil {
				return errorMsg(err.Error())
			}
			return mutationDoneMsg("subscription " + id + " updated")
		}
		if _, err := api.Create(ctx, sub); err != nil {
			return errorMsg(err.Error())
		}
		return mutationDoneMsg("subscription created")
	}
}

// deleteRecord удаляет запись после подтверждения.
func deleteRecord(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := api.Delete(ctx, id); err != nil {
			return errorMsg(err.Error())
		}
		return mutationDoneMsg("subscription " + id + " deleted")
	}
}
