// Package list реализует HTTP-обработчик для получения всей коллекции подписок.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/smirnovmx/subtrack/internal/http/response"
	"github.com/smirnovmx/subtrack/internal/lib/sl"
	"github.com/smirnovmx/subtrack/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка подписок.
type Service interface {
	List(ctx context.Context) (map[string]models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список всех подписок
// @Description Возвращает коллекцию подписок как объект, ключи которого — идентификаторы.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} map[string]models.Subscription "Коллекция подписок"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subs, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load subscriptions"))
		return
	}

	log.Info("list subscriptions", slog.Int("count", len(subs)))
	// Коллекция отдается в исходном виде: объект id -> запись, без оборачивания.
	render.JSON(w, r, subs)
}
