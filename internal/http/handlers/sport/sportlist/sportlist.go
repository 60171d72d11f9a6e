// Package sportlist реализует HTTP-обработчик получения справочника видов спорта.
package sportlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка видов спорта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики видов спорта
}

// Service описывает интерфейс бизнес-логики списка видов спорта.
type Service interface {
	List(ctx context.Context) ([]*models.Sport, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список видов спорта
// @Description Возвращает справочник видов спорта, отсортированный по названию.
// @Tags Sports
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список видов спорта"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /sports [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sport.sportlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sports, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list sports", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list sports"))
		return
	}

	log.Info("success to list sports", slog.Int("count", len(sports)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"sports": sports,
	}))
}
