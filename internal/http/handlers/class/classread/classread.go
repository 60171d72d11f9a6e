// Package classread реализует HTTP-обработчик получения занятия по ID.
//
// В ответ включаются расписания занятия.
package classread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler обрабатывает запросы на получение занятия по идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики занятий
}

// Service описывает интерфейс бизнес-логики чтения занятия.
type Service interface {
	Get(ctx context.Context, id int) (*models.Class, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить занятие
// @Description Возвращает занятие по ID вместе с его расписаниями.
// @Tags Classes
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID занятия"
// @Success 200 {object} map[string]any "Занятие с расписаниями"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Занятие не найдено"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /classes/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.classread"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	class, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn("class not found", slog.Int("class_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("class not found"))
			return
		}
		log.Error("failed to read class", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read class"))
		return
	}

	log.Info("success to read class", slog.Int("class_id", id))
	render.JSON(w, r, response.StatusOKWithData(class))
}
