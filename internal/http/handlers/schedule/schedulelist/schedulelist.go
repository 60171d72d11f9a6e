// Package schedulelist реализует HTTP-обработчик получения списка расписаний.
//
// Поддерживает фильтрацию по занятию через query-параметр class_id.
package schedulelist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка расписаний.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики расписаний
}

// Service описывает интерфейс бизнес-логики списка расписаний.
type Service interface {
	List(ctx context.Context, classID int) ([]*models.Schedule, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список расписаний
// @Description Возвращает расписания занятий, опционально только для одного занятия.
// @Tags Schedules
// @Produce  json
// @Security BearerAuth
// @Param class_id query int false "ID занятия"
// @Success 200 {object} map[string]any "Список расписаний"
// @Failure 400 {object} response.ErrorResponse "Некорректный class_id"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /schedules [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.schedule.schedulelist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var classID int
	if raw := r.URL.Query().Get("class_id"); raw != "" {
		var err error
		classID, err = strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode class_id from query", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode class_id from query"))
			return
		}
	}

	schedules, err := h.service.List(r.Context(), classID)
	if err != nil {
		log.Error("failed to list schedules", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list schedules"))
		return
	}

	log.Info("success to list schedules", slog.Int("count", len(schedules)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"schedules": schedules,
	}))
}
