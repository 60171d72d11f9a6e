// Package scheduleupdate реализует HTTP-обработчик изменения расписания.
package scheduleupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Request — структура входных данных для изменения расписания.
type Request struct {
	ClassID  int       `json:"class_id" validate:"required,gt=0"`
	Date     time.Time `json:"date" validate:"required"`
	Duration int       `json:"duration" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы на изменение расписаний.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики расписаний
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики изменения расписания.
type Service interface {
	Update(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить расписание
// @Description Изменяет занятие, дату и длительность расписания. Доступно только администраторам.
// @Tags Schedules
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID расписания"
// @Param request body Request true "Новые данные расписания"
// @Success 200 {object} map[string]any "Обновленное расписание"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Расписание или занятие не найдены"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /schedules/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.schedule.scheduleupdate"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	schedule, err := h.service.Update(r.Context(), &models.Schedule{
		ID:       id,
		ClassID:  req.ClassID,
		Date:     req.Date,
		Duration: req.Duration,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn("schedule not found", slog.Int("schedule_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("schedule not found"))
			return
		}
		log.Error("failed to update schedule", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update schedule"))
		return
	}

	log.Info("success to update schedule", slog.Int("schedule_id", id))
	render.JSON(w, r, response.StatusOKWithData(schedule))
}
