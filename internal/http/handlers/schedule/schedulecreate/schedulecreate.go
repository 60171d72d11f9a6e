// Package schedulecreate реализует HTTP-обработчик добавления расписания занятия.
package schedulecreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Request — структура входных данных для добавления расписания.
type Request struct {
	ClassID  int       `json:"class_id" validate:"required,gt=0"`
	Date     time.Time `json:"date" validate:"required"`
	Duration int       `json:"duration" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы на добавление расписаний.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики расписаний
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики добавления расписания.
type Service interface {
	Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
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
// @Summary Добавить расписание
// @Description Создает расписание для занятия. Доступно только администраторам.
// @Tags Schedules
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового расписания"
// @Success 200 {object} map[string]any "Созданное расписание"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Занятие не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /schedules [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.schedule.schedulecreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	schedule, err := h.service.Create(r.Context(), &models.Schedule{
		ClassID:  req.ClassID,
		Date:     req.Date,
		Duration: req.Duration,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn("class not found", slog.Int("class_id", req.ClassID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("class not found"))
			return
		}
		log.Error("failed to create schedule", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create schedule"))
		return
	}

	log.Info("schedule created", slog.Int("schedule_id", schedule.ID))
	render.JSON(w, r, response.StatusOKWithData(schedule))
}
