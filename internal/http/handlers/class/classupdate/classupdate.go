// Package classupdate реализует HTTP-обработчик изменения занятия.
package classupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Request — структура входных данных для изменения занятия.
type Request struct {
	SportID     int    `json:"sport_id" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,min=3,max=500"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы на изменение занятий.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики занятий
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики изменения занятия.
type Service interface {
	Update(ctx context.Context, class *models.Class) (*models.Class, error)
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
// @Summary Изменить занятие
// @Description Изменяет вид спорта, описание и длительность занятия. Доступно только администраторам.
// @Tags Classes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID занятия"
// @Param request body Request true "Новые данные занятия"
// @Success 200 {object} map[string]any "Обновленное занятие"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Занятие или вид спорта не найдены"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /classes/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.classupdate"

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

	class, err := h.service.Update(r.Context(), &models.Class{
		ID:          id,
		SportID:     req.SportID,
		Description: req.Description,
		Duration:    req.Duration,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn("class not found", slog.Int("class_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("class not found"))
			return
		}
		log.Error("failed to update class", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update class"))
		return
	}

	log.Info("success to update class", slog.Int("class_id", id))
	render.JSON(w, r, response.StatusOKWithData(class))
}
