// Package classcreate реализует HTTP-обработчик добавления занятия.
//
// Создатель занятия берется из контекста запроса: он становится
// получателем уведомлений о записях на это занятие.
package classcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sport-complex/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Request — структура входных данных для добавления занятия.
type Request struct {
	SportID     int    `json:"sport_id" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,min=3,max=500"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы на добавление занятий.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики занятий
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики добавления занятия.
type Service interface {
	Create(ctx context.Context, class *models.Class, createdBy int) (*models.Class, error)
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
// @Summary Добавить занятие
// @Description Создает занятие для вида спорта. Доступно только администраторам.
// @Tags Classes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового занятия"
// @Success 200 {object} map[string]any "Созданное занятие"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Вид спорта не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /classes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.classcreate"

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

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	class, err := h.service.Create(r.Context(), &models.Class{
		SportID:     req.SportID,
		Description: req.Description,
		Duration:    req.Duration,
	}, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn("sport not found", slog.Int("sport_id", req.SportID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("sport not found"))
			return
		}
		log.Error("failed to create class", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create class"))
		return
	}

	log.Info("class created", slog.Int("class_id", class.ID))
	render.JSON(w, r, response.StatusOKWithData(class))
}
