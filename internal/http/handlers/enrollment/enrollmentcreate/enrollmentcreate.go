// Package enrollmentcreate реализует HTTP-обработчик записи на занятие.
//
// Пользователь берется из контекста запроса. Об успешной записи
// публикуется событие для уведомления владельца занятия.
package enrollmentcreate

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

// Request — структура входных данных для записи на занятие.
type Request struct {
	ClassID int `json:"class_id" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы на запись на занятие.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики записи на занятие.
type Service interface {
	Create(ctx context.Context, userID, classID int) (*models.Enrollment, error)
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
// @Summary Записаться на занятие
// @Description Записывает текущего пользователя на занятие. Владелец занятия получает уведомление.
// @Tags Enrollments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "ID занятия"
// @Success 200 {object} map[string]any "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Занятие не найдено"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже записан"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /enrollments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enrollment.enrollmentcreate"

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
	log.Info("request body decoded", slog.Int("class_id", req.ClassID))

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

	enrollment, err := h.service.Create(r.Context(), userID, req.ClassID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			log.Warn("class not found", slog.Int("class_id", req.ClassID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("class not found"))
		case errors.Is(err, errs.ErrAlreadyEnrolled):
			log.Warn("user already enrolled",
				slog.Int("user_id", userID), slog.Int("class_id", req.ClassID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("already enrolled"))
		default:
			log.Error("failed to create enrollment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create enrollment"))
		}
		return
	}

	log.Info("enrollment created", slog.Int("enrollment_id", enrollment.ID))
	render.JSON(w, r, response.StatusOKWithData(enrollment))
}
