// Package enrollmentlist реализует HTTP-обработчик получения всех записей на занятия.
package enrollmentlist

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

// Handler обрабатывает HTTP-запросы на получение списка записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики записей
}

// Service описывает интерфейс бизнес-логики списка записей.
type Service interface {
	List(ctx context.Context) ([]*models.Enrollment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список всех записей
// @Description Возвращает все записи на занятия. Доступно только администраторам.
// @Tags Enrollments
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список записей"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /enrollments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enrollment.enrollmentlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	enrollments, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list enrollments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list enrollments"))
		return
	}

	log.Info("success to list enrollments", slog.Int("count", len(enrollments)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"enrollments": enrollments,
	}))
}
