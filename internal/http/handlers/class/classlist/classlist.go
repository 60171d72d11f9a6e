// Package classlist реализует HTTP-обработчик получения списка занятий.
//
// Поддерживает фильтрацию по названиям видов спорта через query-параметр
// sports: ?sports=yoga,boxing.
package classlist

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка занятий.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики занятий
}

// Service описывает интерфейс бизнес-логики списка занятий.
type Service interface {
	List(ctx context.Context, sportNames []string) ([]*models.Class, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список занятий
// @Description Возвращает занятия, опционально отфильтрованные по видам спорта.
// @Tags Classes
// @Produce  json
// @Security BearerAuth
// @Param sports query string false "Названия видов спорта через запятую"
// @Success 200 {object} map[string]any "Список занятий"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /classes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.classlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var sportNames []string
	if raw := r.URL.Query().Get("sports"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sportNames = append(sportNames, name)
			}
		}
	}

	classes, err := h.service.List(r.Context(), sportNames)
	if err != nil {
		log.Error("failed to list classes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list classes"))
		return
	}

	log.Info("success to list classes", slog.Int("count", len(classes)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"classes": classes,
	}))
}
