// Package refresh реализует HTTP-обработчик ротации пары токенов.
//
// Refresh-токен читается из HttpOnly-куки. При успешной ротации новый
// access-токен возвращается в теле ответа, новый refresh-токен
// устанавливается в куку. Повторное использование уже ротированного
// токена отклоняется.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sport-complex/internal/http/response"
	"github.com/magabrotheeeer/sport-complex/internal/lib/cookie"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler обрабатывает HTTP-запросы на ротацию токенов.
type Handler struct {
	log        *slog.Logger  // Логгер для записи операций и ошибок
	service    Service       // Сервис бизнес-логики аутентификации
	refreshTTL time.Duration // Время жизни refresh-куки
}

// Service описывает интерфейс бизнес-логики ротации токенов.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service, refreshTTL time.Duration) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		refreshTTL: refreshTTL,
	}
}

// ServeHTTP godoc
// @Summary Ротация пары токенов
// @Description Выдает новую пару токенов по refresh-токену из куки. Старый refresh-токен отзывается.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Новый access-токен"
// @Failure 401 {object} response.ErrorResponse "Кука отсутствует или токен не проходит проверку"
// @Failure 403 {object} response.ErrorResponse "Токен отозван или уже использован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	c, err := r.Cookie(cookie.RefreshTokenName)
	if err != nil {
		log.Warn("refresh cookie is missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing refresh token"))
		return
	}

	pair, err := h.service.Refresh(r.Context(), c.Value)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			log.Warn("refresh token failed verification")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired token"))
		case errors.Is(err, errs.ErrAccessDenied):
			log.Warn("refresh token is revoked")
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		case errors.Is(err, errs.ErrInvalidRefreshToken):
			log.Warn("refresh token mismatch")
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("invalid refresh token"))
		default:
			log.Error("failed to refresh tokens", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not refresh tokens"))
		}
		return
	}

	cookie.SetRefreshToken(w, pair.RefreshToken, h.refreshTTL)

	log.Info("token pair rotated")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"access_token": pair.AccessToken,
	}))
}
