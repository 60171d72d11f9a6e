package ws

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/gorilla/websocket"

	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Handler принимает WebSocket-соединения администраторов для получения
// уведомлений о записях на занятия.
//
// Access-токен передается в заголовке Authorization или в query-параметре
// token, так как браузерный WebSocket API не позволяет задавать заголовки.
type Handler struct {
	log      *slog.Logger
	hub      *Hub
	tokens   jwtlib.Maker
	upgrader websocket.Upgrader
}

// NewHandler создает обработчик WebSocket-соединений.
func NewHandler(log *slog.Logger, hub *Hub, tokens jwtlib.Maker) *Handler {
	return &Handler{
		log:    log,
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP godoc
// @Summary Канал уведомлений о записях
// @Description Открывает WebSocket-соединение для получения уведомлений о записях
// @Description на занятия текущего администратора.
// @Tags Notifications
// @Security BearerAuth
// @Param token query string false "Access-токен (альтернатива заголовку Authorization)"
// @Success 101 "Соединение установлено"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /ws/notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "ws.Handler.ServeHTTP"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenStr == "" {
		log.Warn("missing access token")
		http.Error(w, "missing access token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ParseAccessToken(tokenStr)
	if err != nil {
		log.Warn("invalid access token", sl.Err(err))
		http.Error(w, "invalid access token", http.StatusUnauthorized)
		return
	}
	if claims.Role != models.RoleAdmin {
		log.Warn("websocket access denied", slog.String("role", claims.Role))
		http.Error(w, "access denied", http.StatusForbidden)
		return
	}
	adminID, err := claims.UserID()
	if err != nil {
		log.Warn("invalid token subject", sl.Err(err))
		http.Error(w, "invalid access token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", sl.Err(err))
		return
	}

	client := &Client{
		AdminID: adminID,
		Conn:    conn,
		Send:    make(chan []byte, sendBufferSize),
	}
	h.hub.Register(client)

	go h.hub.WritePump(client)
	go h.hub.ReadPump(client)

	log.Info("websocket connection established", slog.Int("admin_id", adminID))
}
