package ws_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	"github.com/magabrotheeeer/sport-complex/internal/models"
	"github.com/magabrotheeeer/sport-complex/internal/ws"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestMaker() jwtlib.Maker {
	return jwtlib.NewMaker("access_secret", "refresh_secret", 15*time.Minute, 168*time.Hour)
}

func wsURL(serverURL string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http")
}

func TestHandler_DeliversNotificationToAdmin(t *testing.T) {
	maker := newTestMaker()
	hub := ws.NewHub(newNoopLogger())
	handler := ws.NewHandler(newNoopLogger(), hub, maker)

	server := httptest.NewServer(handler)
	defer server.Close()

	token, err := maker.GenerateAccessToken(7, "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server.URL)+"?token="+token, nil)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
		_ = conn.Close()
	}()

	require.Eventually(t, func() bool {
		return hub.CountConnections(7) == 1
	}, time.Second, 10*time.Millisecond)

	notification := &models.EnrollmentNotification{
		Event:   "user.enrolled",
		Message: `User member@example.com enrolled in your class "morning yoga".`,
	}
	require.NoError(t, hub.SendToAdmin(7, notification))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, body, err := conn.ReadMessage()
	require.NoError(t, err)

	var delivered models.EnrollmentNotification
	require.NoError(t, json.Unmarshal(body, &delivered))
	assert.Equal(t, "user.enrolled", delivered.Event)
	assert.Equal(t, `User member@example.com enrolled in your class "morning yoga".`, delivered.Message)
}

func TestHandler_RejectsMissingAndInvalidTokens(t *testing.T) {
	maker := newTestMaker()
	hub := ws.NewHub(newNoopLogger())
	handler := ws.NewHandler(newNoopLogger(), hub, maker)

	server := httptest.NewServer(handler)
	defer server.Close()

	t.Run("missing token", func(t *testing.T) {
		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, err := http.Get(server.URL + "?token=garbage")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non-admin token", func(t *testing.T) {
		token, err := maker.GenerateAccessToken(1, "user@example.com", models.RoleUser)
		require.NoError(t, err)

		resp, err := http.Get(server.URL + "?token=" + token)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestHub_SendToAdmin_NoConnections(t *testing.T) {
	hub := ws.NewHub(newNoopLogger())

	// Отправка без подключений не ошибка: событие просто некому доставить.
	err := hub.SendToAdmin(1, &models.EnrollmentNotification{Event: "user.enrolled", Message: "test"})
	assert.NoError(t, err)
	assert.Zero(t, hub.CountConnections(1))
}

func TestHub_UnregisterRemovesConnection(t *testing.T) {
	maker := newTestMaker()
	hub := ws.NewHub(newNoopLogger())
	handler := ws.NewHandler(newNoopLogger(), hub, maker)

	server := httptest.NewServer(handler)
	defer server.Close()

	token, err := maker.GenerateAccessToken(3, "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server.URL)+"?token="+token, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Eventually(t, func() bool {
		return hub.CountConnections(3) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.CountConnections(3) == 0
	}, time.Second, 10*time.Millisecond)
}
