// Package ws реализует доставку уведомлений о записях на занятия
// владельцам занятий по WebSocket. Соединения группируются в комнаты
// по идентификатору администратора.
package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
)

// sendBufferSize — размер буфера исходящих сообщений на соединение.
// Клиент, не успевающий читать, отключается.
const sendBufferSize = 16

// Client представляет одно WebSocket-соединение администратора.
type Client struct {
	AdminID int
	Conn    *websocket.Conn
	Send    chan []byte
}

// Hub хранит активные соединения, сгруппированные по администраторам.
type Hub struct {
	log   *slog.Logger
	mu    sync.RWMutex
	rooms map[int]map[*Client]struct{}
}

// NewHub создает пустой Hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:   log,
		rooms: make(map[int]map[*Client]struct{}),
	}
}

// Register добавляет соединение в комнату администратора.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[client.AdminID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[client.AdminID] = room
	}
	room[client] = struct{}{}
	h.log.Debug("websocket client registered", slog.Int("admin_id", client.AdminID))
}

// Unregister удаляет соединение из комнаты и закрывает канал отправки.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[client.AdminID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(h.rooms, client.AdminID)
	}
	h.log.Debug("websocket client unregistered", slog.Int("admin_id", client.AdminID))
}

// SendToAdmin сериализует сообщение и рассылает его всем соединениям
// администратора. Соединения с переполненным буфером отключаются.
func (h *Hub) SendToAdmin(adminID int, message any) error {
	const op = "ws.Hub.SendToAdmin"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	h.mu.RLock()
	room := h.rooms[adminID]
	slow := make([]*Client, 0)
	for client := range room {
		select {
		case client.Send <- body:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.log.Warn("dropping slow websocket client", slog.Int("admin_id", adminID))
		h.Unregister(client)
		_ = client.Conn.Close()
	}
	return nil
}

// CountConnections возвращает число активных соединений администратора.
func (h *Hub) CountConnections(adminID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[adminID])
}

// WritePump пишет сообщения из канала Send в соединение.
// Завершается при закрытии канала или ошибке записи.
func (h *Hub) WritePump(client *Client) {
	defer func() {
		_ = client.Conn.Close()
	}()
	for body := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, body); err != nil {
			h.log.Debug("websocket write failed", sl.Err(err))
			h.Unregister(client)
			return
		}
	}
	_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ReadPump читает входящие сообщения, чтобы обрабатывать close-фреймы.
// Содержимое входящих сообщений игнорируется.
func (h *Hub) ReadPump(client *Client) {
	defer func() {
		h.Unregister(client)
		_ = client.Conn.Close()
	}()
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
