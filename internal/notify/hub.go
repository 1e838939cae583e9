package notify

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

// Hub tracks connected WebSocket subscribers and fans events out to
// them. Delivery is best-effort and unordered across subscribers; a
// failed write drops the connection.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleWS upgrades the request and keeps the connection registered
// until the client goes away. Inbound frames are discarded; the socket
// is a notification side channel only.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	h.register(conn)
	h.logger.Info("subscriber connected", slog.String("remote", conn.RemoteAddr().String()))

	defer func() {
		h.unregister(conn)
		_ = conn.Close()
		h.logger.Info("subscriber disconnected", slog.String("remote", conn.RemoteAddr().String()))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast writes the event to every connected subscriber.
func (h *Hub) Broadcast(event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("subscriber write failed, dropping connection",
				slog.String("remote", conn.RemoteAddr().String()),
				slog.Any("error", err),
			)
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}
