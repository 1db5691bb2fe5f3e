package websocket

import (
	"sync"
	"time"

	"github.com/classpoint/sis-backend/internal/enrollment"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeTimeout = 10 * time.Second

// Hub fans committed class and roster events out to every connected console
// session. It implements enrollment.Sink so the class workflow can publish
// without knowing about WebSockets.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   zerolog.Logger
}

// NewHub creates an empty Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   log.With().Str("component", "ws_hub").Logger(),
	}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	count := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("connections", count).Msg("Console session connected")
}

// Unregister removes a connection. Safe to call twice.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	count := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("connections", count).Msg("Console session disconnected")
}

// Publish broadcasts one committed event to all connections. A connection
// that fails the write is dropped; the slow or dead client reconnects rather
// than stalling the rest.
func (h *Hub) Publish(e enrollment.Event) {
	payload := PayloadFor(e)

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(payload); err != nil {
			h.log.Warn().Err(err).Msg("Dropping console session after failed write")
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// WriteError sends a typed ErrorResponse over a single connection.
func WriteError(conn *websocket.Conn, errMsg string) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(ErrorResponse{Event: EventError, Error: errMsg})
}
