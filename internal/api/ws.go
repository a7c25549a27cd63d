package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans order changes out to connected admin dashboards. It implements
// order.Broadcaster; a slow or dead client is dropped, never waited on.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) OrderChanged(o *order.Order) {
	data, err := json.Marshal(o)
	if err != nil {
		logger.L().Warn("failed to marshal order for broadcast",
			zap.String("order_number", o.OrderNumber), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handler upgrades the connection and parks it in the client set. Reads are
// discarded; the socket exists only for pushes.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
