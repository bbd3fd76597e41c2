// Package telemetry is a publish-only websocket data plane for completed
// frames and posted interrupts: broadcast to whoever is listening. No
// command parsing reaches back in.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"goboy/pkg/log"
)

// messageKind tags a broadcast payload so subscribers can demultiplex
// without parsing frame bytes speculatively.
type messageKind uint8

const (
	KindFrame messageKind = iota
	KindInterrupt
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans out frame and interrupt events to any number of connected
// subscribers. It never reads from a connection beyond the handshake.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte

	log log.Logger
}

// NewHub returns an empty Hub.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NewNull()
	}
	return &Hub{clients: make(map[*websocket.Conn]chan []byte), log: logger}
}

// ServeHTTP upgrades the connection and registers it as a subscriber. It
// implements http.Handler so the external collaborator that owns the host
// window can mount it on whatever mux it likes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("telemetry: upgrade failed: %v", err)
		return
	}
	send := make(chan []byte, 8)

	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go h.writePump(conn, send)
}

func (h *Hub) writePump(conn *websocket.Conn, send chan []byte) {
	defer h.remove(conn)
	for msg := range send {
		if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
		conn.Close()
	}
}

// broadcast drops the message for any subscriber whose send buffer is
// full rather than blocking the emulation loop on a slow reader.
func (h *Hub) broadcast(kind messageKind, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := append([]byte{uint8(kind)}, payload...)
	for conn, send := range h.clients {
		select {
		case send <- msg:
		default:
			h.log.Errorf("telemetry: dropping frame for slow subscriber %v", conn.RemoteAddr())
		}
	}
}

// PublishFrame broadcasts a completed frame's raw RGBA bytes.
func (h *Hub) PublishFrame(rgba []byte) { h.broadcast(KindFrame, rgba) }

// PublishInterrupt broadcasts one byte of posted interrupt bits: bit n set
// means the source with id n is pending.
func (h *Hub) PublishInterrupt(mask uint8) { h.broadcast(KindInterrupt, []byte{mask}) }
