// Package debugserver streams a running CPU's register/flag/IME/halted
// state to a connected inspector over a websocket, one JSON frame per
// step, fulfilling the "register inspection accessors for debuggers"
// requirement as a live wire protocol.
package debugserver

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/fennelabs/sm83/internal/cpu"
	"github.com/fennelabs/sm83/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server accepts websocket connections and fans out every published
// CPU.Snapshot to all of them as a JSON frame.
type Server struct {
	log log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer returns a Server with no connected clients.
func NewServer(l log.Logger) *Server {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Server{log: l, clients: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP upgrades the request to a websocket and registers the
// resulting connection as a subscriber until it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("debugserver: upgrade failed: %s", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain and discard client messages; this protocol is publish-only,
	// but a reader goroutine is required to notice the connection close.
	go func() {
		defer s.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// frame is the JSON shape pushed to every connected client.
type frame struct {
	cpu.Snapshot
	Step uint64 `json:"step"`
}

// Publish sends snap to every connected client as a JSON frame stamped
// with step. Clients that fail to accept the write (a dead connection)
// are dropped.
func (s *Server) Publish(step uint64, snap cpu.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := frame{Snapshot: snap, Step: step}
	for conn := range s.clients {
		if err := conn.WriteJSON(f); err != nil {
			s.log.Debugf("debugserver: dropping client: %s", err)
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount returns the number of currently connected inspectors.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
