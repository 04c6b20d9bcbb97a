package uiws

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/padnexus/internal/discovery"
	"github.com/gorilla/websocket"
)

// CommandFunc handles a command sent by the UI.
type CommandFunc func(cmd string)

// Server serves the single UI websocket. A new connection replaces the
// previous one.
type Server struct {
	mu        sync.Mutex
	writeMu   sync.Mutex
	upgrader  websocket.Upgrader
	onCommand CommandFunc

	conn     *websocket.Conn
	pipe     *pipeline
	games    []discovery.Game
	envReady bool
}

// NewServer creates a UI server. onCommand may be nil.
func NewServer(onCommand CommandFunc) *Server {
	return &Server{
		onCommand: onCommand,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and runs the read loop.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.acceptConn(conn)
	defer s.cleanupConn(conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := Decode(data)
		if err != nil {
			log.Printf("ui: bad message: %v", err)
			continue
		}
		s.handleMessage(conn, msg)
	}
}

// SetGames marks the environment ready and delivers the list to a UI that
// already finished loading.
func (s *Server) SetGames(games []discovery.Game) {
	s.mu.Lock()
	s.games = append([]discovery.Game(nil), games...)
	s.envReady = true
	conn, push := s.conn, false
	if s.pipe != nil {
		s.pipe.envReady = true
		push = s.pipe.take()
	}
	s.mu.Unlock()
	if push {
		s.pushGames(conn)
	}
}

// SendVisibility notifies the UI of a visibility change.
func (s *Server) SendVisibility(visible bool) {
	s.sendActive(VisibilityMessage(visible))
}

// SendOpenConfig asks the UI to show the configuration hub.
func (s *Server) SendOpenConfig() {
	s.sendActive(Message{T: TypeOpenConfig})
}

// Connected reports whether a UI socket is active.
func (s *Server) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// acceptConn registers conn as the active connection, closing any previous one.
func (s *Server) acceptConn(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
	s.pipe = &pipeline{envReady: s.envReady, connected: true}
	log.Printf("ui: connected (%s)", s.pipe.stage())
}

// cleanupConn clears state if the connection is still the active one.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.pipe = nil
		log.Printf("ui: disconnected")
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches UI messages.
func (s *Server) handleMessage(conn *websocket.Conn, msg Message) {
	switch msg.T {
	case TypeLoaded:
		s.mu.Lock()
		push := false
		if s.conn == conn && s.pipe != nil {
			s.pipe.loaded = true
			push = s.pipe.take()
		}
		s.mu.Unlock()
		if push {
			s.pushGames(conn)
		}
	case TypeCommand:
		if s.onCommand != nil && msg.Cmd != "" {
			s.onCommand(msg.Cmd)
		}
	}
}

// pushGames sends the cached list to conn.
func (s *Server) pushGames(conn *websocket.Conn) {
	s.mu.Lock()
	games := s.games
	s.mu.Unlock()
	if err := s.sendTo(conn, GamesMessage(games)); err != nil {
		log.Printf("ui: push games: %v", err)
		return
	}
	log.Printf("ui: sent %d games", len(games))
}

// sendActive writes msg to the active connection, if any.
func (s *Server) sendActive(msg Message) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	_ = s.sendTo(conn, msg)
}

// sendTo writes a message to the active connection.
func (s *Server) sendTo(conn *websocket.Conn, msg Message) error {
	s.mu.Lock()
	active := s.conn
	s.mu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	data, err := Encode(msg)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}
