package uiws

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/frudas24/padnexus/internal/discovery"
	"github.com/gorilla/websocket"
)

// dialUI connects a websocket client to the test server.
func dialUI(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readMsg reads one message with a deadline.
func readMsg(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return msg
}

// waitConnected blocks until the server registered the socket.
func waitConnected(t *testing.T, s *Server) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !s.Connected() {
		if time.Now().After(deadline) {
			t.Fatalf("expected server to register the connection")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// TestServer_GamesAfterLoadedOnce verifies the list is pushed once after loaded.
func TestServer_GamesAfterLoadedOnce(t *testing.T) {
	s := NewServer(nil)
	s.SetGames([]discovery.Game{{Name: "A", Path: `C:\A\a.exe`}})
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dialUI(t, srv)
	if err := conn.WriteJSON(Message{T: TypeLoaded}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(Message{T: TypeLoaded}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	msg := readMsg(t, conn)
	if msg.T != TypeGames || len(msg.Games) != 1 || msg.Games[0].Path != `C:\A\a.exe` {
		t.Fatalf("unexpected games message: %+v", msg)
	}

	// A second loaded must not trigger another push; the next frame is the visibility notice.
	time.Sleep(50 * time.Millisecond)
	s.SendVisibility(true)
	msg = readMsg(t, conn)
	if msg.T != TypeVisibility || msg.Visible == nil || !*msg.Visible {
		t.Fatalf("expected visibility message, got %+v", msg)
	}
}

// TestServer_GamesWaitForScan verifies a loaded UI receives the list when the scan finishes.
func TestServer_GamesWaitForScan(t *testing.T) {
	s := NewServer(nil)
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dialUI(t, srv)
	if err := conn.WriteJSON(Message{T: TypeLoaded}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	waitConnected(t, s)
	time.Sleep(50 * time.Millisecond)
	s.SetGames([]discovery.Game{{Name: "Late", Path: "/games/late"}})

	msg := readMsg(t, conn)
	if msg.T != TypeGames || len(msg.Games) != 1 || msg.Games[0].Name != "Late" {
		t.Fatalf("unexpected games message: %+v", msg)
	}
}

// TestServer_Command verifies UI commands reach the callback.
func TestServer_Command(t *testing.T) {
	var (
		mu   sync.Mutex
		cmds []string
	)
	got := make(chan struct{}, 1)
	s := NewServer(func(cmd string) {
		mu.Lock()
		cmds = append(cmds, cmd)
		mu.Unlock()
		got <- struct{}{}
	})
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dialUI(t, srv)
	if err := conn.WriteJSON(Message{T: TypeCommand, Cmd: "openConfig"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected command callback")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(cmds) != 1 || cmds[0] != "openConfig" {
		t.Fatalf("expected [openConfig], got %v", cmds)
	}
}

// TestServer_SendWithoutClient verifies notifications without a UI are ignored.
func TestServer_SendWithoutClient(t *testing.T) {
	s := NewServer(nil)
	s.SendVisibility(true)
	s.SendOpenConfig()
	if s.Connected() {
		t.Fatalf("expected no connection")
	}
}
