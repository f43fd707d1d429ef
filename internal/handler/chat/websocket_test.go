package chat

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/crisisconnect/backend/internal/model/chat"
	chatservice "github.com/crisisconnect/backend/internal/service/chat"
)

func startChatServer(t *testing.T) (*httptest.Server, *chatservice.Hub) {
	t.Helper()
	hub := chatservice.NewHub()
	r := chi.NewRouter()
	New(hub).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) chat.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg chat.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

func waitForCount(t *testing.T, hub *chatservice.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d active clients, got %d", want, hub.Count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesAllClientsIncludingSender(t *testing.T) {
	srv, hub := startChatServer(t)

	connA := dial(t, srv)
	connB := dial(t, srv)
	waitForCount(t, hub, 2)

	sent := chat.Message{Name: "A", Message: "help"}
	if err := connA.WriteJSON(sent); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	for name, conn := range map[string]*websocket.Conn{"A": connA, "B": connB} {
		got := readMessage(t, conn)
		if got != sent {
			t.Fatalf("client %s: expected %+v, got %+v", name, sent, got)
		}
	}
}

func TestBroadcastAfterDisconnect(t *testing.T) {
	srv, hub := startChatServer(t)

	connA := dial(t, srv)
	connB := dial(t, srv)
	waitForCount(t, hub, 2)

	connA.Close()
	waitForCount(t, hub, 1)

	sent := chat.Message{Name: "B", Message: "still here"}
	if err := connB.WriteJSON(sent); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got := readMessage(t, connB)
	if got != sent {
		t.Fatalf("expected %+v, got %+v", sent, got)
	}
}
