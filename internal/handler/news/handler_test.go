package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	newsservice "github.com/crisisconnect/backend/internal/service/news"
)

func setupRouter(upstream http.HandlerFunc) (*chi.Mux, *httptest.Server) {
	srv := httptest.NewServer(upstream)
	svc := newsservice.NewService("test-key", srv.URL)
	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r, srv
}

func TestNewsProxiesPayload(t *testing.T) {
	var gotKey string
	r, srv := setupRouter(func(w http.ResponseWriter, req *http.Request) {
		gotKey = req.URL.Query().Get("apiKey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","totalResults":1}`))
	})
	defer srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key forwarded, got %q", gotKey)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected upstream payload relayed, got %v", body)
	}
}

func TestNewsPropagatesUpstreamStatus(t *testing.T) {
	r, srv := setupRouter(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected upstream 429 propagated, got %d", resp.Code)
	}
}

func TestNewsUnreachableUpstream(t *testing.T) {
	r, srv := setupRouter(func(w http.ResponseWriter, req *http.Request) {})
	srv.Close() // connection refused from here on

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
