package notify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func post(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	New().RegisterRoutes(r)

	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/sms", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestShareLink(t *testing.T) {
	resp := post(t, map[string]string{"no": "9876543210", "msg": "need help near the underpass"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	want := "https://wa.me/919876543210?text=need+help+near+the+underpass"
	if body["whatsappLink"] != want {
		t.Fatalf("expected %q, got %q", want, body["whatsappLink"])
	}
}

func TestShareLinkMissingNumber(t *testing.T) {
	if resp := post(t, map[string]string{"msg": "hello"}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
