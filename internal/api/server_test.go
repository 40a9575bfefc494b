package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/fitcoach/fitcoach/internal/log"
)

func TestNewServer_Validation(t *testing.T) {
	if _, err := NewServer(ServerConfig{Logger: log.NewNop()}); err == nil {
		t.Error("Expected error for missing session store")
	}
	if _, err := NewServer(ServerConfig{Sessions: NewSessionStore(nil)}); err == nil {
		t.Error("Expected error for missing logger")
	}
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	handler := requestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := w.Header().Get("X-Request-ID")
	if got == "" {
		t.Fatal("requestIDMiddleware() did not set X-Request-ID header")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("requestIDMiddleware() X-Request-ID = %q, not a valid UUID", got)
	}
}

func TestRequestIDMiddleware_ReusesValid(t *testing.T) {
	handler := requestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	want := uuid.New().String()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-ID", want)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-ID"); got != want {
		t.Errorf("requestIDMiddleware(valid) X-Request-ID = %q, want %q", got, want)
	}
}

func TestRequestIDMiddleware_ReplacesInvalid(t *testing.T) {
	handler := requestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-ID", "not-a-valid-uuid")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	got := w.Header().Get("X-Request-ID")
	if got == "not-a-valid-uuid" {
		t.Error("requestIDMiddleware(invalid) should not reuse invalid X-Request-ID")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("requestIDMiddleware(invalid) X-Request-ID = %q, not a valid UUID", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := recoveryMiddleware(log.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
