package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/log"
	"github.com/fitcoach/fitcoach/internal/notify"
	"github.com/fitcoach/fitcoach/internal/plan"
	"github.com/fitcoach/fitcoach/internal/testutil"
)

// newTestServer builds a server over sessions backed by the given generator.
func newTestServer(t *testing.T, gen plan.Generator) *httptest.Server {
	t.Helper()
	logger := log.NewNop()
	store := NewSessionStore(func() (*chat.Session, error) {
		return chat.NewSession(chat.SessionConfig{
			Generator: gen,
			Notifier:  &notify.Log{Logger: logger},
			Logger:    logger,
		})
	})

	srv, err := NewServer(ServerConfig{Logger: logger, Sessions: store})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON issues a request with optional body and cookies. Cookies are passed
// explicitly so tests control which session each request lands in.
func doJSON(t *testing.T, method, url, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestChat_Send(t *testing.T) {
	gen := testutil.NewMockGenerator()
	ts := newTestServer(t, gen)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", `{"message":"I need a workout"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(resp.Cookies()) == 0 {
		t.Error("first request should set the sid cookie")
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Reply.Sender != chat.SenderAI {
		t.Errorf("reply sender = %q, want ai", body.Reply.Sender)
	}
	if body.Reply.Content != gen.WorkoutResponse {
		t.Errorf("reply content = %q, want %q", body.Reply.Content, gen.WorkoutResponse)
	}
}

func TestChat_SendEmptyMessage(t *testing.T) {
	gen := testutil.NewMockGenerator()
	ts := newTestServer(t, gen)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `not json`} {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", body, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, resp.StatusCode)
		}
	}
	if len(gen.Calls()) != 0 {
		t.Error("generator should not be called for rejected input")
	}
}

func TestChat_SendFailureReturnsApology(t *testing.T) {
	gen := testutil.NewMockGenerator()
	gen.WorkoutErr = errors.New("model unavailable")
	ts := newTestServer(t, gen)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", `{"message":"workout please"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (failures surface as the apology reply)", resp.StatusCode)
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Reply.Content != chat.Apology {
		t.Errorf("reply = %q, want apology", body.Reply.Content)
	}
}

func TestChat_TranscriptAcrossRequests(t *testing.T) {
	ts := newTestServer(t, testutil.NewMockGenerator())

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", `{"message":"workout one"}`, nil)
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected sid cookie")
	}

	doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", `{"message":"meal two"}`, cookies)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/v1/chat/messages", "", cookies)
	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// Greeting + 2 exchanges of 2 messages each
	if len(body.Messages) != 5 {
		t.Fatalf("transcript length = %d, want 5", len(body.Messages))
	}
	if body.Messages[0].Content != chat.Greeting {
		t.Errorf("first message = %q, want greeting", body.Messages[0].Content)
	}
}

func TestChat_Reset(t *testing.T) {
	ts := newTestServer(t, testutil.NewMockGenerator())

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat", `{"message":"workout"}`, nil)
	cookies := resp.Cookies()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/reset", "", cookies)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Messages) != 1 || body.Messages[0].Content != chat.Greeting {
		t.Errorf("reset transcript = %+v, want single greeting", body.Messages)
	}
}

func TestTopics(t *testing.T) {
	ts := newTestServer(t, testutil.NewMockGenerator())

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/v1/topics", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body topicsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Topics) == 0 || len(body.QuickPrompts) == 0 {
		t.Error("topics and quick prompts should be non-empty")
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testutil.NewMockGenerator())

	resp := doJSON(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
