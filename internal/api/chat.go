package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/log"
)

// maxMessageBytes bounds the request body to keep prompts reasonable.
const maxMessageBytes = 16 << 10

// chatHandler serves the chat endpoints against per-cookie sessions.
type chatHandler struct {
	logger   log.Logger
	sessions *SessionStore
}

type sendRequest struct {
	Message string `json:"message"`
}

type sendResponse struct {
	Reply chat.Message `json:"reply"`
}

type messagesResponse struct {
	Messages []chat.Message `json:"messages"`
}

// send handles POST /api/v1/chat: run one exchange and return the coach
// reply. Generation failures still return 200 with the apology reply, the
// same behavior the TUI shows.
func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req sendRequest
	body := io.LimitReader(r.Body, maxMessageBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be JSON", h.logger)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "empty_message", "message must not be empty", h.logger)
		return
	}

	reply, ok := sess.Send(r.Context(), req.Message)
	if !ok {
		writeError(w, http.StatusBadRequest, "empty_message", "message must not be empty", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sendResponse{Reply: reply}, h.logger)
}

// messages handles GET /api/v1/chat/messages: the full transcript.
func (h *chatHandler) messages(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: sess.Messages()}, h.logger)
}

// reset handles POST /api/v1/chat/reset: replace the transcript with a
// fresh greeting and return it.
func (h *chatHandler) reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Reset()
	writeJSON(w, http.StatusOK, messagesResponse{Messages: sess.Messages()}, h.logger)
}

// session resolves the caller's session from the sid cookie, provisioning
// both cookie and session on first visit.
func (h *chatHandler) session(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	id, created := sessionID(r)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		h.logger.Error("session creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "session_error", "could not create session", h.logger)
		return nil, false
	}
	return sess, true
}

// sessionCookie is the session identity cookie name.
const sessionCookie = "fitcoach_sid"

// sessionID extracts the session UUID from the sid cookie. Returns a fresh
// UUID and created=true when the cookie is absent or invalid.
func sessionID(r *http.Request) (id uuid.UUID, created bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c == nil {
		return uuid.New(), true
	}
	id, err = uuid.Parse(c.Value)
	if err != nil {
		return uuid.New(), true
	}
	return id, false
}
