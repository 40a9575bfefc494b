package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fitcoach/fitcoach/internal/log"
	"github.com/fitcoach/fitcoach/internal/notify"
	"github.com/fitcoach/fitcoach/internal/plan"
)

// SessionConfig contains all required dependencies for a Session.
type SessionConfig struct {
	Generator  plan.Generator
	Notifier   notify.Notifier
	Logger     log.Logger
	Classifier *Classifier // nil uses DefaultRouting

	// Now overrides the timestamp source. Tests only; nil uses time.Now.
	Now func() time.Time
}

func (cfg SessionConfig) validate() error {
	if cfg.Generator == nil {
		return errors.New("generator is required")
	}
	if cfg.Notifier == nil {
		return errors.New("notifier is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Session owns one conversation: an append-only transcript plus the
// submission pipeline that exchanges user text for generated responses.
//
// The transcript is never reordered or edited; Reset replaces it wholesale
// with a fresh greeting. Methods are mutex-guarded because the HTTP surface
// calls them concurrently; the TUI drives a Session from its single event
// loop. The generator call itself runs outside the lock, so two overlapping
// submissions append their results in whichever order they resolve.
type Session struct {
	gen        plan.Generator
	notifier   notify.Notifier
	logger     log.Logger
	classifier *Classifier
	now        func() time.Time

	mu       sync.Mutex
	messages []Message
}

// NewSession creates a session seeded with the greeting message.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	classifier := cfg.Classifier
	if classifier == nil {
		classifier = NewClassifier(DefaultRouting())
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		gen:        cfg.Generator,
		notifier:   cfg.Notifier,
		logger:     cfg.Logger,
		classifier: classifier,
		now:        now,
	}
	s.messages = []Message{s.greeting()}
	return s, nil
}

func (s *Session) greeting() Message {
	return Message{Content: Greeting, Sender: SenderAI, Timestamp: s.now()}
}

// Messages returns a snapshot copy of the transcript in display order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the current transcript length.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// AppendUser appends a user message with the trimmed content and the current
// timestamp. Whitespace-only input is a silent no-op and returns false.
// The append happens synchronously, before any generator call.
func (s *Session) AppendUser(text string) (Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, false
	}
	msg := Message{Content: trimmed, Sender: SenderUser, Timestamp: s.now()}
	s.append(msg)
	return msg, true
}

func (s *Session) append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Complete classifies the text, runs exactly one generator call, and appends
// the outcome: the response text on success, the fixed apology on failure.
// Errors are absorbed here — the caller always gets the appended AI message.
// Failure additionally emits a transient error notice.
func (s *Session) Complete(ctx context.Context, text string) Message {
	req := s.classifier.Classify(text)

	var (
		response string
		err      error
	)
	switch {
	case req.Workout != nil:
		response, err = s.gen.WorkoutPlan(ctx, *req.Workout)
	case req.Diet != nil:
		response, err = s.gen.DietPlan(ctx, *req.Diet)
	}

	if err != nil {
		s.logger.Warn("generation failed", "error", err)
		s.notifier.Error(noticeGenerateErr)
		response = Apology
	}

	// Successful responses are rendered verbatim, even when empty.
	msg := Message{Content: response, Sender: SenderAI, Timestamp: s.now()}
	s.append(msg)
	return msg
}

// Send runs the full submission pipeline: append the user message, then
// complete the exchange. Whitespace-only input is a no-op with ok=false and
// no generator call.
func (s *Session) Send(ctx context.Context, text string) (Message, bool) {
	userMsg, ok := s.AppendUser(text)
	if !ok {
		return Message{}, false
	}
	return s.Complete(ctx, userMsg.Content), true
}

// Reset replaces the transcript with exactly one fresh greeting and emits a
// success notice.
func (s *Session) Reset() {
	s.mu.Lock()
	s.messages = []Message{s.greeting()}
	s.mu.Unlock()
	s.notifier.Success(noticeReset)
}
