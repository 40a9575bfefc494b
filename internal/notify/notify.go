// Package notify defines the transient notification surface used by the chat
// pipeline. Notifications are fire-and-forget: callers never consume a return
// value, and failures to display are silently ignored.
//
// The interface is injected so the submission pipeline stays testable without
// a live UI; the TUI renders notices as a status-bar banner, the ask/serve
// surfaces log them.
package notify

import (
	"sync"

	"github.com/fitcoach/fitcoach/internal/log"
)

// Kind distinguishes notice severities.
type Kind int

// Notice severities.
const (
	KindSuccess Kind = iota
	KindError
)

// Notice is a single transient notification.
type Notice struct {
	Kind Kind
	Text string
}

// Notifier receives fire-and-forget user-visible notices.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// Log is a Notifier backed by structured logging. Used by the one-shot and
// HTTP surfaces where there is no transient banner to show.
type Log struct {
	Logger log.Logger
}

// Success logs an informational notice.
func (l *Log) Success(text string) {
	l.Logger.Info("notice", "kind", "success", "text", text)
}

// Error logs an error notice.
func (l *Log) Error(text string) {
	l.Logger.Warn("notice", "kind", "error", "text", text)
}

// Buffer is a Notifier that accumulates notices in memory. The TUI drains it
// after each pipeline call to display the latest notice; tests use it to
// assert which notices were emitted.
//
// Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	notices []Notice
}

// NewBuffer creates an empty notice buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Success records a success notice.
func (b *Buffer) Success(text string) {
	b.add(Notice{Kind: KindSuccess, Text: text})
}

// Error records an error notice.
func (b *Buffer) Error(text string) {
	b.add(Notice{Kind: KindError, Text: text})
}

func (b *Buffer) add(n Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
}

// Drain returns all accumulated notices and clears the buffer.
func (b *Buffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

// Compile-time interface verification.
var (
	_ Notifier = (*Log)(nil)
	_ Notifier = (*Buffer)(nil)
)
