// Package tui provides the Bubble Tea terminal interface for fitcoach.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/notify"
)

// State represents the TUI state machine.
type State int

// TUI state machine states.
const (
	StateInput   State = iota // Awaiting user input
	StateLoading              // Waiting for the coach response
)

// maxHistory caps command history entries.
const maxHistory = 100

// Layout constants for viewport height calculation.
const (
	separatorLines = 2 // Two separator lines (above and below input)
	helpLines      = 1 // Help bar height
	promptLines    = 1 // Prompt prefix line
	minViewport    = 3 // Minimum viewport height
)

// noticeTTL is how long a transient notice stays in the status bar.
const noticeTTL = 4 * time.Second

// Model is the Bubble Tea model for the fitcoach terminal interface.
type Model struct {
	// Input (textarea for multi-line support, Shift+Enter for newline)
	input      textarea.Model
	history    []string
	historyIdx int

	// State
	state     State
	lastCtrlC time.Time

	// Output
	spinner spinner.Model
	viewBuf strings.Builder // Reusable buffer for View() to reduce allocations

	// Scrollable message viewport
	viewport viewport.Model

	// Help bar for keyboard shortcuts
	help help.Model
	keys keyMap

	// Transient notice banner. noticeSeq invalidates stale expiry timers
	// when a newer notice replaces the current one.
	notice    *notify.Notice
	noticeSeq int

	// Help text block under the transcript (/help toggles)
	showHelp bool

	// Explore panel (Tab toggles; lists quick prompts then topics)
	showExplore bool
	prompts     []chat.QuickPrompt
	topics      []chat.Topic
	exploreIdx  int

	// Dependencies
	sess    *chat.Session
	notices *notify.Buffer

	ctx       context.Context
	ctxCancel context.CancelFunc // For canceling in-flight generation on exit

	// Dimensions
	width    int
	height   int
	vpHeight int

	// Styles
	styles Styles

	// Markdown rendering (nil = graceful degradation to plain text)
	markdown *markdownRenderer
}

// New creates a Model for chat interaction.
// notices must be the same Buffer wired into the session, so the model can
// drain the notices each exchange emits.
//
// IMPORTANT: ctx MUST be the same context passed to tea.WithContext()
// to ensure consistent cancellation behavior.
func New(ctx context.Context, sess *chat.Session, notices *notify.Buffer) (*Model, error) {
	if sess == nil {
		return nil, errors.New("tui.New: session is required")
	}
	if notices == nil {
		return nil, errors.New("tui.New: notice buffer is required")
	}
	if ctx == nil {
		return nil, errors.New("tui.New: ctx is required")
	}

	ctx, cancel := context.WithCancel(ctx)

	// Enter submits, Shift+Enter adds newline (default behavior)
	ta := textarea.New()
	ta.Placeholder = "Ask your coach anything..."
	ta.SetHeight(1)  // Single line by default
	ta.SetWidth(120) // Updated on WindowSizeMsg
	ta.MaxWidth = 0
	ta.ShowLineNumbers = false

	// Minimal styling: no backgrounds, just text
	cleanStyle := textarea.StyleState{
		Base:        lipgloss.NewStyle(),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle(),
	}
	ta.SetStyles(textarea.Styles{
		Focused: cleanStyle,
		Blurred: cleanStyle,
	})
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	// Viewport's built-in key handling is disabled; keys are routed
	// explicitly in handleKey to avoid conflicts with the textarea.
	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	vp.MouseWheelEnabled = true
	vp.SoftWrap = true
	vp.KeyMap = viewport.KeyMap{}

	h := help.New()

	m := &Model{
		sess:      sess,
		notices:   notices,
		ctx:       ctx,
		ctxCancel: cancel,
		input:     ta,
		spinner:   sp,
		viewport:  vp,
		help:      h,
		keys:      newKeyMap(),
		styles:    DefaultStyles(),
		history:   make([]string, 0, maxHistory),
		prompts:   chat.QuickPrompts(),
		topics:    chat.Topics(),
		markdown:  newMarkdownRenderer(80),
		width:     80, // Default dimensions until WindowSizeMsg arrives
		vpHeight:  20,
	}
	m.rebuildViewportContent()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.input.Focus(),
	)
}
