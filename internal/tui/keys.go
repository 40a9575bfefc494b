package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/fitcoach/fitcoach/internal/chat"
)

// Slash command constants.
const (
	cmdHelp   = "/help"
	cmdNew    = "/new"
	cmdTopics = "/topics"
	cmdExit   = "/exit"
	cmdQuit   = "/quit"
)

// keyMap holds key bindings for help bar display.
type keyMap struct {
	Submit     key.Binding
	NewLine    key.Binding
	History    key.Binding
	Explore    key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Navigate   key.Binding
	Select     key.Binding
	Close      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		NewLine:    key.NewBinding(key.WithKeys("shift+enter"), key.WithHelp("s+enter", "newline")),
		History:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
		Explore:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "explore")),
		Cancel:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "clear")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "exit")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Navigate:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:      key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "close")),
	}
}

//nolint:gocyclo // Keyboard handler requires branching for all key combinations
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := msg.Key()

	if k.Mod&tea.ModCtrl != 0 {
		switch k.Code {
		case 'c':
			return m.handleCtrlC()
		case 'd':
			return m, m.cleanup()
		}
	}

	// Explore panel captures navigation keys while open
	if m.showExplore {
		return m.handleExploreKey(k)
	}

	switch k.Code {
	case tea.KeyEnter:
		// Enter without Shift = submit; Shift+Enter = newline (textarea).
		// Submit is gated on loading: one exchange at a time.
		if m.state == StateInput && k.Mod&tea.ModShift == 0 {
			return m.handleSubmit()
		}

	case tea.KeyTab:
		m.showExplore = true
		m.exploreIdx = 0
		return m, nil

	case tea.KeyUp:
		if m.state == StateInput && m.input.Line() == 0 {
			return m.navigateHistory(-1)
		}

	case tea.KeyDown:
		if m.state == StateInput && m.input.Line() == m.input.LineCount()-1 {
			return m.navigateHistory(1)
		}

	case tea.KeyPgUp:
		m.viewport.PageUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.PageDown()
		return m, nil
	}

	// Pass keys to textarea for typing - typing stays available while the
	// coach is responding, only submit is gated.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleExploreKey drives the explore panel selection.
func (m *Model) handleExploreKey(k tea.Key) (tea.Model, tea.Cmd) {
	switch k.Code {
	case tea.KeyEscape, tea.KeyTab:
		m.showExplore = false
		return m, nil

	case tea.KeyUp:
		if m.exploreIdx > 0 {
			m.exploreIdx--
		}
		return m, nil

	case tea.KeyDown:
		if m.exploreIdx < len(m.prompts)+len(m.topics)-1 {
			m.exploreIdx++
		}
		return m, nil

	case tea.KeyEnter:
		if m.state != StateInput {
			return m, nil
		}
		m.showExplore = false
		if m.exploreIdx < len(m.prompts) {
			// Quick prompts go through the normal submit path
			return m, m.submitText(m.prompts[m.exploreIdx].Text)
		}
		return m.selectTopic(m.topics[m.exploreIdx-len(m.prompts)])
	}

	return m, nil
}

// selectTopic submits a topic from the explore panel. The panel appends the
// user message itself AND submits through the pipeline, which appends it
// again: every topic selection shows two identical user bubbles. Long-shipped
// behavior users link to; kept intentionally, covered by a regression test.
func (m *Model) selectTopic(topic chat.Topic) (tea.Model, tea.Cmd) {
	m.sess.AppendUser(topic.Text)
	return m, m.submitText(topic.Text)
}

func (m *Model) handleCtrlC() (tea.Model, tea.Cmd) {
	now := time.Now()

	// Double Ctrl+C within 1 second = quit
	if now.Sub(m.lastCtrlC) < time.Second {
		return m, m.cleanup()
	}
	m.lastCtrlC = now

	if m.showExplore {
		m.showExplore = false
		return m, nil
	}
	m.input.Reset()
	return m, nil
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return m, nil
	}

	if strings.HasPrefix(query, "/") {
		return m.handleSlashCommand(query)
	}

	// Add to history (enforce maxHistory cap)
	m.history = append(m.history, query)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.historyIdx = len(m.history)

	return m, m.submitText(query)
}

// submitText runs the submission pipeline for the given text: append the
// user message synchronously, clear the draft, enter loading, and kick off
// the exchange.
func (m *Model) submitText(text string) tea.Cmd {
	if m.state != StateInput {
		return nil
	}
	userMsg, ok := m.sess.AppendUser(text)
	if !ok {
		return nil
	}

	// Optimistic clear: the draft resets before the response arrives
	m.input.Reset()
	m.state = StateLoading
	m.rebuildViewportContent()
	m.viewport.GotoBottom()

	return tea.Batch(
		m.spinner.Tick,
		m.completeCmd(userMsg.Content),
	)
}

func (m *Model) handleSlashCommand(cmd string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	switch cmd {
	case cmdHelp:
		m.showHelp = !m.showHelp
		m.rebuildViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case cmdNew:
		m.sess.Reset()
		noticeCmd := m.drainNotices()
		m.rebuildViewportContent()
		m.viewport.GotoBottom()
		return m, noticeCmd

	case cmdTopics:
		m.showExplore = true
		m.exploreIdx = 0
		return m, nil

	case cmdExit, cmdQuit:
		return m, m.cleanup()

	default:
		m.notices.Error("Unknown command: " + cmd)
		noticeCmd := m.drainNotices()
		return m, noticeCmd
	}
}

func (m *Model) navigateHistory(delta int) (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}

	m.historyIdx += delta

	if m.historyIdx < 0 {
		m.historyIdx = 0
	}
	if m.historyIdx > len(m.history) {
		m.historyIdx = len(m.history)
	}

	if m.historyIdx == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}

	return m, nil
}

// cleanup cancels any in-flight generation and returns the quit command.
func (m *Model) cleanup() tea.Cmd {
	if m.ctxCancel != nil {
		m.ctxCancel()
		m.ctxCancel = nil
	}
	return tea.Quit
}
