package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/notify"
)

// helpText is the /help block shown under the transcript.
const helpText = `Commands: /help, /new, /topics, /exit
Shortcuts:
  Enter: send message
  Shift+Enter: new line
  Tab: explore topics
  Ctrl+C: clear input
  Ctrl+D: exit
  Up/Down: history
  PgUp/PgDn: scroll`

// View implements tea.Model.
// Uses AltScreen with a viewport for scrollable message history.
func (m *Model) View() tea.View {
	m.viewBuf.Reset()

	// Viewport (scrollable message area) or explore panel
	if m.showExplore {
		_, _ = m.viewBuf.WriteString(m.renderExplorePanel())
	} else {
		_, _ = m.viewBuf.WriteString(m.viewport.View())
	}
	_, _ = m.viewBuf.WriteString("\n")

	_, _ = m.viewBuf.WriteString(m.renderSeparator())
	_, _ = m.viewBuf.WriteString("\n")

	// Input prompt: always visible, always accepts typing. Only submit is
	// gated while the coach responds.
	_, _ = m.viewBuf.WriteString(m.styles.Prompt.Render("> "))
	_, _ = m.viewBuf.WriteString(m.input.View())
	_, _ = m.viewBuf.WriteString("\n")

	_, _ = m.viewBuf.WriteString(m.renderSeparator())
	_, _ = m.viewBuf.WriteString("\n")

	_, _ = m.viewBuf.WriteString(m.renderStatusBar())

	v := tea.NewView(m.viewBuf.String())
	v.AltScreen = true
	return v
}

// rebuildViewportContent reconstructs the viewport content from the session
// transcript and state. Called when messages or state change.
func (m *Model) rebuildViewportContent() {
	var b strings.Builder

	_, _ = b.WriteString(m.styles.RenderBanner())
	_, _ = b.WriteString("\n")
	_, _ = b.WriteString(m.styles.RenderWelcomeTips())
	_, _ = b.WriteString("\n")

	for _, msg := range m.sess.Messages() {
		ts := m.styles.Timestamp.Render(msg.Timestamp.Local().Format("15:04"))
		switch msg.Sender {
		case chat.SenderUser:
			_, _ = b.WriteString(m.styles.User.Render("You> "))
			_, _ = b.WriteString(msg.Content)
		case chat.SenderAI:
			_, _ = b.WriteString(m.styles.Coach.Render("Coach> "))
			_, _ = b.WriteString(m.markdown.Render(msg.Content))
		}
		_, _ = b.WriteString(" ")
		_, _ = b.WriteString(ts)
		_, _ = b.WriteString("\n\n")
	}

	// Typing indicator while waiting for the coach
	if m.state == StateLoading {
		_, _ = b.WriteString(m.spinner.View())
		_, _ = b.WriteString(" Coach is typing...\n\n")
	}

	if m.showHelp {
		_, _ = b.WriteString(m.styles.System.Render(helpText))
		_, _ = b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}

// renderExplorePanel lists quick prompts and topics for selection.
func (m *Model) renderExplorePanel() string {
	var b strings.Builder

	_, _ = b.WriteString(m.styles.PanelTitle.Render("Explore"))
	_, _ = b.WriteString("\n\n")
	_, _ = b.WriteString(m.styles.System.Render("Quick prompts"))
	_, _ = b.WriteString("\n")

	for i, p := range m.prompts {
		_, _ = b.WriteString(m.renderPanelItem(p.Label, i))
	}

	_, _ = b.WriteString("\n")
	_, _ = b.WriteString(m.styles.System.Render("Topics"))
	_, _ = b.WriteString("\n")

	for i, t := range m.topics {
		_, _ = b.WriteString(m.renderPanelItem(t.Label, len(m.prompts)+i))
	}

	// Pad to viewport height so the input row stays in place
	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.vpHeight; i++ {
		_, _ = b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderPanelItem(label string, idx int) string {
	if idx == m.exploreIdx {
		return m.styles.PanelCurrent.Render("  ▸ "+label) + "\n"
	}
	return m.styles.PanelItem.Render("    "+label) + "\n"
}

// renderSeparator returns a horizontal line separator.
func (m *Model) renderSeparator() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.styles.Separator.Render(strings.Repeat("─", width))
}

// renderStatusBar returns the transient notice when one is active, otherwise
// state-appropriate keyboard shortcut help.
func (m *Model) renderStatusBar() string {
	if m.notice != nil {
		if m.notice.Kind == notify.KindError {
			return m.styles.Error.Render(m.notice.Text)
		}
		return m.styles.Success.Render(m.notice.Text)
	}

	var bindings []key.Binding
	switch {
	case m.showExplore:
		bindings = []key.Binding{
			m.keys.Navigate, m.keys.Select, m.keys.Close, m.keys.Quit,
		}
	case m.state == StateLoading:
		bindings = []key.Binding{
			m.keys.ScrollUp, m.keys.ScrollDown, m.keys.Quit,
		}
	default:
		bindings = []key.Binding{
			m.keys.Submit, m.keys.NewLine, m.keys.Explore,
			m.keys.History, m.keys.Cancel, m.keys.Quit,
		}
	}
	return m.help.ShortHelpView(bindings)
}
