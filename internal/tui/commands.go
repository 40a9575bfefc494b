package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// replyMsg signals that the in-flight exchange appended its coach message to
// the session. No payload: the viewport is rebuilt from the session
// transcript, which already holds the result (response or apology).
type replyMsg struct{}

// noticeExpireMsg clears the status-bar notice whose sequence number matches.
type noticeExpireMsg struct {
	seq int
}

// completeCmd runs the exchange for already-appended user text.
// The session absorbs generation errors into the transcript, so this command
// always resolves to replyMsg.
func (m *Model) completeCmd(text string) tea.Cmd {
	sess, ctx := m.sess, m.ctx
	return func() tea.Msg {
		sess.Complete(ctx, text)
		return replyMsg{}
	}
}

// expireNoticeCmd schedules removal of the notice with the given sequence.
func expireNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

// drainNotices pulls accumulated notices from the buffer, shows the most
// recent one in the status bar, and schedules its expiry.
func (m *Model) drainNotices() tea.Cmd {
	notices := m.notices.Drain()
	if len(notices) == 0 {
		return nil
	}
	latest := notices[len(notices)-1]
	m.notice = &latest
	m.noticeSeq++
	return expireNoticeCmd(m.noticeSeq)
}
