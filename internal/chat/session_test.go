package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/log"
	"github.com/fitcoach/fitcoach/internal/notify"
	"github.com/fitcoach/fitcoach/internal/plan"
	"github.com/fitcoach/fitcoach/internal/testutil"
)

func newTestSession(t *testing.T, gen plan.Generator) (*chat.Session, *notify.Buffer) {
	t.Helper()
	buf := notify.NewBuffer()
	sess, err := chat.NewSession(chat.SessionConfig{
		Generator: gen,
		Notifier:  buf,
		Logger:    log.NewNop(),
	})
	require.NoError(t, err)
	return sess, buf
}

func TestNewSession_SeedsGreeting(t *testing.T) {
	sess, _ := newTestSession(t, testutil.NewMockGenerator())

	msgs := sess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, chat.SenderAI, msgs[0].Sender)
	assert.Equal(t, chat.Greeting, msgs[0].Content)
	assert.False(t, msgs[0].Timestamp.IsZero())
}

func TestNewSession_Validation(t *testing.T) {
	_, err := chat.NewSession(chat.SessionConfig{
		Notifier: notify.NewBuffer(),
		Logger:   log.NewNop(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator")

	_, err = chat.NewSession(chat.SessionConfig{
		Generator: testutil.NewMockGenerator(),
		Logger:    log.NewNop(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notifier")
}

// lenProbeGenerator records the transcript length observed at call time, to
// verify the user message is appended before the generator runs.
type lenProbeGenerator struct {
	sess     *chat.Session
	observed int
}

func (g *lenProbeGenerator) WorkoutPlan(context.Context, plan.WorkoutRequest) (string, error) {
	g.observed = g.sess.Len()
	return "plan", nil
}

func (g *lenProbeGenerator) DietPlan(context.Context, plan.DietRequest) (string, error) {
	g.observed = g.sess.Len()
	return "plan", nil
}

func (g *lenProbeGenerator) CricketTips(context.Context, plan.TipsRequest) (string, error) {
	return "", errors.New("not used")
}

func TestSession_Send_AppendsUserBeforeGenerate(t *testing.T) {
	probe := &lenProbeGenerator{}
	sess, _ := newTestSession(t, probe)
	probe.sess = sess

	reply, ok := sess.Send(context.Background(), "give me a workout")
	require.True(t, ok)

	// Greeting + user message were both in place when the generator ran.
	assert.Equal(t, 2, probe.observed)
	assert.Equal(t, chat.SenderAI, reply.Sender)
	assert.Equal(t, "plan", reply.Content)

	msgs := sess.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.SenderUser, msgs[1].Sender)
	assert.Equal(t, "give me a workout", msgs[1].Content)
}

func TestSession_Send_WhitespaceNoOp(t *testing.T) {
	gen := testutil.NewMockGenerator()
	sess, buf := newTestSession(t, gen)

	for _, input := range []string{"", "   ", "\n\t "} {
		_, ok := sess.Send(context.Background(), input)
		assert.False(t, ok)
	}

	assert.Equal(t, 1, sess.Len())
	assert.Empty(t, gen.Calls())
	assert.Empty(t, buf.Drain())
}

func TestSession_Send_TrimsInput(t *testing.T) {
	sess, _ := newTestSession(t, testutil.NewMockGenerator())

	_, ok := sess.Send(context.Background(), "  need a workout  \n")
	require.True(t, ok)
	assert.Equal(t, "need a workout", sess.Messages()[1].Content)
}

func TestSession_Send_RoutesDiet(t *testing.T) {
	gen := testutil.NewMockGenerator()
	sess, _ := newTestSession(t, gen)

	reply, ok := sess.Send(context.Background(), "plan my nutrition")
	require.True(t, ok)
	assert.Equal(t, gen.DietResponse, reply.Content)

	calls := gen.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "diet", calls[0].Method)
}

func TestSession_Send_FailureAppendsApology(t *testing.T) {
	gen := testutil.NewMockGenerator()
	gen.WorkoutErr = errors.New("model unavailable")
	sess, buf := newTestSession(t, gen)

	reply, ok := sess.Send(context.Background(), "workout please")
	require.True(t, ok)
	assert.Equal(t, chat.SenderAI, reply.Sender)
	assert.Equal(t, chat.Apology, reply.Content)

	// Exactly one apology message appended, exactly one error notice.
	msgs := sess.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.Apology, msgs[2].Content)

	notices := buf.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.KindError, notices[0].Kind)
}

func TestSession_Complete_EmptyResponseVerbatim(t *testing.T) {
	gen := testutil.NewMockGenerator()
	gen.WorkoutResponse = ""
	sess, buf := newTestSession(t, gen)

	reply := sess.Complete(context.Background(), "workout")
	assert.Equal(t, "", reply.Content)
	assert.Equal(t, chat.SenderAI, reply.Sender)
	assert.Empty(t, buf.Drain())
}

func TestSession_Reset(t *testing.T) {
	sess, buf := newTestSession(t, testutil.NewMockGenerator())

	_, ok := sess.Send(context.Background(), "workout one")
	require.True(t, ok)
	_, ok = sess.Send(context.Background(), "meal two")
	require.True(t, ok)
	require.Equal(t, 5, sess.Len())
	buf.Drain()

	sess.Reset()

	msgs := sess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, chat.Greeting, msgs[0].Content)
	assert.Equal(t, chat.SenderAI, msgs[0].Sender)

	notices := buf.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.KindSuccess, notices[0].Kind)
}

func TestSession_MessagesSnapshot(t *testing.T) {
	sess, _ := newTestSession(t, testutil.NewMockGenerator())

	snap := sess.Messages()
	_, ok := sess.Send(context.Background(), "workout")
	require.True(t, ok)

	assert.Len(t, snap, 1)
	assert.Equal(t, 3, sess.Len())
}
