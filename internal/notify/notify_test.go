package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/fitcoach/internal/log"
)

func TestBuffer_DrainReturnsAndClears(t *testing.T) {
	b := NewBuffer()
	b.Success("chat reset")
	b.Error("generation failed")

	notices := b.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, KindSuccess, notices[0].Kind)
	assert.Equal(t, "chat reset", notices[0].Text)
	assert.Equal(t, KindError, notices[1].Kind)

	assert.Empty(t, b.Drain(), "second drain should be empty")
}

func TestBuffer_ConcurrentAdds(t *testing.T) {
	b := NewBuffer()
	done := make(chan struct{})
	for range 10 {
		go func() {
			b.Success("ok")
			done <- struct{}{}
		}()
	}
	for range 10 {
		<-done
	}
	assert.Len(t, b.Drain(), 10)
}

func TestLog_WritesNotices(t *testing.T) {
	var buf bytes.Buffer
	n := &Log{Logger: log.NewWithWriter(&buf, log.Config{})}

	n.Success("plan ready")
	n.Error("something broke")

	out := buf.String()
	assert.Contains(t, out, "plan ready")
	assert.Contains(t, out, "something broke")
}
