package chat

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }

func TestHub_BroadcastReachesEverySession(t *testing.T) {
	ctx := context.Background()
	h := NewHub(4, nopLogger{})
	fixed := time.Unix(1700000000, 0)
	h.now = func() time.Time { return fixed }

	a := h.Join(ctx)
	b := h.Join(ctx)
	require.Equal(t, 2, h.Len())

	sent := h.Broadcast(a, Message{Text: "hi"})
	assert.Equal(t, Message{Sender: a.ID(), Text: "hi", SentAt: fixed}, sent)

	for _, s := range []*Session{a, b} {
		select {
		case got := <-s.Messages():
			assert.Equal(t, sent, got)
		default:
			t.Fatalf("session %s got nothing", s.ID())
		}
	}
}

func TestHub_KeepsExplicitSenderAndTime(t *testing.T) {
	h := NewHub(1, nopLogger{})
	a := h.Join(context.Background())

	at := time.Unix(42, 0)
	got := h.Broadcast(a, Message{Sender: "payroll-bot", Text: "x", SentAt: at})
	assert.Equal(t, "payroll-bot", got.Sender)
	assert.Equal(t, at, got.SentAt)
}

func TestHub_FullQueueDrops(t *testing.T) {
	h := NewHub(2, nopLogger{})
	a := h.Join(context.Background())

	for i := 0; i < 5; i++ {
		h.Broadcast(a, Message{Text: "m"})
	}
	assert.Len(t, a.Messages(), 2)
	assert.Equal(t, int64(3), a.Dropped())
}

func TestHub_LeaveClosesQueue(t *testing.T) {
	ctx := context.Background()
	h := NewHub(0, nopLogger{})
	a := h.Join(ctx)
	b := h.Join(ctx)

	h.Leave(ctx, a)
	h.Leave(ctx, a)
	assert.Equal(t, 1, h.Len())

	_, open := <-a.Messages()
	assert.False(t, open)

	h.Broadcast(b, Message{Text: "after"})
	assert.Len(t, b.Messages(), 1)
}
