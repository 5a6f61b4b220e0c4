// Package chat relays messages between connected chat sessions.
package chat

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	"github.com/google/uuid"
)

const DefaultQueueSize = 64

type Message struct {
	Sender string
	Text   string
	SentAt time.Time
}

// Session is one connected participant. Its outbound queue is drained by
// the connection that owns it.
type Session struct {
	id      string
	out     chan Message
	dropped atomic.Int64
}

func (s *Session) ID() string {
	return s.id
}

// Messages is closed when the session leaves the hub.
func (s *Session) Messages() <-chan Message {
	return s.out
}

// Dropped reports how many messages were discarded because the queue was full.
func (s *Session) Dropped() int64 {
	return s.dropped.Load()
}

type Hub struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	queueSize int
	logger    logging.Logger
	now       func() time.Time
}

func NewHub(queueSize int, logger logging.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		sessions:  make(map[string]*Session),
		queueSize: queueSize,
		logger:    logger.With("module", "chat"),
		now:       time.Now,
	}
}

func (h *Hub) Join(ctx context.Context) *Session {
	s := &Session{id: uuid.NewString(), out: make(chan Message, h.queueSize)}

	h.mu.Lock()
	h.sessions[s.id] = s
	n := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info(ctx, "session joined", "session", s.id, "sessions", n)
	return s
}

func (h *Hub) Leave(ctx context.Context, s *Session) {
	h.mu.Lock()
	if _, ok := h.sessions[s.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.sessions, s.id)
	close(s.out)
	n := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info(ctx, "session left", "session", s.id, "sessions", n, "dropped", s.Dropped())
}

// Broadcast stamps msg on behalf of from and queues it for every session,
// the sender included. Full queues drop the message instead of blocking.
func (h *Hub) Broadcast(from *Session, msg Message) Message {
	if msg.Sender == "" {
		msg.Sender = from.id
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = h.now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.sessions {
		select {
		case s.out <- msg:
		default:
			s.dropped.Add(1)
		}
	}
	return msg
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
