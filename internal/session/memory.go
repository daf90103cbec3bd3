package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/clock"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	now      func() time.Time
	logger   *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]model.Session),
		now:      time.Now,
		logger:   logger.Named("memorySessions"),
	}
}

func (m *MemoryStore) Create(_ context.Context, s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.Token]; ok {
		return ErrTokenExists
	}
	m.sessions[s.Token] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return model.Session{}, unauthorized("unknown session")
	}
	if s.Expired(m.now()) {
		delete(m.sessions, token)
		return model.Session{}, unauthorized("session expired")
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict removes expired sessions and returns how many were dropped.
func (m *MemoryStore) Evict() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	evicted := 0
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			evicted++
		}
	}
	return evicted
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) error {
	return clock.Every(ctx, interval, func() {
		if n := m.Evict(); n > 0 {
			m.logger.Debug("evicted expired sessions", zap.Int("count", n))
		}
	})
}
