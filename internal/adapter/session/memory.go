package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ ports.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore starts a background pruner when pruneInterval is positive.
// Call Close to stop it.
func NewMemoryStore(pruneInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if pruneInterval > 0 {
		go s.pruneLoop(pruneInterval)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Prune removes expired sessions and returns how many were dropped.
func (s *MemoryStore) Prune() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) pruneLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if removed := s.Prune(); removed > 0 {
				zap.L().Debug("pruned expired sessions", zap.Int("count", removed))
			}
		}
	}
}
