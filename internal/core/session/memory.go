package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	userID  int64
	expires time.Time
}

// Memory is the single-process store. Expired entries are dropped lazily on
// lookup and swept on every save.
type Memory struct {
	mu  sync.Mutex
	m   map[string]entry
	Now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]entry), Now: time.Now}
}

func (s *Memory) Save(_ context.Context, sid string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	for k, e := range s.m {
		if !now.Before(e.expires) {
			delete(s.m, k)
		}
	}
	s.m[sid] = entry{userID: userID, expires: now.Add(ttl)}
	return nil
}

func (s *Memory) Lookup(_ context.Context, sid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[sid]
	if !ok {
		return 0, ErrNotFound
	}
	if !s.Now().Before(e.expires) {
		delete(s.m, sid)
		return 0, ErrNotFound
	}
	return e.userID, nil
}

func (s *Memory) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
	return nil
}
