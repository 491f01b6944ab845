package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/session"
)

// Memory keeps sessions for the lifetime of the process.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func New() *Memory { return &Memory{sessions: make(map[string]*session.Session)} }

func (m *Memory) Save(ctx context.Context, s *session.Session) error {
	if s == nil || strings.TrimSpace(s.ID) == "" {
		return errors.New("invalid session: missing ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *Memory) Load(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
	}
	return s, nil
}

// List returns every session, oldest first.
func (m *Memory) List(ctx context.Context) ([]session.Meta, error) {
	m.mu.RLock()
	all := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.RUnlock()

	out := make([]session.Meta, 0, len(all))
	for _, s := range all {
		out = append(out, s.Meta())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}
