package session

import (
	"context"
	"sync"
	"time"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
)

// Session is one hosted game. Every access to the engine goes through mu,
// since engine.Game is not safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	game *engine.Game
	seed int64
}

// Meta is a lightweight listing entry.
type Meta struct {
	ID        string            `json:"id"`
	Config    domain.GameConfig `json:"config"`
	State     domain.GameState  `json:"state"`
	Seed      int64             `json:"seed"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Store keeps live sessions by ID.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]Meta, error)
	Delete(ctx context.Context, id string) error
}

func New(id string, game *engine.Game, seed int64) *Session {
	return &Session{ID: id, CreatedAt: time.Now(), game: game, seed: seed}
}

// Do runs fn with exclusive access to the game.
func (s *Session) Do(fn func(g *engine.Game, seed int64) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game, s.seed)
}

// Rebuild swaps in the game returned by fn while holding the lock, so the
// current game fn sees is the one it replaces. On error the session is
// left untouched.
func (s *Session) Rebuild(fn func(cur *engine.Game) (*engine.Game, int64, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, seed, err := fn(s.game)
	if err != nil {
		return err
	}
	s.game = game
	s.seed = seed
	return nil
}

func (s *Session) Meta() Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Meta{
		ID:        s.ID,
		Config:    s.game.Config(),
		State:     s.game.State(),
		Seed:      s.seed,
		CreatedAt: s.CreatedAt,
	}
}
