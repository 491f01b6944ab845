package session

import (
	"errors"
	"sync"
	"testing"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
)

func emptyGame(t *testing.T, rows, cols int) *engine.Game {
	t.Helper()
	grid, err := domain.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return engine.FromGrid(grid)
}

func TestRebuildDiscardsOldGame(t *testing.T) {
	s := New("abc", emptyGame(t, 2, 2), 1)
	if err := s.Do(func(g *engine.Game, _ int64) error {
		_, err := g.Reveal(domain.Location{Row: 0, Col: 0})
		return err
	}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if m := s.Meta(); m.State != domain.Won || m.Seed != 1 {
		t.Fatalf("meta = %+v, want won with seed 1", m)
	}

	next := emptyGame(t, 3, 4)
	if err := s.Rebuild(func(cur *engine.Game) (*engine.Game, int64, error) {
		if cur.State() != domain.Won {
			t.Errorf("rebuild saw state %v, want won", cur.State())
		}
		return next, 9, nil
	}); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	m := s.Meta()
	if m.State != domain.Playing || m.Seed != 9 {
		t.Fatalf("meta after replace = %+v", m)
	}
	if m.Config != (domain.GameConfig{Rows: 3, Columns: 4}) {
		t.Fatalf("config after replace = %+v", m.Config)
	}
}

func TestRebuildErrorKeepsGame(t *testing.T) {
	s := New("abc", emptyGame(t, 2, 2), 1)
	boom := errors.New("boom")
	err := s.Rebuild(func(*engine.Game) (*engine.Game, int64, error) { return nil, 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if m := s.Meta(); m.Seed != 1 || m.Config != (domain.GameConfig{Rows: 2, Columns: 2}) {
		t.Fatalf("meta after failed rebuild = %+v", m)
	}
}

func TestDoSerialisesAccess(t *testing.T) {
	s := New("abc", emptyGame(t, 20, 20), 1)
	var wg sync.WaitGroup
	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			_ = s.Do(func(g *engine.Game, _ int64) error {
				_, err := g.Reveal(domain.Location{Row: r, Col: r})
				return err
			})
		}(r)
	}
	wg.Wait()
	if m := s.Meta(); m.State != domain.Won {
		t.Fatalf("state = %v, want won", m.State)
	}
}
