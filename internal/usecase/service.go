package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/session"
	"svw.info/minesweeper/internal/validator"
	"svw.info/minesweeper/internal/viewmodel"
)

type Service struct {
	Generator ports.Generator
	Store     session.Store
	Log       logrus.FieldLogger
	MaxCells  int // largest board accepted, 0 for no limit
}

func NewService(g ports.Generator, st session.Store, log logrus.FieldLogger) *Service {
	return &Service{Generator: g, Store: st, Log: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) ready() error {
	if u.Generator == nil || u.Store == nil || u.Log == nil {
		return errNotConfigured
	}
	return nil
}

// pickSeed returns *seed, or a time based seed when none was given.
func pickSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func (u *Service) build(cfg domain.GameConfig, seed *int64) (*engine.Game, int64, error) {
	if u.MaxCells > 0 {
		if err := validator.Size(cfg, u.MaxCells); err != nil {
			return nil, 0, err
		}
	}
	s := pickSeed(seed)
	g, err := engine.New(cfg, u.Generator, generator.NewRand(s))
	if err != nil {
		return nil, 0, err
	}
	return g, s, nil
}

// NewGame starts and stores a game. A nil seed picks one from the clock.
func (u *Service) NewGame(ctx context.Context, cfg domain.GameConfig, seed *int64) (viewmodel.GameView, error) {
	if err := u.ready(); err != nil {
		return viewmodel.GameView{}, err
	}
	g, s, err := u.build(cfg, seed)
	if err != nil {
		return viewmodel.GameView{}, err
	}
	sess := session.New(uuid.NewString(), g, s)
	if err := u.Store.Save(ctx, sess); err != nil {
		return viewmodel.GameView{}, err
	}
	u.Log.WithFields(logrus.Fields{
		"game":    sess.ID,
		"rows":    cfg.Rows,
		"columns": cfg.Columns,
		"bombs":   cfg.Bombs,
		"seed":    s,
	}).Info("game created")
	return viewmodel.New(sess.ID, g, s), nil
}

// Reveal applies one cell activation and returns the updated view.
func (u *Service) Reveal(ctx context.Context, id string, loc domain.Location) (viewmodel.GameView, error) {
	if err := u.ready(); err != nil {
		return viewmodel.GameView{}, err
	}
	sess, err := u.Store.Load(ctx, id)
	if err != nil {
		return viewmodel.GameView{}, err
	}
	var view viewmodel.GameView
	err = sess.Do(func(g *engine.Game, seed int64) error {
		prev := g.State()
		st, err := g.Reveal(loc)
		if err != nil {
			return err
		}
		if st != prev {
			u.Log.WithFields(logrus.Fields{
				"game": id,
				"row":  loc.Row,
				"col":  loc.Col,
			}).Infof("game %s", st)
		}
		view = viewmodel.New(id, g, seed)
		return nil
	})
	return view, err
}

// View returns the current board without changing it.
func (u *Service) View(ctx context.Context, id string) (viewmodel.GameView, error) {
	if err := u.ready(); err != nil {
		return viewmodel.GameView{}, err
	}
	sess, err := u.Store.Load(ctx, id)
	if err != nil {
		return viewmodel.GameView{}, err
	}
	var view viewmodel.GameView
	err = sess.Do(func(g *engine.Game, seed int64) error {
		view = viewmodel.New(id, g, seed)
		return nil
	})
	return view, err
}

// Board is a partial game config. Nil fields keep the value being replaced.
type Board struct {
	Rows    *int
	Columns *int
	Bombs   *int
}

// Apply fills the unset fields of b from base.
func (b Board) Apply(base domain.GameConfig) domain.GameConfig {
	if b.Rows != nil {
		base.Rows = *b.Rows
	}
	if b.Columns != nil {
		base.Columns = *b.Columns
	}
	if b.Bombs != nil {
		base.Bombs = *b.Bombs
	}
	return base
}

// Restart replaces the game under id with a fresh board. Fields left unset
// in board keep the current dimensions and bomb count.
func (u *Service) Restart(ctx context.Context, id string, board Board, seed *int64) (viewmodel.GameView, error) {
	if err := u.ready(); err != nil {
		return viewmodel.GameView{}, err
	}
	sess, err := u.Store.Load(ctx, id)
	if err != nil {
		return viewmodel.GameView{}, err
	}
	var view viewmodel.GameView
	err = sess.Rebuild(func(cur *engine.Game) (*engine.Game, int64, error) {
		g, s, err := u.build(board.Apply(cur.Config()), seed)
		if err != nil {
			return nil, 0, err
		}
		view = viewmodel.New(id, g, s)
		return g, s, nil
	})
	if err != nil {
		return viewmodel.GameView{}, err
	}
	u.Log.WithFields(logrus.Fields{"game": id, "seed": view.Seed}).Info("game restarted")
	return view, nil
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if err := u.ready(); err != nil {
		return err
	}
	return u.Store.Delete(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]session.Meta, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	return u.Store.List(ctx)
}
