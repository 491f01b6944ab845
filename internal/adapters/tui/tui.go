package tui

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/ports"
)

// Action is what a key press asks the app to do.
type Action int

const (
	None Action = iota
	Move
	Reveal
	NewGame
	Quit
)

// Cursor is the selected cell.
type Cursor struct{ Row, Col int }

// HandleKey maps a key to an action and the resulting cursor, clamped to the board.
func HandleKey(key tcell.Key, ch rune, cur Cursor, rows, cols int) (Cursor, Action) {
	move := func(dr, dc int) (Cursor, Action) {
		next := Cursor{Row: clamp(cur.Row+dr, rows), Col: clamp(cur.Col+dc, cols)}
		return next, Move
	}
	switch key {
	case tcell.KeyUp:
		return move(-1, 0)
	case tcell.KeyDown:
		return move(1, 0)
	case tcell.KeyLeft:
		return move(0, -1)
	case tcell.KeyRight:
		return move(0, 1)
	case tcell.KeyEnter:
		return cur, Reveal
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cur, Quit
	case tcell.KeyRune:
		switch ch {
		case 'k':
			return move(-1, 0)
		case 'j':
			return move(1, 0)
		case 'h':
			return move(0, -1)
		case 'l':
			return move(0, 1)
		case ' ':
			return cur, Reveal
		case 'n':
			return cur, NewGame
		case 'q':
			return cur, Quit
		}
	}
	return cur, None
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// App drives one terminal session. Games are dealt from a single seeded
// source so a fixed seed replays the same sequence of boards.
type App struct {
	screen tcell.Screen
	cfg    domain.GameConfig
	gen    ports.Generator
	rng    *rand.Rand
	log    logrus.FieldLogger

	game *engine.Game
	cur  Cursor
}

func New(screen tcell.Screen, cfg domain.GameConfig, gen ports.Generator, rng *rand.Rand, log logrus.FieldLogger) (*App, error) {
	a := &App{screen: screen, cfg: cfg, gen: gen, rng: rng, log: log}
	if err := a.newGame(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) newGame() error {
	g, err := engine.New(a.cfg, a.gen, a.rng)
	if err != nil {
		return err
	}
	a.game = g
	a.cur = Cursor{}
	a.log.WithFields(logrus.Fields{"rows": a.cfg.Rows, "columns": a.cfg.Columns, "bombs": a.cfg.Bombs}).Debug("new game")
	return nil
}

// Game exposes the current engine for tests and callers that render elsewhere.
func (a *App) Game() *engine.Game { return a.game }

// Run polls events until the player quits. The screen must already be initialised.
func (a *App) Run() error {
	a.screen.EnableMouse()
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			done, err := a.Key(ev.Key(), ev.Rune())
			if err != nil || done {
				return err
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				if err := a.Click(x, y); err != nil {
					return err
				}
			}
		}
		a.draw()
	}
}

// Key applies one key press and reports whether the app should exit.
func (a *App) Key(key tcell.Key, ch rune) (bool, error) {
	next, act := HandleKey(key, ch, a.cur, a.cfg.Rows, a.cfg.Columns)
	a.cur = next
	switch act {
	case Quit:
		return true, nil
	case NewGame:
		return false, a.newGame()
	case Reveal:
		a.reveal()
	}
	return false, nil
}

// Click reveals the cell under screen position x,y, if any.
func (a *App) Click(x, y int) error {
	loc := domain.Location{Row: y - boardTop, Col: x / cellWidth}
	if x < 0 || x%cellWidth != 0 {
		return nil
	}
	if _, err := a.game.DisplayValue(loc); err != nil {
		return nil
	}
	a.cur = Cursor{Row: loc.Row, Col: loc.Col}
	a.reveal()
	return nil
}

func (a *App) reveal() {
	loc := domain.Location{Row: a.cur.Row, Col: a.cur.Col}
	prev := a.game.State()
	st, err := a.game.Reveal(loc)
	if err != nil {
		a.log.WithError(err).Warn("reveal rejected")
		return
	}
	if st != prev {
		a.log.WithField("state", st.String()).Info("game over")
	}
}

const (
	boardTop  = 1
	cellWidth = 2
)

var (
	styleBase   = tcell.StyleDefault
	styleHidden = styleBase.Foreground(tcell.ColorGray)
	styleBomb   = styleBase.Foreground(tcell.ColorRed).Bold(true)
	countColors = [...]tcell.Color{
		tcell.ColorWhite, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed, tcell.ColorNavy,
		tcell.ColorMaroon, tcell.ColorTeal, tcell.ColorPurple, tcell.ColorSilver,
	}
)

func cellStyle(v domain.DisplayValue) tcell.Style {
	switch v.Kind {
	case domain.Bomb:
		return styleBomb
	case domain.Count:
		return styleBase.Foreground(countColors[v.Count])
	default:
		return styleHidden
	}
}

func statusLine(st domain.GameState, remaining int) string {
	switch st {
	case domain.Won:
		return "You won! n: new game  q: quit"
	case domain.Lost:
		return "Boom. n: new game  q: quit"
	default:
		return fmt.Sprintf("%d safe cells left  arrows/hjkl: move  space: reveal  n: new  q: quit", remaining)
	}
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	st := a.game.State()
	statusStyle := styleBase
	switch st {
	case domain.Won:
		statusStyle = styleBase.Foreground(tcell.ColorGreen).Bold(true)
	case domain.Lost:
		statusStyle = styleBase.Foreground(tcell.ColorRed).Bold(true)
	}
	a.drawText(0, 0, statusLine(st, a.game.RemainingSafe()), statusStyle)

	for r := 0; r < a.cfg.Rows; r++ {
		for c := 0; c < a.cfg.Columns; c++ {
			v, _ := a.game.DisplayValue(domain.Location{Row: r, Col: c})
			style := cellStyle(v)
			if r == a.cur.Row && c == a.cur.Col {
				style = style.Reverse(true)
			}
			a.screen.SetContent(c*cellWidth, r+boardTop, v.Rune(), nil, style)
		}
	}
	a.screen.Show()
}
