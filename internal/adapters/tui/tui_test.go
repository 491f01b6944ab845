package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/logging"
)

func TestHandleKey(t *testing.T) {
	cases := []struct {
		name    string
		key     tcell.Key
		ch      rune
		from    Cursor
		want    Cursor
		wantAct Action
	}{
		{"down", tcell.KeyDown, 0, Cursor{0, 0}, Cursor{1, 0}, Move},
		{"right", tcell.KeyRight, 0, Cursor{0, 0}, Cursor{0, 1}, Move},
		{"up clamps", tcell.KeyUp, 0, Cursor{0, 2}, Cursor{0, 2}, Move},
		{"left clamps", tcell.KeyLeft, 0, Cursor{1, 0}, Cursor{1, 0}, Move},
		{"j", tcell.KeyRune, 'j', Cursor{2, 2}, Cursor{3, 2}, Move},
		{"j clamps", tcell.KeyRune, 'j', Cursor{3, 2}, Cursor{3, 2}, Move},
		{"l clamps", tcell.KeyRune, 'l', Cursor{0, 4}, Cursor{0, 4}, Move},
		{"h", tcell.KeyRune, 'h', Cursor{0, 4}, Cursor{0, 3}, Move},
		{"k", tcell.KeyRune, 'k', Cursor{2, 4}, Cursor{1, 4}, Move},
		{"space", tcell.KeyRune, ' ', Cursor{1, 1}, Cursor{1, 1}, Reveal},
		{"enter", tcell.KeyEnter, 0, Cursor{1, 1}, Cursor{1, 1}, Reveal},
		{"new", tcell.KeyRune, 'n', Cursor{1, 1}, Cursor{1, 1}, NewGame},
		{"quit", tcell.KeyRune, 'q', Cursor{1, 1}, Cursor{1, 1}, Quit},
		{"escape", tcell.KeyEscape, 0, Cursor{1, 1}, Cursor{1, 1}, Quit},
		{"other", tcell.KeyRune, 'x', Cursor{1, 1}, Cursor{1, 1}, None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, act := HandleKey(tc.key, tc.ch, tc.from, 4, 5)
			if got != tc.want || act != tc.wantAct {
				t.Fatalf("HandleKey = %v,%v want %v,%v", got, act, tc.want, tc.wantAct)
			}
		})
	}
}

func newApp(t *testing.T, cfg domain.GameConfig) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 10)
	a, err := New(screen, cfg, generator.NewShuffleGenerator(), generator.NewRand(1), logging.Discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a, screen
}

func TestAppRevealAndRestart(t *testing.T) {
	a, screen := newApp(t, domain.GameConfig{Rows: 3, Columns: 3, Bombs: 0})

	a.draw()
	if r, _, _, _ := screen.GetContent(0, boardTop); r != '-' {
		t.Fatalf("closed cell drawn as %q", r)
	}

	if _, err := a.Key(tcell.KeyRune, 'j'); err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if _, err := a.Key(tcell.KeyRune, ' '); err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if a.Game().State() != domain.Won {
		t.Fatalf("state = %v, want won", a.Game().State())
	}
	a.draw()
	if r, _, _, _ := screen.GetContent(2*cellWidth, 2+boardTop); r != '.' {
		t.Fatalf("open zero cell drawn as %q", r)
	}

	if _, err := a.Key(tcell.KeyRune, 'n'); err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if a.Game().State() != domain.Playing || a.cur != (Cursor{}) {
		t.Fatalf("new game not started: state=%v cursor=%v", a.Game().State(), a.cur)
	}

	done, err := a.Key(tcell.KeyRune, 'q')
	if err != nil || !done {
		t.Fatalf("quit = %v, %v", done, err)
	}
}

func TestAppClick(t *testing.T) {
	a, _ := newApp(t, domain.GameConfig{Rows: 2, Columns: 3, Bombs: 0})

	// Between cells and outside the board are ignored.
	for _, p := range [][2]int{{1, boardTop}, {0, 0}, {20, boardTop}, {0, 5}} {
		if err := a.Click(p[0], p[1]); err != nil {
			t.Fatalf("Click(%v) failed: %v", p, err)
		}
		if a.Game().State() != domain.Playing {
			t.Fatalf("Click(%v) changed state", p)
		}
	}
	if err := a.Click(2*cellWidth, 1+boardTop); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if a.cur != (Cursor{Row: 1, Col: 2}) || a.Game().State() != domain.Won {
		t.Fatalf("cursor=%v state=%v", a.cur, a.Game().State())
	}
}

func TestStatusLine(t *testing.T) {
	if s := statusLine(domain.Playing, 7); s[:1] != "7" {
		t.Fatalf("playing status %q", s)
	}
	if statusLine(domain.Won, 0) == statusLine(domain.Lost, 0) {
		t.Fatalf("won and lost share a status line")
	}
}
