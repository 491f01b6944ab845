package domain

import "fmt"

// GameState is the lifecycle of a single game.
type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Terminal reports whether no further reveals can change the board.
func (s GameState) Terminal() bool { return s == Won || s == Lost }

func (s GameState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *GameState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("unknown game state %q", string(b))
	}
	return nil
}

// DisplayKind selects what a renderer may show for a cell.
type DisplayKind int

const (
	Hidden DisplayKind = iota // closed cell during play
	Bomb                      // bomb, open or revealed at game end
	Count                     // safe cell showing its adjacent bomb count
)

func (k DisplayKind) String() string {
	switch k {
	case Hidden:
		return "hidden"
	case Bomb:
		return "bomb"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("DisplayKind(%d)", int(k))
	}
}

func (k DisplayKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *DisplayKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "hidden":
		*k = Hidden
	case "bomb":
		*k = Bomb
	case "count":
		*k = Count
	default:
		return fmt.Errorf("unknown display kind %q", string(b))
	}
	return nil
}
