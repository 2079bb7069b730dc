package gamemaster

import "errors"

var ErrGameOver = errors.New("game is over - no moves allowed")

// Result is the outcome of a session.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
