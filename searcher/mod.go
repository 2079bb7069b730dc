package searcher

import "checkers/game"

// Score bounds used by the search. Scores of real positions lie in [0, game.Inf].
const (
	initialAlpha = -1.0
	initialBeta  = game.Inf + 1
)

// Snapshotter provides the board the search starts from. *game.State implements it.
type Snapshotter interface {
	Snapshot() game.Board
}

var noPos = game.Pos{X: game.NoCapture, Y: game.NoCapture}
