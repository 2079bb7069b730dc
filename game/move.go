package game

import "fmt"

// NoCapture marks the captured-piece coordinates of a move that captures nothing, and
// the destination of an empty move.
const NoCapture = -1

// Move takes the piece at (X, Y) to (X2, Y2). A capturing move also names the captured
// piece at (Xb, Yb); otherwise Xb and Yb are NoCapture.
type Move struct {
	X, Y   int
	X2, Y2 int
	Xb, Yb int
}

// NoMove has no origin and no destination. It terminates replayed capture chains.
var NoMove = Move{X: NoCapture, Y: NoCapture, X2: NoCapture, Y2: NoCapture, Xb: NoCapture, Yb: NoCapture}

func NewStep(x, y, x2, y2 int) Move {
	return Move{X: x, Y: y, X2: x2, Y2: y2, Xb: NoCapture, Yb: NoCapture}
}

func NewCapture(x, y, x2, y2, xb, yb int) Move {
	return Move{X: x, Y: y, X2: x2, Y2: y2, Xb: xb, Yb: yb}
}

func (m Move) IsCapture() bool {
	return m.Xb != NoCapture
}

// Empty reports whether the move has no destination.
func (m Move) Empty() bool {
	return m.X2 == NoCapture
}

func (m Move) From() Pos {
	return Pos{X: m.X, Y: m.Y}
}

func (m Move) To() Pos {
	return Pos{X: m.X2, Y: m.Y2}
}

func (m Move) String() string {
	if m.Empty() {
		return "none"
	}
	if m.IsCapture() {
		return fmt.Sprintf("(%d,%d)->(%d,%d)x(%d,%d)", m.X, m.Y, m.X2, m.Y2, m.Xb, m.Yb)
	}
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.X, m.Y, m.X2, m.Y2)
}
