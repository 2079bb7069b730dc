package game

var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// PieceMoves generates the moves of the piece at (x, y), ignoring every other piece's
// options. A piece that can capture reports its captures only. The second result tells
// whether the moves are captures. An empty cell has no moves.
func PieceMoves(b Board, x, y int) ([]Move, bool) {
	piece := b[x][y]
	if piece == Empty {
		return nil, false
	}

	var moves []Move
	if piece.IsMan() {
		moves = manCaptures(b, x, y, piece)
	} else {
		moves = kingCaptures(b, x, y, piece)
	}
	if len(moves) > 0 {
		return moves, true
	}

	if piece.IsMan() {
		return manSteps(b, x, y, piece), false
	}
	return kingSteps(b, x, y), false
}

// ColorMoves generates every legal move of color c. If any piece can capture, only
// captures are returned, collected from the pieces that have them.
func ColorMoves(b Board, c Color) ([]Move, bool) {
	var res []Move
	foundBeats := false
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if !b[i][j].Belongs(c) {
				continue
			}
			moves, beats := PieceMoves(b, i, j)
			if beats && !foundBeats {
				foundBeats = true
				res = res[:0]
			}
			if beats || !foundBeats {
				res = append(res, moves...)
			}
		}
	}
	return res, foundBeats
}

// Men capture in all four diagonal directions by jumping an adjacent enemy piece.
func manCaptures(b Board, x, y int, piece Cell) []Move {
	var moves []Move
	for _, d := range diagonals {
		i, j := x+2*d[0], y+2*d[1]
		if !InBounds(i, j) {
			continue
		}
		mx, my := x+d[0], y+d[1]
		if b[i][j] != Empty || !piece.Opposes(b[mx][my]) {
			continue
		}
		moves = append(moves, NewCapture(x, y, i, j, mx, my))
	}
	return moves
}

// Men step one square diagonally towards their promotion row.
func manSteps(b Board, x, y int, piece Cell) []Move {
	dx := x + 1
	if piece.Color() == White {
		dx = x - 1
	}
	var moves []Move
	for _, dy := range [2]int{y - 1, y + 1} {
		if !InBounds(dx, dy) || b[dx][dy] != Empty {
			continue
		}
		moves = append(moves, NewStep(x, y, dx, dy))
	}
	return moves
}

// Kings scan each ray outward. The first occupied square decides: an enemy piece is
// captured by landing on any empty square behind it up to the next piece; a piece of
// the king's own color, or a second piece right behind the enemy, blocks the ray.
func kingCaptures(b Board, x, y int, piece Cell) []Move {
	var moves []Move
	for _, d := range diagonals {
		blocked := Pos{X: NoCapture, Y: NoCapture}
		for i, j := x+d[0], y+d[1]; InBounds(i, j); i, j = i+d[0], j+d[1] {
			if b[i][j] != Empty {
				if !piece.Opposes(b[i][j]) || blocked.X != NoCapture {
					break
				}
				blocked = Pos{X: i, Y: j}
				continue
			}
			if blocked.X != NoCapture {
				moves = append(moves, NewCapture(x, y, i, j, blocked.X, blocked.Y))
			}
		}
	}
	return moves
}

// Kings step to every empty square of a ray before the first occupied one.
func kingSteps(b Board, x, y int) []Move {
	var moves []Move
	for _, d := range diagonals {
		for i, j := x+d[0], y+d[1]; InBounds(i, j); i, j = i+d[0], j+d[1] {
			if b[i][j] != Empty {
				break
			}
			moves = append(moves, NewStep(x, y, i, j))
		}
	}
	return moves
}
