package game

import "strings"

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

// Color is the side to move. White men start on rows 5-7 and promote on row 0,
// black men start on rows 0-2 and promote on row 7.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Belongs reports whether the cell holds a piece of color c. Odd values are white
// and even values are black, so a piece belongs to c iff v%2 != c.
func (v Cell) Belongs(c Color) bool {
	return v != Empty && uint8(v)%2 != uint8(c)
}

// Opposes reports whether both cells hold pieces and the pieces are of different colors.
func (v Cell) Opposes(o Cell) bool {
	return v != Empty && o != Empty && v%2 != o%2
}

func (v Cell) IsKing() bool {
	return v == WhiteKing || v == BlackKing
}

func (v Cell) IsMan() bool {
	return v == WhiteMan || v == BlackMan
}

// Color returns the owner of a non-empty cell.
func (v Cell) Color() Color {
	if v%2 == 1 {
		return White
	}
	return Black
}

// Crowned returns the king of the same color. Kings are returned unchanged.
func (v Cell) Crowned() Cell {
	if v.IsMan() {
		return v + 2
	}
	return v
}

func (v Cell) Rune() rune {
	switch v {
	case WhiteMan:
		return 'w'
	case BlackMan:
		return 'b'
	case WhiteKing:
		return 'W'
	case BlackKing:
		return 'B'
	default:
		return '.'
	}
}

// PromotionRow returns the row on which a man of color c becomes a king.
func PromotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Size - 1
}

// Board is the 8x8 cell matrix indexed as b[row][column]. It is a value type: assigning
// a Board copies it, which is how snapshots are taken.
type Board [Size][Size]Cell

// Pos is a (row, column) coordinate on the board.
type Pos struct {
	X, Y int
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// IsDark reports whether (x, y) is a playing square.
func IsDark(x, y int) bool {
	return (x+y)%2 == 1
}

// NewBoard returns the initial position: black men on the dark squares of rows 0-2 and
// white men on the dark squares of rows 5-7.
func NewBoard() Board {
	var b Board
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if !IsDark(i, j) {
				continue
			}
			if i < 3 {
				b[i][j] = BlackMan
			}
			if i > 4 {
				b[i][j] = WhiteMan
			}
		}
	}
	return b
}

// Apply plays m on a copy of the board and returns the copy: the captured piece is
// removed, a man reaching its promotion row is crowned and the piece is moved.
// No legality checks are made.
func (b Board) Apply(m Move) Board {
	if m.IsCapture() {
		b[m.Xb][m.Yb] = Empty
	}
	piece := b[m.X][m.Y]
	if piece.IsMan() && m.X2 == PromotionRow(piece.Color()) {
		piece = piece.Crowned()
	}
	b[m.X][m.Y] = Empty
	b[m.X2][m.Y2] = piece
	return b
}

// Material counts the pieces on the board.
type Material struct {
	WhiteMen, WhiteKings, BlackMen, BlackKings int
}

func (b Board) Count() Material {
	var m Material
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			switch b[i][j] {
			case WhiteMan:
				m.WhiteMen++
			case WhiteKing:
				m.WhiteKings++
			case BlackMan:
				m.BlackMen++
			case BlackKing:
				m.BlackKings++
			}
		}
	}
	return m
}

// Pieces returns the positions of every piece of color c in row-major order.
func (b Board) Pieces(c Color) []Pos {
	var res []Pos
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j].Belongs(c) {
				res = append(res, Pos{X: i, Y: j})
			}
		}
	}
	return res
}

func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			sb.WriteRune(b[i][j].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
