// Package ui draws the draughts board in the terminal and turns key presses into
// player responses.
package ui

import (
	"checkers/game"
	"checkers/player"
	"checkers/utils"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	lightSquare  = tcell.NewRGBColor(222, 184, 135)
	darkSquare   = tcell.NewRGBColor(139, 90, 43)
	highlightBg  = tcell.NewRGBColor(70, 140, 70)
	activeBg     = tcell.NewRGBColor(200, 170, 40)
	cursorBg     = tcell.NewRGBColor(60, 90, 160)
	whitePieceFg = tcell.ColorWhite
	blackPieceFg = tcell.ColorBlack
)

type input struct {
	resp player.Response
	pos  game.Pos
}

// BoardView is a tview primitive showing the board. It implements player.Hand and
// player.Highlighter for the human players of a local game.
type BoardView struct {
	Box *tview.Box
	app *tview.Application

	mu          sync.Mutex
	board       game.Board
	highlighted []game.Pos
	active      game.Pos
	hasActive   bool
	cursor      game.Pos

	inputs  chan input
	waiting atomic.Bool
}

var (
	_ player.Hand        = (*BoardView)(nil)
	_ player.Highlighter = (*BoardView)(nil)
)

func NewBoardView(app *tview.Application) *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		app:    app,
		board:  game.NewBoard(),
		cursor: game.Pos{X: game.Size - 3, Y: 0},
		inputs: make(chan input, 1),
	}
	v.Box.SetDrawFunc(v.draw)
	v.Box.SetInputCapture(v.handleKey)
	return v
}

// SetBoard replaces the shown position.
func (v *BoardView) SetBoard(b game.Board) {
	v.mu.Lock()
	v.board = b
	v.mu.Unlock()
	v.redraw()
}

// Cell blocks until the player selects a square or presses one of the command keys.
func (v *BoardView) Cell() (player.Response, game.Pos) {
	v.waiting.Store(true)
	defer v.waiting.Store(false)
	in := <-v.inputs
	return in.resp, in.pos
}

func (v *BoardView) Highlight(cells []game.Pos) {
	v.mu.Lock()
	v.highlighted = append(v.highlighted[:0], cells...)
	v.mu.Unlock()
	v.redraw()
}

func (v *BoardView) SetActive(p game.Pos) {
	v.mu.Lock()
	v.active = p
	v.hasActive = true
	v.mu.Unlock()
	v.redraw()
}

func (v *BoardView) Clear() {
	v.mu.Lock()
	v.highlighted = v.highlighted[:0]
	v.hasActive = false
	v.mu.Unlock()
	v.redraw()
}

// Cursor returns the square under the cursor.
func (v *BoardView) Cursor() game.Pos {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// MoveCursor moves the cursor by dx rows and dy columns, staying on the board.
func (v *BoardView) MoveCursor(dx, dy int) {
	v.mu.Lock()
	if game.InBounds(v.cursor.X+dx, v.cursor.Y+dy) {
		v.cursor.X += dx
		v.cursor.Y += dy
	}
	v.mu.Unlock()
}

// handleKey moves the cursor with the arrow keys or hjkl. Enter and space select the
// square under the cursor; b, r and q take back a turn, replay and quit. Quitting while
// no human is choosing a square stops the application.
func (v *BoardView) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		v.MoveCursor(-1, 0)
	case tcell.KeyDown:
		v.MoveCursor(1, 0)
	case tcell.KeyLeft:
		v.MoveCursor(0, -1)
	case tcell.KeyRight:
		v.MoveCursor(0, 1)
	case tcell.KeyEnter:
		v.send(player.Cell, v.Cursor())
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			v.MoveCursor(-1, 0)
		case 'j':
			v.MoveCursor(1, 0)
		case 'h':
			v.MoveCursor(0, -1)
		case 'l':
			v.MoveCursor(0, 1)
		case ' ':
			v.send(player.Cell, v.Cursor())
		case 'b':
			v.send(player.Back, game.Pos{})
		case 'r':
			v.send(player.Replay, game.Pos{})
		case 'q':
			if !v.waiting.Load() && v.app != nil {
				v.app.Stop()
				return nil
			}
			v.send(player.Quit, game.Pos{})
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// send drops the input when an earlier one is still pending.
func (v *BoardView) send(resp player.Response, pos game.Pos) {
	select {
	case v.inputs <- input{resp: resp, pos: pos}:
	default:
	}
}

func (v *BoardView) redraw() {
	if v.app != nil {
		v.app.QueueUpdateDraw(func() {})
	}
}

// style returns the style of the square (x, y).
func (v *BoardView) style(x, y int) tcell.Style {
	p := game.Pos{X: x, Y: y}
	bg := lightSquare
	if game.IsDark(x, y) {
		bg = darkSquare
	}
	if utils.FindIndex(v.highlighted, p) != -1 {
		bg = highlightBg
	}
	if v.hasActive && v.active == p {
		bg = activeBg
	}
	if v.cursor == p {
		bg = cursorBg
	}
	fg := whitePieceFg
	if v.board[x][y].Belongs(game.Black) {
		fg = blackPieceFg
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg).Bold(v.board[x][y].IsKing())
}

func pieceRune(c game.Cell) rune {
	switch {
	case c == game.Empty:
		return ' '
	case c.IsKing():
		return '◉'
	default:
		return '●'
	}
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// 3 characters per cell for a square appearance, 2 columns of row labels
	const cellW = 3
	left := x + 2
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 0; i < game.Size; i++ {
		screen.SetContent(x, y+i, rune('8'-i), nil, label)
		for j := 0; j < game.Size; j++ {
			style := v.style(i, j)
			screen.SetContent(left+j*cellW, y+i, ' ', nil, style)
			screen.SetContent(left+j*cellW+1, y+i, pieceRune(v.board[i][j]), nil, style)
			screen.SetContent(left+j*cellW+2, y+i, ' ', nil, style)
		}
	}
	for j := 0; j < game.Size; j++ {
		screen.SetContent(left+j*cellW+1, y+game.Size, rune('a'+j), nil, label)
	}
	return x, y, game.Size*cellW + 2, game.Size + 1
}
