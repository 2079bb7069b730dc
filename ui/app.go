package ui

import (
	"checkers/config"
	"checkers/engine"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"fmt"

	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const keysHint = "[gray]arrows/hjkl move  enter select  b back  r replay  q quit"

// App is a local game in the terminal. Humans select squares on the board view, bots
// search on their own.
type App struct {
	app     *tview.Application
	view    *BoardView
	status  *tview.TextView
	session *gamemaster.Session
	engine  *engine.LocalEngine
}

func NewApp(cfg config.Config) *App {
	a := &App{app: tview.NewApplication()}
	a.view = NewBoardView(a.app)
	a.status = tview.NewTextView().SetDynamicColors(true)
	a.status.SetBorder(true).SetTitle(" Status ").SetTitleAlign(tview.AlignLeft)

	a.session = gamemaster.NewSession(cfg)
	var players [2]player.Player
	for _, color := range []game.Color{game.White, game.Black} {
		if cfg.IsBot(color) {
			players[color] = player.NewBot(a.session, color)
		} else {
			players[color] = player.NewHuman(a.view, a.view)
		}
	}
	a.engine = engine.NewLocalEngine(a.session, players[game.White], players[game.Black])

	frame := tview.NewFlex().AddItem(a.view.Box, 0, 1, true)
	frame.SetBorder(true).SetTitle(" Checkers ")
	board := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(frame, game.Size*3+4, 0, true).
		AddItem(nil, 0, 1, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board, game.Size+3, 0, true).
		AddItem(a.status, 4, 0, false)
	a.app.SetRoot(layout, true).SetFocus(a.view.Box)
	return a
}

// Run shows the board and plays games until the user quits.
func (a *App) Run() error {
	go a.watch()
	go a.play()
	return a.app.Run()
}

func (a *App) watch() {
	for u := range a.session.Updates() {
		a.view.SetBoard(u.Board)
		text := fmt.Sprintf("%s to move, turn %d", u.ToMove, u.Turn)
		if u.ChainStep > 0 {
			text = fmt.Sprintf("%s continues the capture, turn %d", u.ToMove, u.Turn)
		}
		a.setStatus(text)
	}
}

// play runs games on its own goroutine. After a finished game it waits for the user to
// start over or quit.
func (a *App) play() {
	defer a.app.Stop()
	for {
		a.view.SetBoard(a.session.Snapshot())
		a.setStatus(fmt.Sprintf("%s to move, turn %d", a.session.ToMove(), a.session.Turn()))

		result, gameMetric, _, err := a.engine.Run()
		if err != nil {
			log.Error().Err(err).Msg("game stopped")
			return
		}
		if result == gamemaster.Ongoing {
			return
		}
		log.Info().Str("game", gameMetric.ID).Msgf("result %s after %d turns", result, gameMetric.TotalMoves)
		a.setStatus(resultText(result))

		for {
			resp, _ := a.view.Cell()
			if resp == player.Quit {
				return
			}
			if resp == player.Replay {
				a.session.Restart()
				break
			}
		}
	}
}

func (a *App) setStatus(text string) {
	a.app.QueueUpdateDraw(func() {
		a.status.SetText(text + "\n" + keysHint)
	})
}

func resultText(r gamemaster.Result) string {
	switch r {
	case gamemaster.WhiteWins:
		return "[yellow]White wins"
	case gamemaster.BlackWins:
		return "[yellow]Black wins"
	case gamemaster.Draw:
		return "[yellow]Draw"
	default:
		return ""
	}
}
