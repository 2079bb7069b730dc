package player

import (
	"checkers/config"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type input struct {
	resp Response
	pos  game.Pos
}

type scriptedHand struct {
	inputs []input
}

func (h *scriptedHand) Cell() (Response, game.Pos) {
	if len(h.inputs) == 0 {
		return Quit, game.Pos{}
	}
	in := h.inputs[0]
	h.inputs = h.inputs[1:]
	return in.resp, in.pos
}

func click(x, y int) input {
	return input{resp: Cell, pos: game.Pos{X: x, Y: y}}
}

type recordingView struct {
	highlighted [][]game.Pos
	active      []game.Pos
	clears      int
}

func (v *recordingView) Highlight(cells []game.Pos) {
	v.highlighted = append(v.highlighted, cells)
}

func (v *recordingView) SetActive(p game.Pos) {
	v.active = append(v.active, p)
}

func (v *recordingView) Clear() {
	v.clears++
}

func newSession() *gamemaster.Session {
	cfg := config.DefaultConfig()
	cfg.Bot.BotDelayMS = 0
	cfg.Bot.NoRandom = true
	return gamemaster.NewSession(cfg)
}

func chainBoard() game.Board {
	var b game.Board
	b[5][0] = game.WhiteMan
	b[4][1] = game.BlackMan
	b[2][3] = game.BlackMan
	b[0][7] = game.BlackMan
	return b
}

func TestBot(t *testing.T) {
	t.Run("plays the whole capture chain", func(t *testing.T) {
		s := newSession()
		s.Reset(chainBoard(), game.White)
		bot := NewBot(s, game.White, searcher.WithDepth(1), searcher.WithMetrics())

		resp, err := bot.TakeTurn(s)

		require.NoError(t, err)
		require.Equal(t, OK, resp)
		require.Equal(t, game.Black, s.ToMove(), "The turn should pass once the chain ends")
		require.Equal(t, 1, s.Snapshot().Count().BlackMen)
		require.Equal(t, game.WhiteMan, s.Snapshot()[1][4])
		require.Equal(t, 2, bot.LastMetrics().ChainLength)
	})

	t.Run("refuses to move for the other color", func(t *testing.T) {
		s := newSession()
		bot := NewBot(s, game.Black)

		_, err := bot.TakeTurn(s)

		require.Error(t, err)
		require.Equal(t, 1, s.HistoryLen())
	})

	t.Run("waits for the delay", func(t *testing.T) {
		s := newSession()
		bot := NewBot(s, game.White, searcher.WithDepth(1))
		bot.SetDelay(20 * time.Millisecond)

		start := time.Now()
		_, err := bot.TakeTurn(s)

		require.NoError(t, err)
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("depth follows the config", func(t *testing.T) {
		s := newSession()
		bot := NewBot(s, game.Black)
		require.Equal(t, s.Config().Bot.BlackBotLevel, bot.logic.Depth())

		bot.SetDepth(2)
		require.Equal(t, 2, bot.logic.Depth())
		require.True(t, IsBot(bot))
	})
}

func TestHuman(t *testing.T) {
	t.Run("select origin then destination", func(t *testing.T) {
		s := newSession()
		hand := &scriptedHand{inputs: []input{click(5, 2), click(4, 3)}}
		view := &recordingView{}
		h := NewHuman(hand, view)

		resp, err := h.TakeTurn(s)

		require.NoError(t, err)
		require.Equal(t, OK, resp)
		require.Equal(t, game.WhiteMan, s.Snapshot()[4][3])
		require.Len(t, view.highlighted[0], 4, "Every white man that can move should be highlighted first")
		require.ElementsMatch(t, []game.Pos{{X: 4, Y: 1}, {X: 4, Y: 3}}, view.highlighted[1])
		require.Equal(t, []game.Pos{{X: 5, Y: 2}}, view.active)
		require.False(t, IsBot(h))
	})

	t.Run("clicks off the legal moves are ignored", func(t *testing.T) {
		s := newSession()
		hand := &scriptedHand{inputs: []input{
			click(3, 3),
			click(6, 1), // blocked man
			click(5, 0),
			click(5, 6), // reselect
			click(4, 7),
		}}
		h := NewHuman(hand, &recordingView{})

		resp, err := h.TakeTurn(s)

		require.NoError(t, err)
		require.Equal(t, OK, resp)
		require.Equal(t, game.WhiteMan, s.Snapshot()[4][7])
		require.Equal(t, game.Empty, s.Snapshot()[5][6])
	})

	t.Run("continues the chain with the same piece", func(t *testing.T) {
		s := newSession()
		s.Reset(chainBoard(), game.White)
		view := &recordingView{}
		hand := &scriptedHand{inputs: []input{click(5, 0), click(3, 2), click(0, 7), click(1, 4)}}
		h := NewHuman(hand, view)

		resp, err := h.TakeTurn(s)

		require.NoError(t, err)
		require.Equal(t, OK, resp)
		require.Equal(t, game.Black, s.ToMove())
		require.Equal(t, game.WhiteMan, s.Snapshot()[1][4])
		require.Contains(t, view.active, game.Pos{X: 3, Y: 2})
	})

	t.Run("other responses end the turn", func(t *testing.T) {
		s := newSession()
		hand := &scriptedHand{inputs: []input{click(5, 2), {resp: Back}}}
		view := &recordingView{}
		h := NewHuman(hand, view)

		resp, err := h.TakeTurn(s)

		require.NoError(t, err)
		require.Equal(t, Back, resp)
		require.Equal(t, game.NewBoard(), s.Snapshot())
		require.Positive(t, view.clears)
	})
}
