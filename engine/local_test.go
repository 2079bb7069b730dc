package engine

import (
	"checkers/config"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedPlayer struct {
	moves     []game.Move
	responses []player.Response
}

// TakeTurn plays the next scripted move, or returns the next scripted response once the
// moves run out.
func (p *scriptedPlayer) TakeTurn(s *gamemaster.Session) (player.Response, error) {
	if len(p.moves) > 0 {
		m := p.moves[0]
		p.moves = p.moves[1:]
		return player.OK, s.Play(m)
	}
	if len(p.responses) == 0 {
		return player.Quit, nil
	}
	r := p.responses[0]
	p.responses = p.responses[1:]
	return r, nil
}

func testConfig(turns int) config.Config {
	cfg := config.DefaultConfig()
	cfg.Bot.BotDelayMS = 0
	cfg.Bot.NoRandom = true
	cfg.Game.MaxNumTurns = turns
	return cfg
}

func TestBotGame(t *testing.T) {
	s := gamemaster.NewSession(testConfig(40))
	white := player.NewBot(s, game.White, searcher.WithDepth(2), searcher.WithMetrics())
	black := player.NewBot(s, game.Black, searcher.WithDepth(1), searcher.WithMetrics())
	e := NewLocalEngine(s, white, black)

	result, gameMetric, moveMetrics, err := e.Run()

	require.NoError(t, err)
	require.NotEqual(t, gamemaster.Ongoing, result, "A bot game should always finish")
	require.Equal(t, s.ID, gameMetric.ID)
	require.Equal(t, result.String(), gameMetric.Result)
	require.Equal(t, game.White, gameMetric.StartingPlayer)
	require.Equal(t, gameMetric.TotalMoves, len(moveMetrics), "Every bot turn should be recorded")
	require.LessOrEqual(t, gameMetric.TotalMoves, 40)
	for i, mm := range moveMetrics {
		require.Equal(t, i+1, mm.Step)
		require.Equal(t, game.Color(i%2), mm.Player)
		require.Positive(t, mm.ChainLength)
	}
}

func TestTurnLimit(t *testing.T) {
	s := gamemaster.NewSession(testConfig(2))
	white := &scriptedPlayer{moves: []game.Move{game.NewStep(5, 2, 4, 3)}}
	black := &scriptedPlayer{moves: []game.Move{game.NewStep(2, 1, 3, 2)}}

	result, gameMetric, moveMetrics, err := NewLocalEngine(s, white, black).Run()

	require.NoError(t, err)
	require.Equal(t, gamemaster.Draw, result)
	require.Equal(t, 2, gameMetric.TotalMoves)
	require.Empty(t, moveMetrics, "Scripted players do not search")
}

func TestResponses(t *testing.T) {
	t.Run("quit stops the game", func(t *testing.T) {
		s := gamemaster.NewSession(testConfig(10))
		white := &scriptedPlayer{responses: []player.Response{player.Quit}}

		result, gameMetric, _, err := NewLocalEngine(s, white, &scriptedPlayer{}).Run()

		require.NoError(t, err)
		require.Equal(t, gamemaster.Ongoing, result)
		require.Equal(t, "ongoing", gameMetric.Result)
	})

	t.Run("back against a bot takes back both turns", func(t *testing.T) {
		s := gamemaster.NewSession(testConfig(10))
		white := &scriptedPlayer{
			moves:     []game.Move{game.NewStep(5, 2, 4, 3)},
			responses: []player.Response{player.Back, player.Quit},
		}
		black := player.NewBot(s, game.Black, searcher.WithDepth(1))

		_, _, _, err := NewLocalEngine(s, white, black).Run()

		require.NoError(t, err)
		require.Equal(t, game.NewBoard(), s.Snapshot())
		require.Equal(t, game.White, s.ToMove())
	})

	t.Run("back without history is ignored", func(t *testing.T) {
		s := gamemaster.NewSession(testConfig(10))
		white := &scriptedPlayer{responses: []player.Response{player.Back, player.Quit}}

		_, _, _, err := NewLocalEngine(s, white, &scriptedPlayer{}).Run()

		require.NoError(t, err)
		require.Equal(t, 1, s.HistoryLen())
	})

	t.Run("replay restarts the game", func(t *testing.T) {
		s := gamemaster.NewSession(testConfig(10))
		white := &scriptedPlayer{
			moves: []game.Move{game.NewStep(5, 2, 4, 3), game.NewStep(5, 4, 4, 5)},
		}
		black := &scriptedPlayer{responses: []player.Response{player.Replay}}

		_, gameMetric, _, err := NewLocalEngine(s, white, black).Run()

		require.NoError(t, err)
		require.Equal(t, 1, gameMetric.TotalMoves, "The game should start over after the replay")
		require.Equal(t, game.WhiteMan, s.Snapshot()[4][5])
		require.Equal(t, game.WhiteMan, s.Snapshot()[5][2])
	})

	t.Run("player errors end the game", func(t *testing.T) {
		s := gamemaster.NewSession(testConfig(10))
		white := &scriptedPlayer{moves: []game.Move{game.NewStep(5, 2, 3, 4)}}

		_, _, _, err := NewLocalEngine(s, white, &scriptedPlayer{}).Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}
