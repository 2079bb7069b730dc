package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine drives a session by asking the player of the side to move for a turn
// until the game is over.
type LocalEngine struct {
	Session *gamemaster.Session
	Players [2]player.Player // Indexed by game.Color
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(s *gamemaster.Session, white, black player.Player) *LocalEngine {
	if s == nil {
		panic("Must provide a session")
	}
	if white == nil || black == nil {
		panic("need a player for each color")
	}
	return &LocalEngine{
		Session: s,
		Players: [2]player.Player{white, black},
	}
}

// Run executes the game loop. A Back response takes back the last turn, a Replay
// response restarts the game and a Quit response stops the loop with an Ongoing result.
func (e *LocalEngine) Run() (gamemaster.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := e.Session
	gameMetric := metrics.GameMetric{
		ID:             s.ID,
		StartingPlayer: s.ToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", s.ID).Msgf("%s is starting", s.ToMove())

	result := gamemaster.Ongoing
	for {
		over, r := s.Over()
		if over {
			result = r
			break
		}

		color := s.ToMove()
		p := e.Players[color]
		resp, err := p.TakeTurn(s)
		if err != nil {
			return result, e.complete(gameMetric, result), moveMetrics, fmt.Errorf("turn %d of %s failed: %w", s.Turn(), color, err)
		}

		switch resp {
		case player.OK:
			if sp, ok := p.(player.Searcher); ok {
				moveMetrics = append(moveMetrics, metrics.MoveMetric{
					Step:         s.Turn(),
					Player:       color,
					SearchMetric: sp.LastMetrics(),
				})
			}
		case player.Back:
			err := s.Undo(player.IsBot(e.Players[color.Opponent()]))
			if err != nil && !errors.Is(err, game.ErrNoHistory) {
				return result, e.complete(gameMetric, result), moveMetrics, err
			}
		case player.Replay:
			log.Info().Str("game", s.ID).Msg("restarting game")
			s.Restart()
			moveMetrics = nil
			gameMetric.StartTime = time.Now()
		case player.Quit:
			log.Info().Str("game", s.ID).Msgf("%s quit at turn %d", color, s.Turn())
			return result, e.complete(gameMetric, result), moveMetrics, nil
		}
	}

	gameMetric = e.complete(gameMetric, result)
	log.Info().Str("game", s.ID).Msgf("game over after %d turns with result %s in %v", gameMetric.TotalMoves, result, gameMetric.Duration)
	return result, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(m metrics.GameMetric, result gamemaster.Result) metrics.GameMetric {
	m.Result = result.String()
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = e.Session.Turn()
	return m
}
