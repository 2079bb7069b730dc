package gamemaster

import (
	"checkers/config"
	"checkers/game"
	"checkers/searcher"
	"checkers/utils"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Update is published after every applied move and after undo and restart.
type Update struct {
	Move      game.Move // game.NoMove for undo and restart
	Board     game.Board
	ChainStep int
	ToMove    game.Color
	Turn      int
}

// Session owns a game in progress: the board state, the color to move, the turn
// counter and the capture chain being played. It validates every move against the
// legal moves before applying it. A Session has a single writer, the turn owner;
// readers observe it through Updates.
type Session struct {
	ID        string
	cfg       config.Config
	state     *game.State
	logic     *searcher.Logic
	toMove    game.Color
	turn      int
	chainStep int
	chainPos  game.Pos
	legal     []game.Move
	updateCh  chan Update
}

const updateBuffer = 64

// NewSession starts a game from the initial position with white to move. The options
// configure the session's move generator; by default it is seeded from cfg.
func NewSession(cfg config.Config, options ...searcher.Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		cfg:      cfg,
		state:    game.NewState(),
		chainPos: game.Pos{X: game.NoCapture, Y: game.NoCapture},
		updateCh: make(chan Update, updateBuffer),
	}
	options = append(searcher.FromConfig(cfg, game.White), options...)
	s.logic = searcher.NewLogic(s.state, options...)
	return s
}

// Updates returns the stream of session updates. Updates are dropped when nobody
// keeps up with the stream.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

func (s *Session) Config() config.Config {
	return s.cfg
}

// Logic returns the session's move generator.
func (s *Session) Logic() *searcher.Logic {
	return s.logic
}

func (s *Session) Snapshot() game.Board {
	return s.state.Snapshot()
}

func (s *Session) ToMove() game.Color {
	return s.toMove
}

func (s *Session) Turn() int {
	return s.turn
}

// ChainStep returns the number of captures already made in the current turn when a
// capture chain must be continued, and 0 otherwise.
func (s *Session) ChainStep() int {
	return s.chainStep
}

// ChainPos returns the square of the piece that must continue the capture chain.
func (s *Session) ChainPos() game.Pos {
	return s.chainPos
}

// HistoryLen returns the number of recorded positions, the initial one included.
func (s *Session) HistoryLen() int {
	return s.state.Len()
}

// Legal returns the moves the side to move may play now: the continuation captures of
// the chain piece in the middle of a chain, the color's legal moves otherwise.
func (s *Session) Legal() []game.Move {
	if s.legal == nil {
		if s.chainStep > 0 {
			s.legal = s.logic.PieceMoves(s.chainPos.X, s.chainPos.Y)
		} else {
			s.legal = s.logic.LegalMoves(s.toMove)
		}
		if s.legal == nil {
			s.legal = []game.Move{}
		}
	}
	return s.legal
}

// Over reports whether the game has ended. The side to move loses when it has no legal
// move; reaching the turn limit is a draw.
func (s *Session) Over() (bool, Result) {
	if s.turn >= s.cfg.Game.MaxNumTurns {
		return true, Draw
	}
	if len(s.Legal()) > 0 {
		return false, Ongoing
	}
	if s.toMove == game.White {
		return true, BlackWins
	}
	return true, WhiteWins
}

// Play applies one move of the side to move. A capture that can be continued keeps the
// turn with the capturing piece; otherwise the turn passes to the opponent.
func (s *Session) Play(move game.Move) error {
	if over, _ := s.Over(); over {
		return ErrGameOver
	}
	if utils.FindIndex(s.Legal(), move) == -1 {
		log.Warn().Str("game", s.ID).Msgf("rejected move %v for %s", move, s.toMove)
		return fmt.Errorf("%w: %v is not legal for %s", game.ErrInvalidMove, move, s.toMove)
	}

	step := 0
	if move.IsCapture() {
		step = s.chainStep + 1
	}
	if err := s.state.ApplyMove(move, step); err != nil {
		return fmt.Errorf("failed to apply %v: %w", move, err)
	}
	s.legal = nil

	if move.IsCapture() {
		next := s.logic.PieceMoves(move.X2, move.Y2)
		if s.logic.HaveCaptures() {
			s.chainStep = step
			s.chainPos = move.To()
			s.legal = next
			s.publish(move)
			return nil
		}
	}
	s.endTurn()
	s.publish(move)
	return nil
}

// Undo takes back the current player's unfinished capture chain, or else the last turn.
// When the opponent is a bot its reply is taken back as well, so the player gets
// their own previous turn again.
func (s *Session) Undo(opponentIsBot bool) error {
	if s.state.Len() <= 1 {
		return game.ErrNoHistory
	}
	if s.chainStep > 0 {
		if err := s.state.Undo(); err != nil {
			return err
		}
		s.resetChain()
		log.Debug().Str("game", s.ID).Msg("undid unfinished capture chain")
		s.publish(game.NoMove)
		return nil
	}

	if opponentIsBot && s.state.Len() > 2 {
		if err := s.state.Undo(); err != nil {
			return err
		}
		s.previousTurn()
	}
	if err := s.state.Undo(); err != nil {
		return err
	}
	s.previousTurn()
	log.Debug().Str("game", s.ID).Msgf("undid turn, %s to move at turn %d", s.toMove, s.turn)
	s.publish(game.NoMove)
	return nil
}

// Restart resets the session to the initial position.
func (s *Session) Restart() {
	s.Reset(game.NewBoard(), game.White)
}

// Reset starts the session over from an arbitrary position.
func (s *Session) Reset(b game.Board, toMove game.Color) {
	s.state.Reset(b)
	s.toMove = toMove
	s.turn = 0
	s.resetChain()
	s.publish(game.NoMove)
}

func (s *Session) endTurn() {
	s.resetChain()
	s.toMove = s.toMove.Opponent()
	s.turn++
}

func (s *Session) previousTurn() {
	s.resetChain()
	s.toMove = s.toMove.Opponent()
	if s.turn > 0 {
		s.turn--
	}
}

func (s *Session) resetChain() {
	s.chainStep = 0
	s.chainPos = game.Pos{X: game.NoCapture, Y: game.NoCapture}
	s.legal = nil
}

func (s *Session) publish(move game.Move) {
	u := Update{
		Move:      move,
		Board:     s.state.Snapshot(),
		ChainStep: s.chainStep,
		ToMove:    s.toMove,
		Turn:      s.turn,
	}
	select {
	case s.updateCh <- u:
	default:
	}
}
