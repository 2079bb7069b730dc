package searcher

import (
	"checkers/config"
	"checkers/experiments/metrics"
	"checkers/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(l *Logic)

// Logic generates legal moves for the board it watches and searches for the bot's
// best full move. It never modifies the board: the search works on value copies.
// A Logic is not safe for concurrent use.
type Logic struct {
	board     Snapshotter
	rng       *rand.Rand
	maxDepth  int
	scoring   game.ScoringMode
	evaluate  game.Evaluate
	pruning   bool
	haveBeats bool
	arena     arena
	metrics   metrics.Collector
	last      metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(l *Logic) {
		if depth >= 0 {
			l.maxDepth = depth
		}
	}
}

func WithScoring(mode game.ScoringMode) Option {
	return func(l *Logic) {
		if mode != "" {
			l.scoring = mode
			l.evaluate = game.Evaluator(mode)
		}
	}
}

func WithPruning(enabled bool) Option {
	return func(l *Logic) {
		l.pruning = enabled
	}
}

// WithSeed makes move ordering reproducible.
func WithSeed(seed uint64) Option {
	return func(l *Logic) {
		l.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(l *Logic) {
		if rng != nil {
			l.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(l *Logic) {
		l.metrics = metrics.NewCollector()
	}
}

// FromConfig derives the options for the bot playing color. With NoRandom set the
// generator is seeded with 0, otherwise with the current time.
func FromConfig(cfg config.Config, color game.Color) []Option {
	seed := uint64(time.Now().UnixNano())
	if cfg.Bot.NoRandom {
		seed = 0
	}
	return []Option{
		WithDepth(cfg.SearchDepth(color)),
		WithScoring(cfg.ScoringMode()),
		WithPruning(cfg.PruningEnabled()),
		WithSeed(seed),
	}
}

func NewLogic(board Snapshotter, options ...Option) *Logic {
	l := &Logic{ // Default values
		board:    board,
		maxDepth: 1,
		scoring:  game.ScoringNumber,
		evaluate: game.Evaluator(game.ScoringNumber),
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if board == nil {
		panic("Must provide a board to search")
	}
	return l
}

// SetDepth changes the search depth, e.g. when the same Logic serves two bots.
func (l *Logic) SetDepth(depth int) {
	if depth >= 0 {
		l.maxDepth = depth
	}
}

func (l *Logic) Depth() int {
	return l.maxDepth
}

// LegalMoves returns the legal moves of color on the current board in random order.
// When any piece can capture, only captures are returned.
func (l *Logic) LegalMoves(color game.Color) []game.Move {
	moves, beats := l.movesFor(l.board.Snapshot(), color)
	l.haveBeats = beats
	return moves
}

// PieceMoves returns the moves of the single piece at (x, y), e.g. to continue a
// capture chain from the square a piece has just landed on.
func (l *Logic) PieceMoves(x, y int) []game.Move {
	moves, beats := game.PieceMoves(l.board.Snapshot(), x, y)
	l.haveBeats = beats
	return moves
}

// HaveCaptures reports whether the moves of the last LegalMoves or PieceMoves call
// were captures.
func (l *Logic) HaveCaptures() bool {
	return l.haveBeats
}

// LastMetrics returns the metrics of the last FindBestSequence call. They are only
// populated when the Logic was created WithMetrics.
func (l *Logic) LastMetrics() metrics.SearchMetric {
	return l.last
}

func (l *Logic) movesFor(b game.Board, color game.Color) ([]game.Move, bool) {
	moves, beats := game.ColorMoves(b, color)
	l.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves, beats
}
