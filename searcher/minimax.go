package searcher

import "checkers/game"

// FindBestSequence searches the current board and returns the full move of color: a
// single step, or every capture of the chain in order. It returns no moves when color
// cannot move.
func (l *Logic) FindBestSequence(color game.Color) []game.Move {
	l.metrics.Start(l.maxDepth, l.scoring, l.pruning)
	l.arena.reset()

	root := l.arena.alloc()
	l.firstBestTurn(l.board.Snapshot(), color, noPos, root, initialAlpha)

	seq := l.arena.replay()
	l.last = l.metrics.Complete(len(seq))
	return seq
}

// firstBestTurn resolves the bot's own turn. At the root it considers every legal move
// of color; below the root it continues the capture chain of the piece standing at
// from. Each capture descends into the next chain state, and the best move of every
// state is recorded in the arena so the chain can be replayed. Once the chain ends the
// opponent's reply is evaluated by bestTurnsRec.
func (l *Logic) firstBestTurn(b game.Board, color game.Color, from game.Pos, state stateID, alpha float64) float64 {
	var turns []game.Move
	var beats bool
	if state != 0 {
		turns, beats = game.PieceMoves(b, from.X, from.Y)
	} else {
		turns, beats = l.movesFor(b, color)
	}
	if !beats && state != 0 {
		return l.bestTurnsRec(b, color.Opponent(), 0, alpha, initialBeta, noPos)
	}

	bestScore := initialAlpha
	for _, turn := range turns {
		var score float64
		next := noState
		if beats {
			next = l.arena.alloc()
			score = l.firstBestTurn(b.Apply(turn), color, turn.To(), next, bestScore)
		} else {
			score = l.bestTurnsRec(b.Apply(turn), color.Opponent(), 0, bestScore, initialBeta, noPos)
		}
		// A pruned reply can score as low as initialAlpha; the state still needs a move so
		// the chain never ends halfway.
		if score > bestScore || l.arena.empty(state) {
			bestScore = max(bestScore, score)
			l.arena.set(state, turn, next)
		}
	}
	return bestScore
}

// bestTurnsRec is the minimax evaluator. Odd depths maximize and even depths minimize
// the score; depth 0 is the opponent's reply to the bot's turn. A capture keeps the
// same color at the same depth with the capturing piece fixed, so a chain does not
// consume a ply.
func (l *Logic) bestTurnsRec(b game.Board, color game.Color, depth int, alpha, beta float64, from game.Pos) float64 {
	l.metrics.AddNode()
	if depth == l.maxDepth {
		return l.evaluate(b, depth%2 == int(color))
	}

	chained := from != noPos
	var turns []game.Move
	var beats bool
	if chained {
		turns, beats = game.PieceMoves(b, from.X, from.Y)
	} else {
		turns, beats = l.movesFor(b, color)
	}
	if !beats && chained {
		return l.bestTurnsRec(b, color.Opponent(), depth+1, alpha, beta, noPos)
	}
	if len(turns) == 0 {
		if depth%2 == 1 {
			return 0
		}
		return game.Inf
	}

	minScore := initialBeta
	maxScore := initialAlpha
	for _, turn := range turns {
		var score float64
		if !beats && !chained {
			score = l.bestTurnsRec(b.Apply(turn), color.Opponent(), depth+1, alpha, beta, noPos)
		} else {
			score = l.bestTurnsRec(b.Apply(turn), color, depth, alpha, beta, turn.To())
		}
		minScore = min(minScore, score)
		maxScore = max(maxScore, score)

		if depth%2 == 1 {
			alpha = max(alpha, maxScore)
		} else {
			beta = min(beta, minScore)
		}
		if l.pruning && alpha >= beta {
			l.metrics.AddCutoff()
			if depth%2 == 1 {
				return maxScore + 1
			}
			return minScore - 1
		}
	}
	if depth%2 == 1 {
		return maxScore
	}
	return minScore
}
