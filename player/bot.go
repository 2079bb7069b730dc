package player

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Searcher exposes the metrics of the last search of a player that searches.
type Searcher interface {
	LastMetrics() metrics.SearchMetric
}

// Bot plays color with a minimax search over the session's board.
type Bot struct {
	color game.Color
	logic *searcher.Logic
	delay time.Duration
}

// NewBot creates a bot for color whose search watches the session's board. It is
// configured from the session config; options override the config.
func NewBot(s *gamemaster.Session, color game.Color, options ...searcher.Option) *Bot {
	cfg := s.Config()
	options = append(searcher.FromConfig(cfg, color), options...)
	return &Bot{
		color: color,
		logic: searcher.NewLogic(s, options...),
		delay: cfg.StepDelay(),
	}
}

// SetDelay sets the minimum thinking time and the pause between chain steps.
func (b *Bot) SetDelay(d time.Duration) {
	b.delay = d
}

func (b *Bot) SetDepth(depth int) {
	b.logic.SetDepth(depth)
}

func (b *Bot) Color() game.Color {
	return b.color
}

func (b *Bot) LastMetrics() metrics.SearchMetric {
	return b.logic.LastMetrics()
}

// TakeTurn searches for the best full move and plays it step by step. The search runs
// alongside the delay so the turn never completes faster than the delay.
func (b *Bot) TakeTurn(s *gamemaster.Session) (Response, error) {
	if s.ToMove() != b.color {
		return OK, fmt.Errorf("bot %s asked to move for %s", b.color, s.ToMove())
	}

	start := time.Now()
	var wg sync.WaitGroup
	if b.delay > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(b.delay)
		}()
	}
	seq := b.logic.FindBestSequence(b.color)
	wg.Wait()
	m := b.logic.LastMetrics()
	log.Debug().
		Str("game", s.ID).
		Dur("elapsed", time.Since(start)).
		Int("chain", len(seq)).
		Int("nodes", m.Nodes).
		Int("cutoffs", m.Cutoffs).
		Msgf("%s bot turn %d", b.color, s.Turn())

	for i, move := range seq {
		if i > 0 && b.delay > 0 {
			time.Sleep(b.delay)
		}
		if err := s.Play(move); err != nil {
			return OK, fmt.Errorf("failed to play step %d of %v: %w", i+1, seq, err)
		}
	}
	return OK, nil
}
