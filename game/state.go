package game

import "fmt"

// State is the authoritative board together with its undo history. Every applied move
// appends a snapshot tagged with its position in a capture chain: 0 for a standalone
// move, N for the Nth capture of a chain. The initial position is always the first
// entry, so the history is never empty.
//
// State has a single writer: the turn owner applying moves. Readers take snapshots.
type State struct {
	mtx     Board
	history []Board
	chain   []int
}

// NewState returns a state initialized to the starting position.
func NewState() *State {
	s := &State{}
	s.Initialize()
	return s
}

// Initialize resets the board to the starting position and clears the history.
func (s *State) Initialize() {
	s.Reset(NewBoard())
}

// Reset makes b the current board and the only history entry.
func (s *State) Reset(b Board) {
	s.mtx = b
	s.history = []Board{b}
	s.chain = []int{0}
}

// ApplyMove plays a move that the caller has already validated against the legal moves.
// It only refuses moves whose destination is occupied or whose origin is empty.
func (s *State) ApplyMove(m Move, chainStep int) error {
	if !InBounds(m.X, m.Y) || !InBounds(m.X2, m.Y2) {
		return fmt.Errorf("%w: %v is off the board", ErrInvalidMove, m)
	}
	if s.mtx[m.X2][m.Y2] != Empty {
		return fmt.Errorf("%w: destination of %v is not empty", ErrInvalidMove, m)
	}
	if s.mtx[m.X][m.Y] == Empty {
		return fmt.Errorf("%w: origin of %v is empty", ErrInvalidMove, m)
	}
	s.mtx = s.mtx.Apply(m)
	s.history = append(s.history, s.mtx)
	s.chain = append(s.chain, chainStep)
	return nil
}

// Snapshot returns a copy of the current board.
func (s *State) Snapshot() Board {
	return s.mtx
}

// Undo removes the last turn. If the last entry is the Nth step of a capture chain, the
// N entries of the chain are removed, restoring the board from before the chain began.
func (s *State) Undo() error {
	if len(s.history) <= 1 {
		return ErrNoHistory
	}
	steps := max(1, s.chain[len(s.chain)-1])
	for ; steps > 0 && len(s.history) > 1; steps-- {
		s.history = s.history[:len(s.history)-1]
		s.chain = s.chain[:len(s.chain)-1]
	}
	s.mtx = s.history[len(s.history)-1]
	return nil
}

// Len returns the number of history entries, the initial position included.
func (s *State) Len() int {
	return len(s.history)
}

// ChainTag returns the chain step recorded with the last history entry.
func (s *State) ChainTag() int {
	return s.chain[len(s.chain)-1]
}
