package player

import (
	"checkers/game"
	"checkers/gamemaster"
	"checkers/utils"
	"fmt"
)

// Hand waits for the next input of a human player. For a Cell response it also
// returns the selected square.
type Hand interface {
	Cell() (Response, game.Pos)
}

// Highlighter marks squares on the board the human is looking at.
type Highlighter interface {
	Highlight(cells []game.Pos)
	SetActive(p game.Pos)
	Clear()
}

// Human plays the moves a person selects through a Hand.
type Human struct {
	hand Hand
	view Highlighter
}

func NewHuman(hand Hand, view Highlighter) *Human {
	if hand == nil || view == nil {
		panic("Must provide a hand and a view")
	}
	return &Human{hand: hand, view: view}
}

// TakeTurn lets the human pick a piece and then a destination among the legal moves.
// The origins of the legal moves are highlighted until a piece is picked, then its
// destinations. After a capture that can be continued, the human keeps selecting
// landing squares for the same piece until the chain ends. Any response other than a
// cell selection ends the turn early and is handed back to the caller.
func (h *Human) TakeTurn(s *gamemaster.Session) (Response, error) {
	defer h.view.Clear()

	active := false
	var selected game.Pos
	for {
		legal := s.Legal()
		if len(legal) == 0 {
			return OK, nil
		}
		if s.ChainStep() > 0 {
			active = true
			selected = s.ChainPos()
		}

		h.view.Clear()
		if active {
			h.view.SetActive(selected)
			h.view.Highlight(destinations(legal, selected))
		} else {
			h.view.Highlight(origins(legal))
		}

		resp, pos := h.hand.Cell()
		if resp != Cell {
			return resp, nil
		}

		if active {
			if move, ok := findMove(legal, selected, pos); ok {
				if err := s.Play(move); err != nil {
					return OK, fmt.Errorf("failed to play %v: %w", move, err)
				}
				if s.ChainStep() == 0 {
					return OK, nil
				}
				continue
			}
		}
		// A piece can be reselected until the first capture of a chain.
		if s.ChainStep() == 0 && isOrigin(legal, pos) {
			active = true
			selected = pos
		}
	}
}

func origins(moves []game.Move) []game.Pos {
	var res []game.Pos
	for _, m := range moves {
		res = utils.AppendUnique(res, m.From())
	}
	return res
}

func destinations(moves []game.Move, from game.Pos) []game.Pos {
	var res []game.Pos
	for _, m := range moves {
		if m.From() == from {
			res = utils.AppendUnique(res, m.To())
		}
	}
	return res
}

func isOrigin(moves []game.Move, p game.Pos) bool {
	for _, m := range moves {
		if m.From() == p {
			return true
		}
	}
	return false
}

func findMove(moves []game.Move, from, to game.Pos) (game.Move, bool) {
	for _, m := range moves {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return game.NoMove, false
}
