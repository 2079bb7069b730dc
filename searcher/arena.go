package searcher

import "checkers/game"

type stateID int

const noState stateID = -1

// arena stores the decision tree built while resolving the bot's capture chain as two
// parallel slices indexed by state. State 0 is the root; following next until reaching
// a state whose move has no destination terminates the chain.
type arena struct {
	moves []game.Move
	next  []stateID
}

func (a *arena) reset() {
	a.moves = a.moves[:0]
	a.next = a.next[:0]
}

// alloc adds a state with no move and no successor.
func (a *arena) alloc() stateID {
	a.moves = append(a.moves, game.NoMove)
	a.next = append(a.next, noState)
	return stateID(len(a.moves) - 1)
}

func (a *arena) set(id stateID, move game.Move, next stateID) {
	a.moves[id] = move
	a.next[id] = next
}

func (a *arena) empty(id stateID) bool {
	return a.moves[id].Empty()
}

func (a *arena) replay() []game.Move {
	var res []game.Move
	for cur := stateID(0); cur != noState && int(cur) < len(a.moves); cur = a.next[cur] {
		if a.moves[cur].Empty() {
			break
		}
		res = append(res, a.moves[cur])
	}
	return res
}
