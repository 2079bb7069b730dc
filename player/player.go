package player

import "checkers/gamemaster"

// Response is what a player hands back to the turn loop after its turn.
type Response int

const (
	OK     Response = iota // the turn was played
	Back                   // take back the last turn
	Replay                 // start a new game
	Quit                   // leave the game
	Cell                   // a square was selected; never returned by TakeTurn
)

func (r Response) String() string {
	switch r {
	case OK:
		return "ok"
	case Back:
		return "back"
	case Replay:
		return "replay"
	case Quit:
		return "quit"
	case Cell:
		return "cell"
	default:
		return "unknown"
	}
}

// Player plays a full turn, capture chain included, on the session.
type Player interface {
	TakeTurn(s *gamemaster.Session) (Response, error)
}

// IsBot reports whether p is a bot. Taking back a turn against a bot also takes back
// the bot's reply.
func IsBot(p Player) bool {
	_, ok := p.(*Bot)
	return ok
}
