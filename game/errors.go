package game

import "errors"

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrNoHistory   = errors.New("no history to undo")
)
