package engine

import (
	"checkers/experiments/metrics"
	"checkers/gamemaster"
)

type Engine interface {
	// Run plays a game till one side cannot move, the turn limit is reached or a player quits
	Run() (result gamemaster.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
