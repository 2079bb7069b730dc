package metrics

import (
	"checkers/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, "depth", filepath.Base(filepath.Dir(w.Dir())))

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 0, Depth: 1, Scoring: game.ScoringNumber, Pruning: true},
		{ID: 1, Depth: 3, Scoring: game.ScoringNumberAndPotential, Pruning: false},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:    1,
		White: 0,
		Black: 1,
		GameMetric: GameMetric{
			ID:             "session",
			StartingPlayer: game.White,
			Result:         "black",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     42,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:  1,
		Agent: 1,
		MoveMetric: MoveMetric{
			Step:   2,
			Player: game.Black,
			SearchMetric: SearchMetric{
				Depth:       3,
				Scoring:     game.ScoringNumber,
				Pruning:     true,
				Duration:    time.Millisecond,
				Nodes:       120,
				Cutoffs:     7,
				ChainLength: 2,
			},
		},
	}}))

	agents := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, agents, 3)
	require.Equal(t, []string{"1", "3", "NumberAndPotential", "false"}, agents[2])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "0", "1", "session", "white", "black",
		"2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s", "42"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "2", "black", "3", "Number", "true", "1ms", "120", "7", "2"}, moves[1])
}
