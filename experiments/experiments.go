package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/player"
	"checkers/searcher"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

const (
	NumGames  = 20 // Per match up
	MaxTurns  = meta.MAX_TURNS
	OutputDir = "experiments"
)

// Experiment plays a number of bot games for each match up and stores the agent
// configs, the game records and the move records as CSV files.
type Experiment struct {
	Name      string
	MatchUps  [][2]metrics.AgentConfig
	NumGames  int
	MaxTurns  int
	OutputDir string
}

// Registry maps experiment names to their runners.
var Registry = map[string]func() error{
	"depth":   RunDepthExperiment,
	"scoring": RunScoringExperiment,
	"pruning": RunPruningExperiment,
}

// Names returns the registered experiment names in order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newExperiment(name string, matchUps [][2]metrics.AgentConfig) Experiment {
	return Experiment{
		Name:      name,
		MatchUps:  matchUps,
		NumGames:  NumGames,
		MaxTurns:  MaxTurns,
		OutputDir: OutputDir,
	}
}

// RunDepthExperiment pairs deeper searches against a depth 1 baseline.
func RunDepthExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Scoring: game.ScoringNumberAndPotential, Pruning: true}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= 5; depth++ {
		config := metrics.AgentConfig{ID: depth - 1, Depth: depth, Scoring: baseline.Scoring, Pruning: true}
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	_, err := newExperiment("depth", matchUps).Run()
	return err
}

// RunScoringExperiment pairs the two scoring modes at equal depths.
func RunScoringExperiment() error {
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= 4; depth++ {
		number := metrics.AgentConfig{ID: 2*depth - 2, Depth: depth, Scoring: game.ScoringNumber, Pruning: true}
		potential := metrics.AgentConfig{ID: 2*depth - 1, Depth: depth, Scoring: game.ScoringNumberAndPotential, Pruning: true}
		matchUps = append(matchUps, [2]metrics.AgentConfig{number, potential})
	}
	_, err := newExperiment("scoring", matchUps).Run()
	return err
}

// RunPruningExperiment pairs agents with and without alpha-beta pruning at equal
// depths. The move records show the nodes saved by pruning.
func RunPruningExperiment() error {
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= 5; depth++ {
		full := metrics.AgentConfig{ID: 2*depth - 4, Depth: depth, Scoring: game.ScoringNumberAndPotential, Pruning: false}
		pruned := metrics.AgentConfig{ID: 2*depth - 3, Depth: depth, Scoring: game.ScoringNumberAndPotential, Pruning: true}
		matchUps = append(matchUps, [2]metrics.AgentConfig{full, pruned})
	}
	_, err := newExperiment("pruning", matchUps).Run()
	return err
}

// Run plays every match up and writes the results. Within a match up the agents
// alternate colors from game to game.
func (x Experiment) Run() (*metrics.Writer, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), matchup[0], matchup[1])

		for i := 0; i < x.NumGames; i++ {
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}

			result, gameMetric, moveMetrics, err := runGame(white, black, x.MaxTurns)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d failed: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				agent := white.ID
				if mm.Player == game.Black {
					agent = black.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      agent,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with result: %s", mi+1, len(x.MatchUps), i+1, x.NumGames, result)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.configs()); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return writer, nil
}

// configs returns the distinct agents of the match ups ordered by ID.
func (x Experiment) configs() []metrics.AgentConfig {
	seen := map[int]metrics.AgentConfig{}
	for _, matchup := range x.MatchUps {
		for _, c := range matchup {
			seen[c.ID] = c
		}
	}
	configs := make([]metrics.AgentConfig, 0, len(seen))
	for _, c := range seen {
		configs = append(configs, c)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs
}

// runGame plays a single game between two bots
func runGame(white, black metrics.AgentConfig, maxTurns int) (gamemaster.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	cfg := config.DefaultConfig()
	cfg.Bot.IsWhiteBot = true
	cfg.Bot.IsBlackBot = true
	cfg.Bot.BotDelayMS = 0
	cfg.Game.MaxNumTurns = maxTurns

	s := gamemaster.NewSession(cfg)
	e := engine.NewLocalEngine(s, createBot(s, game.White, white), createBot(s, game.Black, black))
	return e.Run()
}

func createBot(s *gamemaster.Session, color game.Color, config metrics.AgentConfig) *player.Bot {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithPruning(config.Pruning),
	}
	if config.Scoring != "" {
		options = append(options, searcher.WithScoring(config.Scoring))
	}

	options = append(options, searcher.WithMetrics())
	return player.NewBot(s, color, options...)
}
