package experiments

import (
	"os"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Runner plays games between minimax pursuers and adversary policies.
type Runner struct {
	Games     int // Per agent config and layout
	MaxTurns  int
	Seed      uint64
	OutputDir string              // Empty disables CSV records
	Tracer    *searcher.DotTracer // Optional, ends up holding the last search
	AgentURL  string              // Non-empty plays with a remote agent instead of a local one
}

type Result struct {
	Outcomes map[engine.Outcome]int
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
	Summary  metrics.Summary
}

// RunDepthExperiment compares search depths and evaluation functions on the built-in layouts.
func (r Runner) RunDepthExperiment(adversary string) (Result, error) {
	return r.Run("depth", DepthConfigs(adversary), []string{"small", "medium"})
}

// DepthConfigs lists depths 1 to 5 for both evaluation functions against one adversary policy.
func DepthConfigs(adversary string) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	id := 1
	for _, evaluation := range []string{"baseline", "tour"} {
		for depth := 1; depth <= 5; depth++ {
			configs = append(configs, metrics.AgentConfig{ID: id, MaxDepth: depth, Evaluation: evaluation, Adversary: adversary})
			id++
		}
	}
	return configs
}

// Run plays r.Games games for every config on every layout. Layouts are
// built-in names or layout files.
func (r Runner) Run(name string, configs []metrics.AgentConfig, layouts []string) (Result, error) {
	result := Result{Outcomes: map[engine.Outcome]int{}}
	allMoves := []metrics.MoveMetric{}

	log.Info().Msgf("starting %s experiment...", name)

	seed := r.Seed
	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)
		for _, layout := range layouts {
			for i := 0; i < r.Games; i++ {
				state, err := LoadState(layout)
				if err != nil {
					return result, err
				}

				e := engine.LocalEngine(layout, state, r.pursuer(config), NewAdversary(config, seed), r.MaxTurns)
				seed++

				outcome, gameMetric, moveMetrics, err := e.Run()
				if err != nil {
					return result, errors.Wrapf(err, "config %d layout %s game %d", config.ID, layout, i+1)
				}
				result.Outcomes[outcome]++
				result.Games = append(result.Games, metrics.GameRecord{Agent: config.ID, GameMetric: gameMetric})
				for _, mm := range moveMetrics {
					result.Moves = append(result.Moves, metrics.MoveRecord{Game: gameMetric.ID.String(), MoveMetric: mm})
				}
				allMoves = append(allMoves, moveMetrics...)
			}
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	result.Summary = metrics.Summarize(allMoves)
	log.Info().
		Int("wins", result.Outcomes[engine.Win]).
		Int("losses", result.Outcomes[engine.Lose]).
		Int("timeouts", result.Outcomes[engine.Timeout]).
		Int("moves", result.Summary.Moves).
		Dur("mean_decision", result.Summary.MeanDuration).
		Float64("mean_expanded", result.Summary.MeanExpanded).
		Float64("history_hit_rate", result.Summary.HistoryHitRate).
		Msgf("completed %s experiment", name)

	if r.OutputDir == "" {
		return result, nil
	}
	return result, writeRecords(r.OutputDir, name, configs, result)
}

// pursuer builds a fresh local agent per game so history does not leak between
// games. A remote agent keeps its history on the server.
func (r Runner) pursuer(config metrics.AgentConfig) agent.Agent {
	if r.AgentURL != "" {
		return engine.NewRemoteAgent(r.AgentURL)
	}
	return NewAgent(config, r.Tracer)
}

func writeRecords(dir, name string, configs []metrics.AgentConfig, result Result) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// LoadState resolves a built-in layout name, or reads a layout file.
func LoadState(layout string) (*game.MazeState, error) {
	for _, name := range game.StandardLayoutNames() {
		if name == layout {
			return game.StandardLayout(name)
		}
	}
	text, err := os.ReadFile(layout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read layout file")
	}
	return game.LoadLayout(layout, string(text))
}

// NewAgent builds a minimax pursuer with its own history.
func NewAgent(config metrics.AgentConfig, tracer *searcher.DotTracer) agent.Agent {
	options := []searcher.Option{
		searcher.WithDepth(config.MaxDepth),
		searcher.WithMetrics(),
	}
	if config.Evaluation == "baseline" {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateBaseline))
	} else {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateTour))
	}
	if tracer != nil {
		options = append(options, searcher.WithTracer(tracer))
	}

	minimax := searcher.NewMinimax(options...)
	return agent.NewMinimaxAgent(minimax, searcher.NewHistory(config.HistoryCapacity))
}

func NewAdversary(config metrics.AgentConfig, seed uint64) engine.Adversary {
	if config.Adversary == "random" {
		return engine.NewRandomAdversary(seed)
	}
	return engine.GreedyAdversary{}
}
