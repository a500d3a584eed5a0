package main

import (
	"flag"
	"os"
	"pursuit/config"
	"pursuit/experiments"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
	"pursuit/searcher/agent"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	parseFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	agentConfig := metrics.AgentConfig{
		ID:              1,
		MaxDepth:        cfg.MaxDepth,
		Evaluation:      cfg.Evaluation,
		Adversary:       cfg.Adversary,
		HistoryCapacity: cfg.HistoryCapacity,
	}

	if cfg.ServeAddr != "" {
		if err := agent.StartAgentServer(cfg.ServeAddr, experiments.NewAgent(agentConfig, nil)); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
		return
	}

	runner := experiments.Runner{
		Games:     cfg.Games,
		MaxTurns:  cfg.MaxTurns,
		Seed:      cfg.Seed,
		OutputDir: cfg.OutputDir,
		AgentURL:  cfg.AgentURL,
	}
	if cfg.DotFile != "" {
		runner.Tracer = searcher.NewDotTracer()
	}

	if cfg.Experiment == "depth" {
		_, err = runner.RunDepthExperiment(cfg.Adversary)
	} else {
		layout := cfg.Layout
		if cfg.LayoutFile != "" {
			layout = cfg.LayoutFile
		}
		_, err = runner.Run("pursuit", []metrics.AgentConfig{agentConfig}, []string{layout})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	if runner.Tracer != nil {
		if err := os.WriteFile(cfg.DotFile, []byte(runner.Tracer.ToDot()), 0644); err != nil {
			log.Fatal().Err(err).Msg("failed to write search graph")
		}
		log.Info().Msgf("wrote last search graph to %s", cfg.DotFile)
	}
}

func parseFlags(cfg *config.Config) {
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "Built-in layout, one of "+strings.Join(game.StandardLayoutNames(), ", "))
	flag.StringVar(&cfg.LayoutFile, "layout-file", cfg.LayoutFile, "Layout file, overrides -layout")
	flag.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "Number of plies searched before cutting off")
	flag.StringVar(&cfg.Evaluation, "eval", cfg.Evaluation, "Evaluation function: baseline or tour")
	flag.StringVar(&cfg.Adversary, "adversary", cfg.Adversary, "Adversary policy: greedy or random")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the random adversary")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play")
	flag.IntVar(&cfg.MaxTurns, "turns", cfg.MaxTurns, "Max pursuer moves per game")
	flag.IntVar(&cfg.HistoryCapacity, "history", cfg.HistoryCapacity, "Committed decisions kept across turns, 0 keeps all")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for CSV records")
	flag.StringVar(&cfg.DotFile, "dot", cfg.DotFile, "File for the Graphviz export of the last search")
	flag.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "Serve the agent over HTTP on this address")
	flag.StringVar(&cfg.AgentURL, "agent-url", cfg.AgentURL, "Play with the agent served at this URL")
	flag.StringVar(&cfg.Experiment, "experiment", cfg.Experiment, "Run a named experiment: depth")
	flag.Parse()
}
