package engine

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type LocalGame struct {
	State     game.State
	Pursuer   agent.Agent
	Adversary Adversary
	Layout    string
	MaxTurns  int
}

func LocalEngine(layout string, state game.State, pursuer agent.Agent, adversary Adversary, maxTurns int) *LocalGame {
	if pursuer == nil || adversary == nil {
		panic("need a pursuer agent and an adversary")
	}
	if maxTurns <= 0 {
		panic("need a positive turn limit")
	}
	return &LocalGame{
		State:     state,
		Pursuer:   pursuer,
		Adversary: adversary,
		Layout:    layout,
		MaxTurns:  maxTurns,
	}
}

// Run executes the game loop: a pursuer decision, then an adversary response, until the game is over.
func (e *LocalGame) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.New(),
		Layout:    e.Layout,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s started on layout %s", gameMetric.ID, e.Layout)

	turn := 1
	for !e.over() && turn <= e.MaxTurns {
		action, searchMetric, err := e.Pursuer.FindMove(e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, errors.Wrapf(err, "turn %d", turn)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Action:       action.String(),
			SearchMetric: searchMetric,
		})

		next, ok := successorFor(e.State.PursuerSuccessors(), action)
		if !ok {
			return "", gameMetric, moveMetrics, errors.Errorf("turn %d: pursuer chose illegal move %s", turn, action)
		}
		e.State = next

		if !e.over() {
			successors := e.State.AdversarySuccessors(game.Adversary)
			if len(successors) > 0 {
				e.State = e.Adversary.Respond(e.State, successors).State
			}
		}
		turn++
	}

	outcome := Timeout
	switch {
	case e.State.IsWin():
		outcome = Win
	case e.State.IsLose():
		outcome = Lose
	}

	gameMetric.Outcome = string(outcome)
	gameMetric.Score = e.State.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game %s over after %d moves: %s with score %g", gameMetric.ID, gameMetric.TotalMoves, outcome, gameMetric.Score)
	return outcome, gameMetric, moveMetrics, nil
}

func (e *LocalGame) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

func successorFor(successors []game.Successor, action game.Action) (game.State, bool) {
	for _, s := range successors {
		if s.Action == action {
			return s.State, true
		}
	}
	return nil, false
}
