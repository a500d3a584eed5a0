package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher/agent"

	"github.com/pkg/errors"
)

var _ agent.Agent = &RemoteAgent{}

// RemoteAgent asks an agent server for moves. States must render as layouts.
// The server keeps the history, so the same server should serve a whole game.
type RemoteAgent struct {
	URL    string
	Client *http.Client
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{URL: url, Client: http.DefaultClient}
}

// FindMove encodes the current state as a layout and posts it to /findmove on the agent side
func (r *RemoteAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	layout, ok := state.(fmt.Stringer)
	if !ok {
		return game.Stop, metrics.SearchMetric{}, errors.Errorf("state %T cannot be rendered as a layout", state)
	}

	body, err := json.Marshal(agent.FindMoveRequest{Layout: layout.String(), Score: state.Score()})
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, errors.Wrap(err, "failed to encode request")
	}

	resp, err := r.Client.Post(r.URL+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, errors.Wrap(err, "failed to reach agent")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Stop, metrics.SearchMetric{}, errors.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var payload agent.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return game.Stop, metrics.SearchMetric{}, errors.Wrap(err, "failed to decode move")
	}

	// The server omits utilities of searches that only found dead ends
	metric := metrics.SearchMetric{Utility: math.Inf(-1)}
	if payload.Utility != nil {
		metric.Utility = *payload.Utility
	}
	return payload.Action, metric, nil
}
