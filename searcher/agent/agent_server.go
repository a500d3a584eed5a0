package agent

import (
	"encoding/json"
	"math"
	"net/http"
	"pursuit/game"

	"github.com/rs/zerolog/log"
)

// FindMoveRequest carries a state as a layout and the score reached so far.
type FindMoveRequest struct {
	Layout string  `json:"layout"`
	Score  float64 `json:"score"`
}

type FindMoveResponse struct {
	Action  game.Action `json:"action"`
	Utility *float64    `json:"utility"` // Null when the search only found dead ends
}

// NewHandler exposes an agent over HTTP. Requests are served one at a time
// since the agent's history is shared by all of them.
func NewHandler(a Agent) http.Handler {
	requests := make(chan struct{}, 1)

	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		requests <- struct{}{}
		defer func() { <-requests }()
		handleFindMove(a, w, r)
	})
	return mux
}

// StartAgentServer serves the agent on the given address until the server fails.
func StartAgentServer(addr string, a Agent) error {
	log.Info().Msgf("starting agent server on %s ...", addr)
	return http.ListenAndServe(addr, NewHandler(a))
}

func handleFindMove(a Agent, w http.ResponseWriter, r *http.Request) {
	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := game.ParseLayout(payload.Layout)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state.Points = payload.Score

	action, metric, err := a.FindMove(state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	response := FindMoveResponse{Action: action}
	if !math.IsInf(metric.Utility, 0) {
		utility := metric.Utility
		response.Utility = &utility
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("failed to encode move")
	}
}
