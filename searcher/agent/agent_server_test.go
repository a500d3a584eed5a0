package agent

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"pursuit/game"
	"pursuit/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/findmove", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAgentServer(t *testing.T) {
	t.Run("answers with the chosen move", func(t *testing.T) {
		server := httptest.NewServer(NewHandler(NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2)), nil)))
		defer server.Close()

		resp := post(t, server.URL, `{"layout": "P.G"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, "East", got["action"])
		require.Equal(t, 509.0, got["utility"])
	})

	t.Run("restores the score and markers under the adversary", func(t *testing.T) {
		stub := &stubAgent{}
		server := httptest.NewServer(NewHandler(stub))
		defer server.Close()

		resp := post(t, server.URL, `{"layout": "P..g ", "score": -3}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, stub.last)
		require.Equal(t, -3.0, stub.last.Score())
		require.Equal(t, 3, stub.last.Markers().Count())
		require.Equal(t, game.Position{X: 3, Y: 0}, stub.last.AdversaryPosition(game.Adversary))
	})

	t.Run("only accepts posts", func(t *testing.T) {
		server := httptest.NewServer(NewHandler(&stubAgent{}))
		defer server.Close()

		resp, err := http.Get(server.URL + "/findmove")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("malformed requests", func(t *testing.T) {
		stub := &stubAgent{}
		server := httptest.NewServer(NewHandler(stub))
		defer server.Close()

		for _, body := range []string{`{"layout":`, `{"layout": "P.."}`, `{"layout": ""}`} {
			resp := post(t, server.URL, body)

			require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}
		require.Equal(t, 0, stub.calls, "Agent should not be asked on bad requests")
	})

	t.Run("agent failures", func(t *testing.T) {
		server := httptest.NewServer(NewHandler(&stubAgent{err: errors.New("no move")}))
		defer server.Close()

		resp := post(t, server.URL, `{"layout": "P.G"}`)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("infinite utilities are null", func(t *testing.T) {
		server := httptest.NewServer(NewHandler(&stubAgent{utility: math.Inf(1)}))
		defer server.Close()

		resp := post(t, server.URL, `{"layout": "P.G"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, "Stop", got["action"])
		require.Contains(t, got, "utility")
		require.Nil(t, got["utility"])
	})
}
