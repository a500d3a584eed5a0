// meta/meta.go
package meta

// MaxDepth defines the default number of plies searched before cutting off.
const MaxDepth = 5

// MaxTurns bounds the number of pursuer moves in a local game.
const MaxTurns = 300

// HistoryCapacity defines the default number of commitments kept, 0 keeps all.
const HistoryCapacity = 0

// Score rules of the reference maze game.
const (
	TimePenalty  = 1.0
	MarkerReward = 10.0
	WinReward    = 500.0
	LosePenalty  = 500.0
)
