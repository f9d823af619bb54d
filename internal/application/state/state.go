package state

// GameState is the current phase of the run state machine
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

// String returns the state name
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the run is over in this state
func (s GameState) Terminal() bool {
	return s == StateGameOver
}
