package state

// GameState is the run state of an arena session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// TogglePause switches between playing and paused; other states are kept
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}

// Finished reports whether the session needs a restart to continue
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateReplayDone
}
