package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateBossEncounter
	StateGameOver
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateBossEncounter:
		return "BossEncounter"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Frozen reports whether the simulation no longer advances.
// Only a restart leaves a frozen state.
func (s GameState) Frozen() bool {
	return s == StateGameOver || s == StateWin
}

// Simulating reports whether entities move this frame
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateBossEncounter
}
