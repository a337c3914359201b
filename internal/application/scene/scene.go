// Package scene defines the Scene interface for game screens.
//
// The title card and the playing field each implement Scene. The simulation
// itself is frame stepped, so scenes advance exactly one tick per Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Recordings are flushed here.
	OnExit()
}

// Factory builds a scene on demand, so transitions can start fresh state
type Factory func() Scene
