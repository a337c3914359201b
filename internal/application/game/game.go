// Package game provides the ebiten.Game wrapper that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene one frame and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update()
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs the current scene's OnExit. Call it once ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frames
}
