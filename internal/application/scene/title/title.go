// Package title provides the title card shown before a run starts.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
)

var colorBG = color.RGBA{107, 140, 255, 255}

// Title waits for Jump or Enter, then moves on to the scene built by next
type Title struct {
	next    scene.Factory
	input   system.InputSource
	screenW int
	screenH int
	frames  int
	armed   bool
}

// New creates a title card. Input is read from src.
func New(next scene.Factory, src system.InputSource, screenW, screenH int) *Title {
	return &Title{
		next:    next,
		input:   src,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update implements scene.Scene
func (t *Title) Update() (scene.Scene, error) {
	t.frames++
	in := t.input.Poll()
	start := in.Jump || in.Submit

	// A key still held from launch must be released first
	if !start {
		t.armed = true
		return nil, nil
	}
	if !t.armed {
		return nil, nil
	}
	return t.next(), nil
}

// Draw implements scene.Scene
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "SUPAR MAYRO 3", t.screenW/2-40, t.screenH/2-40)
	if (t.frames/30)%2 == 0 {
		ebitenutil.DebugPrintAt(screen, "Press SPACE or ENTER to start", t.screenW/2-88, t.screenH/2)
	}
}

// OnEnter implements scene.Scene
func (t *Title) OnEnter() {
	t.armed = false
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}
