package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
)

// Keyboard polls ebiten for the next frame of input.
// Arrows or A/D move, Space or W jumps, X shoots, P or Esc pauses, R restarts, T opens chat.
type Keyboard struct {
	chars []rune
}

// Poll implements system.InputSource
func (k *Keyboard) Poll() system.Input {
	k.chars = ebiten.AppendInputChars(k.chars[:0])

	in := system.Input{
		Left:       anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:      anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:       anyPressed(ebiten.KeySpace, ebiten.KeyW),
		Shoot:      anyPressed(ebiten.KeyX),
		Pause:      anyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		Restart:    anyJustPressed(ebiten.KeyR),
		ChatToggle: anyJustPressed(ebiten.KeyT),
		Submit:     anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Cancel:     anyJustPressed(ebiten.KeyEscape),
		Backspace:  repeating(ebiten.KeyBackspace),
	}
	if len(k.chars) > 0 {
		in.Chars = append([]rune(nil), k.chars...)
	}
	return in
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// repeating fires on press and then every few frames while held
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 30 && d%4 == 0)
}
