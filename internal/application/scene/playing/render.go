package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/state"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
)

// Colors for rendering
var (
	colorGround   = color.RGBA{139, 69, 19, 255}
	colorBrick    = color.RGBA{185, 122, 87, 255}
	colorPipe     = color.RGBA{34, 177, 76, 255}
	colorPipeCap  = color.RGBA{24, 140, 56, 255}
	colorSpike    = color.RGBA{128, 128, 128, 255}
	colorFlag     = color.RGBA{220, 20, 60, 255}
	colorDoor     = color.RGBA{90, 40, 120, 255}
	colorPlayer   = color.RGBA{237, 28, 36, 255}
	colorFlash    = color.RGBA{255, 255, 255, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorPlatform = color.RGBA{200, 160, 90, 255}
	colorShot     = color.RGBA{255, 140, 0, 255}
	colorBoss     = color.RGBA{120, 20, 20, 255}
	colorBeam     = color.RGBA{120, 255, 160, 200}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{220, 40, 40, 255}
	colorUnknown  = color.RGBA{255, 0, 255, 255}
)

var enemyColors = map[entity.Kind]color.RGBA{
	entity.KindGoomba:     {160, 100, 50, 255},
	entity.KindKoopa:      {50, 150, 50, 255},
	entity.KindRager:      {200, 60, 30, 255},
	entity.KindSpinner:    {230, 120, 200, 255},
	entity.KindGhost:      {235, 235, 255, 255},
	entity.KindSlime:      {90, 210, 90, 255},
	entity.KindTeleporter: {150, 80, 220, 255},
	entity.KindThief:      {60, 60, 70, 255},
	entity.KindDodger:     {60, 200, 220, 255},
	entity.KindShielder:   {110, 110, 160, 255},
	entity.KindHealer:     {250, 250, 140, 255},
}

var powerUpColors = map[entity.PowerUpKind]color.RGBA{
	entity.PowerExtraLife:     {40, 200, 40, 255},
	entity.PowerRapidFire:     {255, 120, 0, 255},
	entity.PowerInvincibility: {255, 255, 255, 255},
}

var toneColors = map[entity.ParticleTone]color.RGBA{
	entity.ToneCoin:    colorCoin,
	entity.ToneStomp:   {255, 255, 255, 255},
	entity.TonePowerUp: {120, 255, 160, 255},
	entity.ToneBoss:    {255, 80, 40, 255},
}

const controlsHelp = "ARROWS/AD: Move | SPACE/W: Jump | X: Shoot | P: Pause | R: Restart | T: Chat"

func tileColor(k entity.TileKind) (color.RGBA, bool) {
	switch k {
	case entity.TileGround:
		return colorGround, true
	case entity.TileBlock:
		return colorBrick, true
	case entity.TilePipeBody:
		return colorPipe, true
	case entity.TilePipeCap:
		return colorPipeCap, true
	case entity.TileSpikeUp, entity.TileSpikeDown:
		return colorSpike, true
	case entity.TileFlag:
		return colorFlag, true
	case entity.TileBossDoor:
		return colorDoor, true
	}
	return color.RGBA{}, false
}

func spriteColor(sp system.Sprite) color.RGBA {
	var c color.RGBA
	switch sp.Kind {
	case entity.KindPlayer:
		c = colorPlayer
	case entity.KindBoss:
		c = colorBoss
	case entity.KindCoin:
		c = colorCoin
	case entity.KindPowerUp:
		c = powerUpColors[sp.PowerUp]
	case entity.KindMovingPlatform:
		c = colorPlatform
	case entity.KindProjectile:
		c = colorShot
	case entity.KindParticle:
		c = toneColors[sp.Tone]
	case entity.KindFallingSpike, entity.KindSpikeTrap:
		c = colorSpike
	default:
		var ok bool
		if c, ok = enemyColors[sp.Kind]; !ok {
			c = colorUnknown
		}
	}
	if sp.Flash {
		c = colorFlash
	}
	return fade(c, sp.Alpha)
}

// fade scales a color by alpha using premultiplied components
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// overlayText returns the centered message for a state, if it has one
func overlayText(snap system.Snapshot) (string, color.RGBA, bool) {
	switch snap.State {
	case state.StatePaused:
		return "PAUSED\n\nPress P to resume", color.RGBA{0, 0, 0, 128}, true
	case state.StateGameOver:
		return fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", snap.HUD.Score), color.RGBA{100, 0, 0, 180}, true
	case state.StateWin:
		return fmt.Sprintf("YOU WIN!\n\nFinal score: %d\n\nPress R to play again", snap.HUD.Score), color.RGBA{0, 0, 0, 160}, true
	}
	return "", color.RGBA{}, false
}

func hudText(h system.HUD) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d   Lives: %d   %s", h.Score, h.Lives, h.LevelName)
	if h.Combo > 1 {
		fmt.Fprintf(&b, "   Combo x%d (%s)", h.Combo, seconds(h.ComboFrames, h.Framerate))
	}
	if h.RapidFireFrames > 0 {
		fmt.Fprintf(&b, "   [RAPID %s]", seconds(h.RapidFireFrames, h.Framerate))
	}
	if h.InvincibleFrames > 0 {
		fmt.Fprintf(&b, "   [STAR %s]", seconds(h.InvincibleFrames, h.Framerate))
	}
	return b.String()
}

// seconds formats a frame count as seconds at the given framerate
func seconds(frames, framerate int) string {
	if framerate <= 0 {
		return fmt.Sprintf("%df", frames)
	}
	return fmt.Sprintf("%.1fs", float64(frames)/float64(framerate))
}

func drawSnapshot(screen *ebiten.Image, snap system.Snapshot) {
	screen.Fill(snap.Sky)

	ox := float32(-snap.CameraX + snap.ShakeX)
	oy := float32(snap.ShakeY)
	rect := func(r entity.Rect, c color.Color) {
		vector.DrawFilledRect(screen, float32(r.X)+ox, float32(r.Y)+oy, float32(r.W), float32(r.H), c, false)
	}

	for _, t := range snap.Tiles {
		c, ok := tileColor(t.Kind)
		if !ok {
			continue
		}
		r := t.Rect
		switch t.Kind {
		case entity.TileSpikeUp:
			r.Y += r.H / 2
			r.H /= 2
		case entity.TileSpikeDown:
			r.H /= 2
		case entity.TileFlag, entity.TileBossDoor:
			r.X += r.W/2 - 3
			r.W = 6
			r.Y -= r.H * 3
			r.H *= 4
		}
		rect(r, c)
	}

	for _, sp := range snap.Sprites {
		rect(sp.Rect, spriteColor(sp))
	}
	for _, b := range snap.Beams {
		vector.StrokeLine(screen, float32(b.X1)+ox, float32(b.Y1)+oy, float32(b.X2)+ox, float32(b.Y2)+oy, 2, colorBeam, false)
	}

	drawHUD(screen, snap)

	if text, bg, ok := overlayText(snap); ok {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.ScreenW), float32(snap.ScreenH), bg, false)
		ebitenutil.DebugPrintAt(screen, text, snap.ScreenW/2-60, snap.ScreenH/2-30)
	}

	drawChat(screen, snap)
}

func drawHUD(screen *ebiten.Image, snap system.Snapshot) {
	ebitenutil.DebugPrintAt(screen, hudText(snap.HUD), 10, 10)
	ebitenutil.DebugPrintAt(screen, controlsHelp, 10, snap.ScreenH-20)

	h := snap.HUD
	if h.BossMaxHealth > 0 {
		barW := float32(200)
		x := float32(snap.ScreenW)/2 - barW/2
		ratio := float32(h.BossHealth) / float32(h.BossMaxHealth)
		vector.DrawFilledRect(screen, x, 30, barW, 10, colorHealthBG, false)
		vector.DrawFilledRect(screen, x, 30, barW*ratio, 10, colorHealthFG, false)
		ebitenutil.DebugPrintAt(screen, "BOSS", int(x)-36, 27)
	}
}

func drawChat(screen *ebiten.Image, snap system.Snapshot) {
	y := snap.ScreenH - 60 - 14*len(snap.ChatLog)
	for _, line := range snap.ChatLog {
		ebitenutil.DebugPrintAt(screen, line, 10, y)
		y += 14
	}
	if snap.ChatActive {
		vector.DrawFilledRect(screen, 6, float32(snap.ScreenH-44), float32(snap.ScreenW-12), 18, color.RGBA{0, 0, 0, 160}, false)
		ebitenutil.DebugPrintAt(screen, "> "+snap.ChatBuffer+"_", 10, snap.ScreenH-42)
	}
}
