package system

import (
	"image/color"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/state"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
)

// Sprite is one drawable entity in world coordinates
type Sprite struct {
	ID          entity.EntityID
	Kind        entity.Kind
	Rect        entity.Rect
	Alpha       float64
	FacingRight bool
	Flash       bool // hit or invincibility blink

	PowerUp entity.PowerUpKind  // KindPowerUp only
	Tone    entity.ParticleTone // KindParticle only
	Phase   int                 // boss phase, spinner phase, trap state
}

// Beam is a cosmetic line between two entities
type Beam struct {
	X1, Y1, X2, Y2 float64
}

// HUD is the overlay information for one frame
type HUD struct {
	Score      int
	Lives      int
	LevelName  string
	Combo      int

	// Remaining frames of each timed effect; zero when inactive
	ComboFrames      int
	RapidFireFrames  int
	InvincibleFrames int
	Framerate        int

	BossHealth    int
	BossMaxHealth int
}

// Snapshot is the read-only view a renderer draws from
type Snapshot struct {
	Frame int
	State state.GameState
	Sky   color.RGBA

	CameraX        float64
	ShakeX, ShakeY float64
	ScreenW        int
	ScreenH        int

	Tiles   []entity.Tile
	Sprites []Sprite
	Beams   []Beam
	HUD     HUD

	ChatActive bool
	ChatBuffer string
	ChatLog    []string
}

// PlayerSprite returns the sprite of the player
func PlayerSprite(p *entity.Player, frame int) Sprite {
	return Sprite{
		Kind:        entity.KindPlayer,
		Rect:        p.Rect(),
		Alpha:       1,
		FacingRight: p.FacingRight,
		Flash:       p.IsInvincible() && (frame/4)%2 == 0,
	}
}

// EnemySprite returns the sprite of an enemy, or false when nothing should be drawn
func EnemySprite(e *entity.Enemy) (Sprite, bool) {
	if !e.Alive || !e.Visible {
		return Sprite{}, false
	}
	phase := int(e.Spin)
	switch e.Kind {
	case entity.KindTeleporter:
		phase = int(e.Teleport)
	case entity.KindThief:
		phase = int(e.Thief)
	}
	return Sprite{
		ID:          e.ID,
		Kind:        e.Kind,
		Rect:        e.Rect(),
		Alpha:       e.Alpha,
		FacingRight: e.Dir > 0,
		Phase:       phase,
	}, true
}

// BossSprite returns the sprite of the boss
func BossSprite(b *entity.Boss) Sprite {
	return Sprite{
		ID:          b.ID,
		Kind:        entity.KindBoss,
		Rect:        b.Rect(),
		Alpha:       1,
		FacingRight: b.Dir > 0,
		Flash:       b.HitTimer > 0,
		Phase:       b.Phase,
	}
}

// CoinSprite returns the sprite of a coin with its bob applied
func CoinSprite(c *entity.Coin) Sprite {
	r := c.Rect
	r.Y += c.BobOffset()
	return Sprite{ID: c.ID, Kind: entity.KindCoin, Rect: r, Alpha: 1}
}

// HazardSprite returns the sprite of a hazard
func HazardSprite(h *entity.Hazard) Sprite {
	phase := int(h.Falling)
	if h.Kind == entity.HazardSpikeTrap && h.Extended {
		phase = 1
	}
	return Sprite{ID: h.ID, Kind: h.EntityKind(), Rect: h.Rect(), Alpha: 1, Phase: phase}
}

// ParticleSprite returns the sprite of a particle
func ParticleSprite(p *entity.Particle) Sprite {
	return Sprite{
		Kind:  entity.KindParticle,
		Rect:  entity.Rect{X: p.X - 2, Y: p.Y - 2, W: 4, H: 4},
		Alpha: p.Fade(),
		Tone:  p.Tone,
	}
}
