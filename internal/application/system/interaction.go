package system

import (
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Frame is the post-movement world the interaction pass reconciles
type Frame struct {
	Number int

	Player      *entity.Player
	Grid        *entity.Grid
	Coins       []*entity.Coin
	PowerUps    []*entity.PowerUp
	Enemies     []*entity.Enemy
	Hazards     []*entity.Hazard
	Projectiles []*entity.Projectile
	Boss        *entity.Boss

	IsBoss   bool    // level is a boss arena
	BossMode bool    // session is in the boss encounter
	FlagX    float64 // exit x on normal levels
	DoorX    float64 // door x on boss levels

	Combo *Combo
}

// Burst asks for a cosmetic particle burst
type Burst struct {
	X, Y float64
	Tone entity.ParticleTone
}

// Shake asks for a screen shake
type Shake struct {
	Amplitude float64
	Frames    int
}

// Outcome is what the interaction pass decided this frame
type Outcome struct {
	Died         bool
	ReachedFlag  bool
	ReachedDoor  bool
	BossDefeated bool

	Events []Event
	Bursts []Burst
	Shake  *Shake
}

func (o *Outcome) emit(f *Frame, t EventType, x, y float64, value int, text string) {
	o.Events = append(o.Events, Event{Type: t, Frame: f.Number, X: x, Y: y, Value: value, Text: text})
}

// Combo tracks consecutive stomps inside the combo window
type Combo struct {
	Count int
	Timer int
}

// Hit registers a stomp and returns its bonus: min(count*step, cap)
func (c *Combo) Hit(step, limit, window int) int {
	c.Count++
	c.Timer = window
	return min(c.Count*step, limit)
}

// Tick runs the combo window down and ends the combo when it expires
func (c *Combo) Tick() {
	if c.Timer > 0 {
		c.Timer--
	}
	if c.Timer == 0 {
		c.Count = 0
	}
}

// Reset ends the combo immediately
func (c *Combo) Reset() {
	c.Count = 0
	c.Timer = 0
}

// IsStomp reports whether a player overlap counts as a stomp:
// the player is falling and its bottom is above the enemy's center line plus tolerance.
func IsStomp(vy, playerBottom, enemyCenterY, tolerance float64) bool {
	return vy > 0 && playerBottom < enemyCenterY+tolerance
}

// InteractionSystem resolves pairwise contacts after all entities moved
type InteractionSystem struct {
	config *config.GameConfig
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.GameConfig) *InteractionSystem {
	return &InteractionSystem{config: cfg}
}

// EnemyScore returns the score awarded for killing an enemy kind
func (s *InteractionSystem) EnemyScore(kind entity.Kind) int {
	return EnemyConfig(&s.config.Enemies, kind).Score
}

// Resolve runs every interaction check in order. The first death ends the player's checks.
func (s *InteractionSystem) Resolve(f *Frame) Outcome {
	var out Outcome
	p := f.Player
	if p == nil || !p.Alive {
		return out
	}

	s.collectCoins(f, &out)
	s.collectPowerUps(f, &out)
	s.resolveProjectiles(f, &out)

	if s.resolveEnemies(f, &out) || s.resolveBoss(f, &out) || s.resolveHazards(f, &out) {
		s.die(f, &out)
		return out
	}

	if p.Y > float64(s.config.Display.ScreenHeight) {
		s.die(f, &out)
		return out
	}

	s.resolveExit(f, &out)
	return out
}

func (s *InteractionSystem) die(f *Frame, out *Outcome) {
	out.Died = true
	cx, cy := f.Player.Center()
	out.emit(f, EventDeath, cx, cy, f.Player.Lives-1, "")
	out.Shake = &Shake{Amplitude: s.config.Feedback.ShakeAmplitude, Frames: s.config.Feedback.ShakeFrames}
}

func (s *InteractionSystem) collectCoins(f *Frame, out *Outcome) {
	pr := f.Player.Rect()
	for _, c := range f.Coins {
		if !c.Available() || !pr.Intersects(c.Rect) {
			continue
		}
		c.Collected = true
		f.Player.Score += s.config.Scoring.Coin
		out.emit(f, EventCoin, c.Rect.CenterX(), c.Rect.CenterY(), s.config.Scoring.Coin, "")
		out.Bursts = append(out.Bursts, Burst{X: c.Rect.CenterX(), Y: c.Rect.CenterY(), Tone: entity.ToneCoin})
	}
}

func (s *InteractionSystem) collectPowerUps(f *Frame, out *Outcome) {
	p := f.Player
	pr := p.Rect()
	for _, pu := range f.PowerUps {
		if pu.Collected || !pr.Intersects(pu.Rect) {
			continue
		}
		pu.Collected = true

		switch pu.Kind {
		case entity.PowerExtraLife:
			p.Lives = min(p.Lives+1, s.config.Player.MaxLives)
		case entity.PowerRapidFire:
			p.RapidFireTimer = s.config.PowerUps.RapidFireFrames
		case entity.PowerInvincibility:
			p.InvincibleTimer = s.config.PowerUps.InvincibilityFrames
		}
		out.emit(f, EventPowerUp, pu.Rect.CenterX(), pu.Rect.CenterY(), 0, pu.Kind.String())
		out.Bursts = append(out.Bursts, Burst{X: pu.Rect.CenterX(), Y: pu.Rect.CenterY(), Tone: entity.TonePowerUp})
	}
}

func (s *InteractionSystem) resolveProjectiles(f *Frame, out *Outcome) {
	for _, proj := range f.Projectiles {
		if !proj.Alive {
			continue
		}
		pr := proj.Rect()

		for _, e := range f.Enemies {
			if !e.Interactable() || !pr.Intersects(e.Rect()) {
				continue
			}
			proj.Alive = false
			if e.Kind == entity.KindShielder {
				break
			}
			e.Kill()
			score := s.EnemyScore(e.Kind)
			f.Player.Score += score
			cx, cy := e.Center()
			out.emit(f, EventKill, cx, cy, score, e.Kind.String())
			out.Bursts = append(out.Bursts, Burst{X: cx, Y: cy, Tone: entity.ToneStomp})
			break
		}
		if !proj.Alive {
			continue
		}

		if b := f.Boss; b != nil && b.Alive && pr.Intersects(b.Rect()) {
			proj.Alive = false
			s.hitBoss(f, out)
		}
	}
}

func (s *InteractionSystem) hitBoss(f *Frame, out *Outcome) {
	b := f.Boss
	b.TakeDamage(1)
	f.Player.Score += s.config.Boss.HitScore
	cx, cy := b.Center()
	out.emit(f, EventBossHit, cx, cy, b.Health, "")
	out.Bursts = append(out.Bursts, Burst{X: cx, Y: cy, Tone: entity.ToneBoss})
}

// resolveEnemies handles player contact with hostile enemies and reports a death
func (s *InteractionSystem) resolveEnemies(f *Frame, out *Outcome) bool {
	p := f.Player
	sc := s.config.Scoring

	for _, e := range f.Enemies {
		if !e.Interactable() || !p.Rect().Intersects(e.Rect()) {
			continue
		}

		if IsStomp(p.VY, p.Rect().Bottom(), e.Rect().CenterY(), sc.StompTolerance) {
			e.Kill()
			p.VY = -s.config.Player.StompBounce

			award := s.EnemyScore(e.Kind)
			bonus := 0
			if f.Combo != nil {
				bonus = f.Combo.Hit(sc.ComboStep, sc.ComboCap, sc.ComboWindow)
			}
			p.Score += award + bonus

			cx, cy := e.Center()
			out.emit(f, EventStomp, cx, cy, award+bonus, e.Kind.String())
			out.Bursts = append(out.Bursts, Burst{X: cx, Y: cy, Tone: entity.ToneStomp})
			continue
		}

		if !p.IsInvincible() {
			return true
		}
	}
	return false
}

// resolveBoss handles player contact with the boss; stomps only ever damage it
func (s *InteractionSystem) resolveBoss(f *Frame, out *Outcome) bool {
	p := f.Player
	b := f.Boss
	if b == nil || !b.Alive || !p.Rect().Intersects(b.Rect()) {
		return false
	}

	if IsStomp(p.VY, p.Rect().Bottom(), b.Rect().CenterY(), s.config.Scoring.StompTolerance) {
		p.VY = -s.config.Player.StompBounce
		s.hitBoss(f, out)
		return false
	}
	return !p.IsInvincible()
}

func (s *InteractionSystem) resolveHazards(f *Frame, out *Outcome) bool {
	p := f.Player
	if p.IsInvincible() {
		return false
	}
	pr := p.Rect()

	for _, tile := range f.Grid.HazardsNear(pr) {
		if pr.Intersects(tile.Rect) {
			return true
		}
	}
	for _, h := range f.Hazards {
		if h.Lethal() && pr.Intersects(h.Rect()) {
			return true
		}
	}
	return false
}

func (s *InteractionSystem) resolveExit(f *Frame, out *Outcome) {
	p := f.Player

	if !f.IsBoss {
		if p.X >= f.FlagX {
			out.ReachedFlag = true
			p.Score += s.config.Scoring.Flag
			out.emit(f, EventLevelComplete, p.X, p.Y, s.config.Scoring.Flag, "")
		}
		return
	}

	if !f.BossMode {
		if p.X >= f.DoorX {
			out.ReachedDoor = true
			out.emit(f, EventBossEncounter, p.X, p.Y, 0, "")
		}
		return
	}

	if f.Boss != nil && !f.Boss.Alive {
		out.BossDefeated = true
		p.Score += s.config.Boss.DefeatScore
		cx, cy := f.Boss.Center()
		out.emit(f, EventLevelComplete, cx, cy, s.config.Boss.DefeatScore, "boss")
		out.Bursts = append(out.Bursts, Burst{X: cx, Y: cy, Tone: entity.ToneBoss})
		out.Shake = &Shake{Amplitude: s.config.Feedback.BossShakeAmplitude, Frames: s.config.Feedback.BossShakeFrames}
	}
}

// ApplyDeath costs the player a life and respawns it unless no lives remain.
// Returns true when the game is over.
func (s *InteractionSystem) ApplyDeath(p *entity.Player, combo *Combo) bool {
	p.Lives--
	if combo != nil {
		combo.Reset()
	}
	if p.Lives <= 0 {
		p.Lives = 0
		p.Alive = false
		return true
	}
	p.Respawn(s.config.Player.SpawnX, s.config.Player.SpawnY)
	return false
}

// Sweep returns a new slice holding the items keep accepts.
// The input is never modified, so callers may still be iterating it.
func Sweep[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
