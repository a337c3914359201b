package system

import (
	"math"
	"math/rand"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// hoverReturn is the fraction of the distance back to its hover row a flyer recovers per frame
const hoverReturn = 0.05

// BehaviorContext is the read-mostly world view handed to every behavior update.
// Behaviors append side effects to Intents instead of mutating the level directly.
type BehaviorContext struct {
	Grid        *entity.Grid
	Platforms   []entity.Rect
	Player      entity.Rect
	Projectiles []*entity.Projectile
	Enemies     []*entity.Enemy
	Coins       []*entity.Coin
	LevelWidth  float64
	Rng         *rand.Rand

	Intents []Intent
}

func (ctx *BehaviorContext) emit(i Intent) {
	ctx.Intents = append(ctx.Intents, i)
}

// BehaviorSystem drives every non-player entity through the shared physics step
type BehaviorSystem struct {
	config  *config.GameConfig
	physics *PhysicsSystem
}

// NewBehaviorSystem creates a new behavior system
func NewBehaviorSystem(cfg *config.GameConfig, physics *PhysicsSystem) *BehaviorSystem {
	return &BehaviorSystem{
		config:  cfg,
		physics: physics,
	}
}

// EnemyConfig returns the tuning block for an enemy kind
func EnemyConfig(cfg *config.EnemiesConfig, kind entity.Kind) *config.EnemyConfig {
	switch kind {
	case entity.KindGoomba:
		return &cfg.Goomba
	case entity.KindKoopa:
		return &cfg.Koopa
	case entity.KindRager:
		return &cfg.Rager
	case entity.KindSpinner:
		return &cfg.Spinner
	case entity.KindGhost:
		return &cfg.Ghost
	case entity.KindSlime:
		return &cfg.Slime
	case entity.KindTeleporter:
		return &cfg.Teleporter
	case entity.KindThief:
		return &cfg.Thief
	case entity.KindDodger:
		return &cfg.Dodger
	case entity.KindShielder:
		return &cfg.Shielder
	case entity.KindHealer:
		return &cfg.Healer
	}
	return &cfg.Goomba
}

// SpawnEnemy creates an enemy of the given kind tuned from config
func (s *BehaviorSystem) SpawnEnemy(id entity.EntityID, kind entity.Kind, x, y float64) *entity.Enemy {
	ec := EnemyConfig(&s.config.Enemies, kind)
	return entity.NewEnemy(id, kind, x, y, ec.Speed)
}

// Update advances one enemy by a frame
func (s *BehaviorSystem) Update(e *entity.Enemy, ctx *BehaviorContext) {
	if !e.Alive {
		return
	}
	ec := EnemyConfig(&s.config.Enemies, e.Kind)

	switch e.Kind {
	case entity.KindGoomba, entity.KindKoopa:
		s.patrol(e, ctx)
	case entity.KindRager:
		s.updateRager(e, ec, ctx)
	case entity.KindSpinner:
		s.updateSpinner(e, ec, ctx)
	case entity.KindGhost:
		s.updateGhost(e, ec, ctx)
	case entity.KindSlime:
		s.updateSlime(e, ec, ctx)
	case entity.KindTeleporter:
		s.updateTeleporter(e, ec, ctx)
	case entity.KindThief:
		s.updateThief(e, ec, ctx)
	case entity.KindDodger:
		s.updateDodger(e, ec, ctx)
	case entity.KindShielder:
		s.updateSupport(e, ec, ctx)
	case entity.KindHealer:
		s.updateSupport(e, ec, ctx)
		s.updateHealer(e, ec, ctx)
	}

	// Walkers that drop out of the level are gone
	if !e.Kind.Flying() && e.Y > float64(s.config.Display.ScreenHeight) {
		e.Kill()
	}
}

// patrol walks at e.Speed and turns around on wall contact.
// Walkers keep VX as a magnitude; Dir carries the sign.
func (s *BehaviorSystem) patrol(e *entity.Enemy, ctx *BehaviorContext) {
	e.VX = e.Speed
	s.physics.Step(&e.Body, ctx.Grid, ctx.Platforms, StepOptions{Dir: &e.Dir})
}

func (s *BehaviorSystem) updateRager(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	e.Timer++
	if ec.Interval > 0 && e.Timer >= ec.Interval {
		e.Timer = 0
		e.Speed += ec.SpeedStep
	}
	s.patrol(e, ctx)
}

func (s *BehaviorSystem) updateSpinner(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	e.Timer++
	if ec.Interval > 0 && e.Timer >= ec.Interval {
		e.Timer = 0
		if e.Spin == entity.SpinSlow {
			e.Spin = entity.SpinFast
		} else {
			e.Spin = entity.SpinSlow
		}
	}

	if e.Spin == entity.SpinSlow {
		e.Speed = ec.Speed
		s.patrol(e, ctx)
		return
	}

	// Fast spin keeps its heading through walls
	e.Speed = ec.FastSpeed
	e.VX = e.Speed * e.Dir
	s.physics.Step(&e.Body, ctx.Grid, ctx.Platforms, StepOptions{})
	e.VX = e.Speed
}

func (s *BehaviorSystem) updateGhost(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	dx, dy, dist := towards(e.Rect(), ctx.Player)
	if dist < ec.Radius && dist > 0 {
		e.VX += ec.Accel * dx / dist
		e.VY += ec.Accel * dy / dist
		e.VX, e.VY = capSpeed(e.VX, e.VY, ec.MaxSpeed)
	} else {
		e.VX *= ec.Decay
		e.VY *= ec.Decay
	}
	e.X += e.VX
	e.Y += e.VY
	if e.VX != 0 {
		e.Dir = sign(e.VX)
	}
}

func (s *BehaviorSystem) updateSlime(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	e.Timer++
	if e.OnGround && e.Timer >= ec.Interval {
		e.Timer = 0
		e.VY = -ec.Impulse
	}
	s.patrol(e, ctx)
}

func (s *BehaviorSystem) updateTeleporter(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	fade := max(ec.Duration, 1)
	e.Timer++

	switch e.Teleport {
	case entity.TeleportIdle:
		if e.Timer >= ec.Interval {
			e.Timer = 0
			e.Teleport = entity.TeleportFadeOut
		}
	case entity.TeleportFadeOut:
		e.Alpha = 1 - float64(e.Timer)/float64(fade)
		if e.Timer >= fade {
			e.Timer = 0
			e.Alpha = 0
			e.Visible = false
			e.Teleport = entity.TeleportFadeIn

			side := 1.0
			if ctx.Rng.Intn(2) == 0 {
				side = -1
			}
			e.X = clamp(ctx.Player.X+side*ec.Reach, 0, max(ctx.LevelWidth-e.W, 0))
			e.Y = ctx.Player.Y
			e.VY = 0
			e.Dir = -side
		}
		return
	case entity.TeleportFadeIn:
		e.Visible = true
		e.Alpha = float64(e.Timer) / float64(fade)
		if e.Timer >= fade {
			e.Timer = 0
			e.Alpha = 1
			e.Teleport = entity.TeleportIdle
		}
	}

	e.VX = 0
	s.physics.Step(&e.Body, ctx.Grid, ctx.Platforms, StepOptions{})
}

func (s *BehaviorSystem) updateThief(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	if e.Cooldown > 0 {
		e.Cooldown--
	}
	dx, dy, dist := towards(e.Rect(), ctx.Player)

	switch e.Thief {
	case entity.ThiefHunting:
		if dist < ec.Radius && dist > 0 {
			e.VX += ec.Accel * dx / dist
			e.VY += ec.Accel * dy / dist
		} else {
			e.VX *= ec.Decay
			e.VY *= ec.Decay
		}
		if dist < ec.Reach && e.Cooldown == 0 {
			if coin := nearestCoin(e, ctx.Coins); coin != nil {
				coin.Stolen = true
				e.Thief = entity.ThiefFleeing
				e.Timer = ec.Duration
				e.Cooldown = ec.Cooldown
				ctx.emit(StealIntent{Thief: e.ID, Coin: coin.ID, X: e.X, Y: e.Y})
			}
		}
	case entity.ThiefFleeing:
		if dist > 0 {
			e.VX -= ec.Accel * dx / dist
			e.VY -= ec.Accel * dy / dist
		}
		e.Timer--
		if e.Timer <= 0 {
			e.Timer = 0
			e.Thief = entity.ThiefHunting
		}
	}

	e.VX, e.VY = capSpeed(e.VX, e.VY, ec.MaxSpeed)
	e.X = clamp(e.X+e.VX, 0, max(ctx.LevelWidth-e.W, 0))
	e.Y = clamp(e.Y+e.VY, 0, max(ctx.Grid.PixelHeight()-e.H, 0))
	if e.VX != 0 {
		e.Dir = sign(e.VX)
	}
}

func (s *BehaviorSystem) updateDodger(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	e.VX = 0
	dx := ctx.Player.CenterX() - e.Rect().CenterX()
	if math.Abs(dx) > ec.Speed {
		e.VX = sign(dx) * ec.Speed
		e.Dir = sign(dx)
	}

	if e.Cooldown > 0 {
		e.Cooldown--
	} else if nx, ny, ok := dodgeDirection(e.Rect(), ctx.Projectiles, ec.Radius); ok {
		e.DodgeVX = nx * ec.Impulse
		e.DodgeVY = ny * ec.Impulse
		e.Cooldown = ec.Cooldown
	}

	e.X += e.VX + e.DodgeVX
	e.Y += e.DodgeVY + (e.HoverY-e.Y)*hoverReturn
	e.DodgeVX *= ec.Decay
	e.DodgeVY *= ec.Decay
	e.X = clamp(e.X, 0, max(ctx.LevelWidth-e.W, 0))
}

// updateSupport drifts toward the player while farther than the config radius
func (s *BehaviorSystem) updateSupport(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	e.VX = 0
	dx := ctx.Player.CenterX() - e.Rect().CenterX()
	if math.Abs(dx) > ec.Radius {
		e.VX = sign(dx) * ec.Speed
		e.Dir = sign(dx)
	}
	e.X += e.VX
	e.Y += (e.HoverY - e.Y) * hoverReturn
}

// updateHealer opens cosmetic heal windows on nearby allies; no health is restored
func (s *BehaviorSystem) updateHealer(e *entity.Enemy, ec *config.EnemyConfig, ctx *BehaviorContext) {
	if e.Cooldown > 0 {
		e.Cooldown--
		if e.Cooldown == 0 {
			e.HealTarget = 0
		}
		return
	}
	if ctx.Rng.Float64() >= ec.Chance {
		return
	}

	cx, cy := e.Center()
	var target *entity.Enemy
	best := ec.Reach
	for _, other := range ctx.Enemies {
		if other == e || !other.Alive {
			continue
		}
		ox, oy := other.Center()
		if d := math.Hypot(ox-cx, oy-cy); d < best {
			best = d
			target = other
		}
	}
	if target == nil {
		return
	}

	e.HealTarget = target.ID
	e.Cooldown = ec.Cooldown
	ctx.emit(HealIntent{Healer: e.ID, Target: target.ID, X: cx, Y: cy})
}

// UpdateBoss advances the boss patrol and its attack phases
func (s *BehaviorSystem) UpdateBoss(b *entity.Boss, ctx *BehaviorContext) {
	if !b.Alive {
		return
	}
	if b.HitTimer > 0 {
		b.HitTimer--
	}

	b.VX = b.Speed
	s.physics.Step(&b.Body, ctx.Grid, ctx.Platforms, StepOptions{Dir: &b.Dir})
	if b.X <= b.MinX {
		b.X = b.MinX
		b.Dir = 1
	} else if b.X >= b.MaxX {
		b.X = b.MaxX
		b.Dir = -1
	}

	cfg := &s.config.Boss
	b.PhaseTimer++
	if cfg.PhaseInterval <= 0 || b.PhaseTimer < cfg.PhaseInterval {
		return
	}
	b.PhaseTimer = 0
	b.Phase = (b.Phase + 1) % 3

	spawns := 0
	switch b.Phase {
	case 1:
		spawns = 1
	case 2:
		spawns = cfg.PhaseTwoSpawns
	}
	if spawns == 0 {
		return
	}

	w, h := entity.EnemySize(entity.KindGoomba)
	dir := -1.0
	if ctx.Player.CenterX() > b.Rect().CenterX() {
		dir = 1
	}
	cx := b.Rect().CenterX()
	for i := 0; i < spawns; i++ {
		offset := (float64(i) - float64(spawns-1)/2) * cfg.MinionSpread
		ctx.emit(SpawnIntent{
			Kind: entity.KindGoomba,
			X:    cx + offset - w/2,
			Y:    b.Rect().Bottom() - h,
			Dir:  dir,
		})
	}
}

// UpdateHazard advances a falling spike or a spike trap
func (s *BehaviorSystem) UpdateHazard(h *entity.Hazard, ctx *BehaviorContext) {
	if !h.Alive {
		return
	}

	switch h.Kind {
	case entity.HazardFallingSpike:
		if h.Falling == entity.SpikeHanging {
			dx := math.Abs(ctx.Player.CenterX() - h.Rect().CenterX())
			if dx < s.config.Hazards.FallingSpikeTrigger && ctx.Player.CenterY() > h.Rect().Bottom() {
				h.Falling = entity.SpikeFalling
			}
			return
		}
		ApplyGravity(&h.Body, s.config.Physics.Gravity, s.config.Physics.MaxFallSpeed)
		h.Y += h.VY
		if h.Y > float64(s.config.Display.ScreenHeight) {
			h.Alive = false
		}
	case entity.HazardSpikeTrap:
		h.Timer++
		if h.Timer >= s.config.Hazards.SpikeTrapInterval {
			h.Timer = 0
			h.Extended = !h.Extended
		}
	}
}

// towards returns the vector and distance from a's center to b's center
func towards(a, b entity.Rect) (dx, dy, dist float64) {
	dx = b.CenterX() - a.CenterX()
	dy = b.CenterY() - a.CenterY()
	return dx, dy, math.Hypot(dx, dy)
}

func capSpeed(vx, vy, maxSpeed float64) (float64, float64) {
	if maxSpeed <= 0 {
		return vx, vy
	}
	speed := math.Hypot(vx, vy)
	if speed <= maxSpeed {
		return vx, vy
	}
	k := maxSpeed / speed
	return vx * k, vy * k
}

func nearestCoin(e *entity.Enemy, coins []*entity.Coin) *entity.Coin {
	cx, cy := e.Center()
	var found *entity.Coin
	best := math.Inf(1)
	for _, c := range coins {
		if !c.Available() {
			continue
		}
		if d := math.Hypot(c.Rect.CenterX()-cx, c.Rect.CenterY()-cy); d < best {
			best = d
			found = c
		}
	}
	return found
}

// dodgeDirection returns the unit vector perpendicular to the first live projectile
// within radius, pointing away from the projectile's line of travel.
func dodgeDirection(r entity.Rect, projectiles []*entity.Projectile, radius float64) (nx, ny float64, ok bool) {
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		pr := p.Rect()
		ox := r.CenterX() - pr.CenterX()
		oy := r.CenterY() - pr.CenterY()
		if math.Hypot(ox, oy) >= radius {
			continue
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed == 0 {
			continue
		}
		// Perpendicular of the bullet heading
		nx, ny = -p.VY/speed, p.VX/speed
		if nx*ox+ny*oy < 0 {
			nx, ny = -nx, -ny
		}
		if nx*ox+ny*oy == 0 {
			// Dead on the line: prefer up
			nx, ny = 0, -1
			if p.VY != 0 {
				nx, ny = sign(-p.VY), 0
			}
		}
		return nx, ny, true
	}
	return 0, 0, false
}
