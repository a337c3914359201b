package session

import (
	"image/color"
	"math/rand"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Level is the live runtime of one level: its terrain plus every entity in play
type Level struct {
	Number int
	Name   string
	Sky    color.RGBA
	IsBoss bool

	Grid  *entity.Grid
	FlagX float64
	DoorX float64

	Coins       []*entity.Coin
	PowerUps    []*entity.PowerUp
	Enemies     []*entity.Enemy
	Hazards     []*entity.Hazard
	Platforms   []*entity.MovingPlatform
	Projectiles []*entity.Projectile
	Particles   []*entity.Particle
	Boss        *entity.Boss

	nextID entity.EntityID
}

// NewLevel builds a fresh runtime from a blueprint.
// The blueprint is not modified, so the same blueprint can be entered again.
func NewLevel(bp *system.Blueprint, behavior *system.BehaviorSystem, cfg *config.GameConfig) *Level {
	l := &Level{
		Number: bp.Number,
		Name:   bp.Name,
		Sky:    bp.Sky,
		IsBoss: bp.IsBoss,
		Grid:   entity.GridFromMatrix(bp.Grid.Matrix(), bp.Grid.TileSize),
		FlagX:  bp.FlagX,
		DoorX:  bp.DoorX,
	}

	for _, r := range bp.Coins {
		l.Coins = append(l.Coins, entity.NewCoin(l.NewID(), r.X, r.Y))
	}
	for _, s := range bp.PowerUps {
		l.PowerUps = append(l.PowerUps, entity.NewPowerUp(l.NewID(), s.Kind, s.X, s.Y))
	}
	for _, s := range bp.Enemies {
		l.Enemies = append(l.Enemies, behavior.SpawnEnemy(l.NewID(), s.Kind, s.X, s.Y))
	}
	for _, s := range bp.Hazards {
		switch s.Kind {
		case entity.HazardFallingSpike:
			l.Hazards = append(l.Hazards, entity.NewFallingSpike(l.NewID(), s.X, s.Y))
		case entity.HazardSpikeTrap:
			l.Hazards = append(l.Hazards, entity.NewSpikeTrap(l.NewID(), s.X, s.Y, s.Phase))
		}
	}
	for _, s := range bp.Platforms {
		l.Platforms = append(l.Platforms, entity.NewMovingPlatform(l.NewID(), s.X, s.Y, s.Axis, s.Min, s.Max, s.Speed))
	}
	if b := bp.Boss; b != nil {
		l.Boss = entity.NewBoss(l.NewID(), b.X, b.Y, b.Health, b.MinX, b.MaxX, cfg.Boss.Speed)
	}

	return l
}

// NewID returns the next unused entity ID of the level
func (l *Level) NewID() entity.EntityID {
	l.nextID++
	return l.nextID
}

// Width returns the level width in pixels
func (l *Level) Width() float64 {
	return l.Grid.PixelWidth()
}

// PlatformRects returns the current rects of the moving platforms, in order
func (l *Level) PlatformRects() []entity.Rect {
	if len(l.Platforms) == 0 {
		return nil
	}
	rects := make([]entity.Rect, len(l.Platforms))
	for i, m := range l.Platforms {
		rects[i] = m.Rect()
	}
	return rects
}

// Enemy returns the enemy with the given ID
func (l *Level) Enemy(id entity.EntityID) *entity.Enemy {
	for _, e := range l.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AddBurst spawns a cosmetic particle burst at (x, y)
func (l *Level) AddBurst(x, y float64, tone entity.ParticleTone, fb *config.FeedbackConfig, rng *rand.Rand) {
	for i := 0; i < fb.BurstCount; i++ {
		vx := rng.Float64()*6 - 3
		vy := -rng.Float64()*5 - 1
		l.Particles = append(l.Particles, entity.NewParticle(x, y, vx, vy, fb.ParticleLifetime, tone))
	}
}

// Sweep drops dead projectiles, particles, enemies and hazards.
// It runs after every list has been iterated for the frame.
func (l *Level) Sweep() {
	l.Projectiles = system.Sweep(l.Projectiles, func(p *entity.Projectile) bool { return p.Alive })
	l.Particles = system.Sweep(l.Particles, func(p *entity.Particle) bool { return p.Alive() })
	l.Enemies = system.Sweep(l.Enemies, func(e *entity.Enemy) bool { return e.Alive })
	l.Hazards = system.Sweep(l.Hazards, func(h *entity.Hazard) bool { return h.Alive })
}

// Store lazily generates blueprints per level number and keeps them until reset
type Store struct {
	generator  *system.Generator
	blueprints map[int]*system.Blueprint
}

// NewStore creates a level store backed by the generator
func NewStore(gen *system.Generator) *Store {
	return &Store{
		generator:  gen,
		blueprints: make(map[int]*system.Blueprint),
	}
}

// Get returns the blueprint of level n, generating it on first use
func (s *Store) Get(n int) *system.Blueprint {
	if bp, ok := s.blueprints[n]; ok {
		return bp
	}
	return s.Regenerate(n)
}

// Regenerate replaces the blueprint of level n with a newly generated one
func (s *Store) Regenerate(n int) *system.Blueprint {
	bp := s.generator.GenerateLevel(n)
	s.blueprints[n] = bp
	return bp
}

// Forget drops every blueprint above level n so they are generated again on use
func (s *Store) Forget(n int) {
	for k := range s.blueprints {
		if k > n {
			delete(s.blueprints, k)
		}
	}
}

// Reset drops every blueprint
func (s *Store) Reset() {
	clear(s.blueprints)
}

// Len returns the number of generated blueprints
func (s *Store) Len() int {
	return len(s.blueprints)
}
