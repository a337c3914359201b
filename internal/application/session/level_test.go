package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

func createTestStore() (*Store, *config.GameConfig) {
	cfg := config.Default()
	gen := system.NewGenerator(cfg, rand.New(rand.NewSource(testSeed)))
	return NewStore(gen), cfg
}

func TestStore(t *testing.T) {
	store, _ := createTestStore()

	first := store.Get(2)
	assert.Same(t, first, store.Get(2), "generated once")
	assert.Equal(t, 1, store.Len())

	again := store.Regenerate(2)
	assert.NotSame(t, first, again)
	assert.Same(t, again, store.Get(2))

	store.Get(1)
	store.Get(3)
	store.Forget(1)
	assert.Equal(t, 1, store.Len())

	store.Reset()
	assert.Zero(t, store.Len())
}

func TestNewLevel(t *testing.T) {
	store, cfg := createTestStore()
	behavior := system.NewBehaviorSystem(cfg, system.NewPhysicsSystem(&cfg.Physics))

	for _, n := range []int{2, 3} {
		bp := store.Get(n)
		lvl := NewLevel(bp, behavior, cfg)

		assert.Equal(t, bp.Name, lvl.Name)
		assert.Len(t, lvl.Coins, len(bp.Coins))
		assert.Len(t, lvl.Enemies, len(bp.Enemies))
		assert.Len(t, lvl.Hazards, len(bp.Hazards))
		assert.Len(t, lvl.Platforms, len(bp.Platforms))
		assert.Equal(t, bp.IsBoss, lvl.Boss != nil)

		ids := make(map[entity.EntityID]bool)
		check := func(id entity.EntityID) {
			assert.NotZero(t, id)
			assert.False(t, ids[id], "duplicate id %d", id)
			ids[id] = true
		}
		for _, c := range lvl.Coins {
			check(c.ID)
		}
		for _, e := range lvl.Enemies {
			check(e.ID)
			assert.Same(t, e, lvl.Enemy(e.ID))
		}
		for _, h := range lvl.Hazards {
			check(h.ID)
		}
		if lvl.Boss != nil {
			check(lvl.Boss.ID)
		}

		// Play does not leak back into the blueprint
		lvl.Grid.Set(0, 0, entity.TileBlock)
		assert.Equal(t, entity.TileEmpty, bp.Grid.At(0, 0))
	}
}

func TestLevel_Sweep(t *testing.T) {
	store, cfg := createTestStore()
	behavior := system.NewBehaviorSystem(cfg, system.NewPhysicsSystem(&cfg.Physics))
	lvl := NewLevel(store.Get(1), behavior, cfg)
	require.NotEmpty(t, lvl.Enemies)

	enemies := len(lvl.Enemies)
	lvl.Enemies[0].Kill()
	lvl.Projectiles = []*entity.Projectile{
		entity.NewProjectile(0, 0, true, 10),
		{Alive: false},
	}
	lvl.AddBurst(10, 10, entity.ToneCoin, &cfg.Feedback, rand.New(rand.NewSource(1)))
	require.Len(t, lvl.Particles, cfg.Feedback.BurstCount)
	lvl.Particles[0].Lifetime = 0

	lvl.Sweep()

	assert.Len(t, lvl.Enemies, enemies-1)
	assert.Len(t, lvl.Projectiles, 1)
	assert.Len(t, lvl.Particles, cfg.Feedback.BurstCount-1)
}

func TestLevel_PlatformRects(t *testing.T) {
	lvl := &Level{}
	assert.Nil(t, lvl.PlatformRects())

	lvl.Platforms = []*entity.MovingPlatform{
		entity.NewMovingPlatform(1, 10, 20, entity.AxisHorizontal, 0, 100, 1),
		entity.NewMovingPlatform(2, 50, 60, entity.AxisVertical, 0, 100, 1),
	}
	rects := lvl.PlatformRects()

	require.Len(t, rects, 2)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: entity.PlatformWidth, H: entity.PlatformHeight}, rects[0])
	assert.Equal(t, 50.0, rects[1].X)
}
