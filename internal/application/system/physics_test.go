package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Gravity:           0.8,
		MaxFallSpeed:      12,
		PlatformTolerance: 10,
	}
}

// 10x6 grid of 32px tiles: a wall at col 4 (rows 3-4) and ground on row 5 (top y=160)
func createTestGrid(t *testing.T) *entity.Grid {
	t.Helper()
	grid, err := ParseGrid([]string{
		"..........",
		"..........",
		"..........",
		"....#.....",
		"....#.....",
		"##########",
	}, 32)
	require.NoError(t, err)
	return grid
}

func createTestBody(x, y float64) *entity.Body {
	return &entity.Body{X: x, Y: y, W: entity.PlayerWidth, H: entity.PlayerHeight}
}

func TestPhysicsSystem_Landing(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig())
	grid := createTestGrid(t)

	t.Run("lands on ground from a short fall", func(t *testing.T) {
		body := createTestBody(40, 130)
		body.VY = 5

		sys.Step(body, grid, nil, StepOptions{})

		assert.True(t, body.OnGround)
		assert.Equal(t, 0.0, body.VY)
		assert.Equal(t, 160.0, body.Rect().Bottom())
	})

	tests := []struct {
		name string
		y    float64
		vy   float64
	}{
		{name: "at rest", y: 0, vy: 0},
		{name: "slow", y: 40, vy: 0.5},
		{name: "fast", y: 10, vy: 8},
		{name: "terminal", y: 60, vy: 12},
	}
	for _, tt := range tests {
		t.Run("always settles "+tt.name, func(t *testing.T) {
			body := createTestBody(40, tt.y)
			body.VY = tt.vy

			for i := 0; i < 120 && !body.OnGround; i++ {
				sys.Step(body, grid, nil, StepOptions{})
			}

			require.True(t, body.OnGround)
			assert.Equal(t, 0.0, body.VY)
			assert.Equal(t, 160.0, body.Rect().Bottom())
		})
	}

	t.Run("stays grounded while standing", func(t *testing.T) {
		body := createTestBody(40, 128)
		for i := 0; i < 10; i++ {
			sys.Step(body, grid, nil, StepOptions{})
			assert.True(t, body.OnGround)
			assert.Equal(t, 128.0, body.Y)
		}
	})
}

func TestPhysicsSystem_Walls(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig())
	grid := createTestGrid(t)

	t.Run("clamps right edge to wall", func(t *testing.T) {
		body := createTestBody(96, 128)
		body.VX = 5

		res := sys.Step(body, grid, nil, StepOptions{})

		assert.True(t, res.HitWall)
		assert.Equal(t, 128.0, body.Rect().Right())
		assert.Equal(t, 5.0, body.VX, "velocity is not changed by a wall")
	})

	t.Run("clamps left edge to wall", func(t *testing.T) {
		body := createTestBody(163, 128)
		body.VX = -5

		res := sys.Step(body, grid, nil, StepOptions{})

		assert.True(t, res.HitWall)
		assert.Equal(t, 160.0, body.X)
	})

	t.Run("direction flips once per frame", func(t *testing.T) {
		body := createTestBody(96, 128)
		body.VX = 5
		dir := 1.0

		sys.Step(body, grid, nil, StepOptions{Dir: &dir})
		assert.Equal(t, -1.0, dir)

		sys.Step(body, grid, nil, StepOptions{Dir: &dir})
		assert.Equal(t, -1.0, dir, "moving away does not flip again")
		assert.Less(t, body.X, 100.0)
	})

	t.Run("no wall in open space", func(t *testing.T) {
		body := createTestBody(10, 128)
		body.VX = 3

		res := sys.Step(body, grid, nil, StepOptions{})

		assert.False(t, res.HitWall)
		assert.Equal(t, 13.0, body.X)
	})

	t.Run("fast bodies tunnel through thin walls", func(t *testing.T) {
		body := createTestBody(90, 128)
		body.VX = 80

		res := sys.Step(body, grid, nil, StepOptions{})

		assert.False(t, res.HitWall)
		assert.Equal(t, 170.0, body.X)
	})
}

func TestPhysicsSystem_HeadBump(t *testing.T) {
	grid, err := ParseGrid([]string{
		"....",
		"####",
		"....",
		"....",
	}, 32)
	require.NoError(t, err)

	body := createTestBody(10, 70)
	body.VY = -14

	NewPhysicsSystem(createTestPhysicsConfig()).Step(body, grid, nil, StepOptions{})

	assert.Equal(t, 64.0, body.Y)
	assert.Equal(t, 0.0, body.VY)
	assert.False(t, body.OnGround)
}

func TestPhysicsSystem_NoGravity(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig())
	grid := createTestGrid(t)

	body := createTestBody(40, 20)
	body.VY = -1

	sys.Step(body, grid, nil, StepOptions{NoGravity: true})

	assert.Equal(t, -1.0, body.VY)
	assert.Equal(t, 19.0, body.Y)
}

func TestPhysicsSystem_Deterministic(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig())
	grid := createTestGrid(t)

	run := func() entity.Body {
		body := createTestBody(20, 0)
		body.VX = 3
		dir := 1.0
		for i := 0; i < 200; i++ {
			sys.Step(body, grid, nil, StepOptions{Dir: &dir})
		}
		return *body
	}

	assert.Equal(t, run(), run())
}

func TestResolvePlatforms(t *testing.T) {
	platform := entity.Rect{X: 0, Y: 100, W: 96, H: 16} // center line at 108

	tests := []struct {
		name      string
		y, vy     float64
		wantY     float64
		wantVY    float64
		wantIndex int
		grounded  bool
	}{
		{name: "lands from above", y: 70, vy: 2, wantY: 68, wantVY: 0, wantIndex: 0, grounded: true},
		{name: "lands while resting", y: 69, vy: 0, wantY: 68, wantVY: 0, wantIndex: 0, grounded: true},
		{name: "passes when bottom is below threshold", y: 88, vy: 2, wantY: 88, wantVY: 2, wantIndex: -1},
		{name: "bumps head from below", y: 110, vy: -3, wantY: 116, wantVY: 0, wantIndex: -1},
		{name: "passes up when top is above threshold", y: 95, vy: -3, wantY: 95, wantVY: -3, wantIndex: -1},
		{name: "ignores non-overlapping", y: 10, vy: 2, wantY: 10, wantVY: 2, wantIndex: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := createTestBody(10, tt.y)
			body.VY = tt.vy

			idx := ResolvePlatforms(body, []entity.Rect{platform}, 10)

			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantY, body.Y)
			assert.Equal(t, tt.wantVY, body.VY)
			assert.Equal(t, tt.grounded, body.OnGround)
		})
	}
}

func TestResolveVertical_ZeroedVelocityStopsLaterClamps(t *testing.T) {
	body := createTestBody(0, 0)
	body.VY = 10
	solids := []entity.Rect{
		{X: 0, Y: 38, W: 32, H: 32},
		{X: 0, Y: 36, W: 32, H: 32},
	}

	ResolveVertical(body, solids)

	// The first landing zeroes VY, so the second overlap is left alone
	assert.Equal(t, 6.0, body.Y)
	assert.Zero(t, body.VY)
	assert.True(t, body.OnGround)
}

func TestResolveHorizontal_LastWriteWins(t *testing.T) {
	body := createTestBody(0, 0)
	solids := []entity.Rect{
		{X: 20, Y: 0, W: 32, H: 32},
		{X: 18, Y: 0, W: 32, H: 32},
	}

	hit := ResolveHorizontal(body, 10, solids)

	// Both walls overlap in turn; the second clamp is the one that sticks
	assert.True(t, hit)
	assert.Equal(t, 18.0, body.X+body.W)
	assert.Equal(t, -10.0, body.X)
}
