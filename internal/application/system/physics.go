package system

import (
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// PhysicsSystem resolves movement against the tile grid and moving platforms.
//
// Resolution is axis separated: horizontal first, then gravity, then vertical,
// then a vertical-only pass over one-way platforms. Solids are resolved one by
// one in collection order and the last write wins. There is no swept test, so a
// body moving faster than a tile per frame can pass through a thin wall.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// StepOptions controls the per-variant parts of a physics step
type StepOptions struct {
	// Dir, when non-nil, scales VX for the horizontal move and is inverted on wall contact
	Dir *float64
	// NoGravity skips the gravity step (vertical velocity is still applied)
	NoGravity bool
}

// StepResult reports what happened during a physics step
type StepResult struct {
	HitWall  bool
	Platform int // index of the platform stood on, -1 if none
}

// Step moves body one frame through the grid and the platform rects
func (s *PhysicsSystem) Step(body *entity.Body, grid *entity.Grid, platforms []entity.Rect, opts StepOptions) StepResult {
	res := StepResult{Platform: -1}

	// Horizontal
	vx := body.VX
	if opts.Dir != nil {
		vx *= *opts.Dir
	}
	before := body.Rect()
	moved := before
	moved.X += vx
	res.HitWall = ResolveHorizontal(body, vx, grid.SolidsNear(before.Union(moved)))
	if res.HitWall && opts.Dir != nil {
		*opts.Dir = -*opts.Dir
	}

	// Gravity
	if !opts.NoGravity {
		ApplyGravity(body, s.config.Gravity, s.config.MaxFallSpeed)
	}

	// Vertical
	before = body.Rect()
	moved = before
	moved.Y += body.VY
	ResolveVertical(body, grid.SolidsNear(before.Union(moved)))

	// One-way platforms
	if len(platforms) > 0 {
		res.Platform = ResolvePlatforms(body, platforms, s.config.PlatformTolerance)
	}

	return res
}

// ResolveHorizontal applies x += vx and clamps the body against every intersecting solid.
// Velocity is left untouched. Returns true if any solid was hit.
func ResolveHorizontal(body *entity.Body, vx float64, solids []entity.Rect) bool {
	body.X += vx
	hit := false
	for _, solid := range solids {
		r := body.Rect()
		if !r.Intersects(solid) {
			continue
		}
		if vx > 0 {
			r.SetRight(solid.Left())
		} else if vx < 0 {
			r.SetLeft(solid.Right())
		} else {
			continue
		}
		body.SetRect(r)
		hit = true
	}
	return hit
}

// ApplyGravity accelerates the body downward, clamped at maxFall
func ApplyGravity(body *entity.Body, gravity, maxFall float64) {
	body.VY += gravity
	if body.VY > maxFall {
		body.VY = maxFall
	}
}

// ResolveVertical applies y += vy, clears OnGround and clamps the body against every
// intersecting solid. Landing zeroes VY and sets OnGround; a head bump zeroes VY.
func ResolveVertical(body *entity.Body, solids []entity.Rect) {
	body.Y += body.VY
	body.OnGround = false
	for _, solid := range solids {
		r := body.Rect()
		if !r.Intersects(solid) {
			continue
		}
		if body.VY > 0 {
			r.SetBottom(solid.Top())
			body.SetRect(r)
			body.VY = 0
			body.OnGround = true
		} else if body.VY < 0 {
			r.SetTop(solid.Bottom())
			body.SetRect(r)
			body.VY = 0
		}
	}
}

// ResolvePlatforms runs the one-way pass over moving platforms.
// A body lands when its bottom is above the platform's center line plus tolerance,
// and bumps its head when its top is below the center line minus tolerance. Overlaps
// outside both thresholds pass through. Returns the index stood on or -1.
func ResolvePlatforms(body *entity.Body, platforms []entity.Rect, tolerance float64) int {
	standing := -1
	for i, p := range platforms {
		r := body.Rect()
		if !r.Intersects(p) {
			continue
		}
		if body.VY >= 0 && r.Bottom() < p.CenterY()+tolerance {
			r.SetBottom(p.Top())
			body.SetRect(r)
			body.VY = 0
			body.OnGround = true
			standing = i
		} else if body.VY < 0 && r.Top() > p.CenterY()-tolerance {
			r.SetTop(p.Bottom())
			body.SetRect(r)
			body.VY = 0
		}
	}
	return standing
}

// Helper functions
func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
