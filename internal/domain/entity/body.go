package entity

// Rect is an axis-aligned bounding box in world pixels
type Rect struct {
	X, Y, W, H float64
}

// Left returns the x-coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetLeft moves the rect so its left edge is at x
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so its right edge is at x
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so its top edge is at y
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so its bottom edge is at y
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// Intersects reports whether two rects overlap.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rect containing both
func (r Rect) Union(o Rect) Rect {
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Body represents the physical body of a moving entity.
// (X, Y) is always the top-left corner of the bounding rectangle.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	OnGround bool
}

// Rect returns the bounding rectangle
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetRect moves the body to the rect's top-left corner
func (b *Body) SetRect(r Rect) {
	b.X = r.X
	b.Y = r.Y
}

// Center returns the center point of the body
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Player sizes
const (
	PlayerWidth  = 28
	PlayerHeight = 32
)

// Player represents the player entity
type Player struct {
	Body

	FacingRight bool
	Alive       bool

	Lives int
	Score int

	// Jump state
	JumpHeld  bool // jump key was down last frame
	JumpsUsed int  // impulses since last grounded

	// Timers (frames)
	ShootCooldown   int
	InvincibleTimer int
	RapidFireTimer  int
}

// NewPlayer creates a new player at pixel position (x, y)
func NewPlayer(x, y float64, lives int) *Player {
	return &Player{
		Body: Body{
			X: x,
			Y: y,
			W: PlayerWidth,
			H: PlayerHeight,
		},
		FacingRight: true,
		Alive:       true,
		Lives:       lives,
	}
}

// IsInvincible returns true if player is currently invincible
func (p *Player) IsInvincible() bool {
	return p.InvincibleTimer > 0
}

// HasRapidFire returns true while the rapid-fire power-up is active
func (p *Player) HasRapidFire() bool {
	return p.RapidFireTimer > 0
}

// Respawn places the player at (x, y) at rest and clears timed effects
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.OnGround = false
	p.JumpsUsed = 0
	p.ShootCooldown = 0
	p.InvincibleTimer = 0
	p.RapidFireTimer = 0
}

// TickTimers decrements the per-frame timers
func (p *Player) TickTimers() {
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
	if p.RapidFireTimer > 0 {
		p.RapidFireTimer--
	}
}
