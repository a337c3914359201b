package entity

// Projectile sizes
const (
	ProjectileWidth  = 10
	ProjectileHeight = 6
)

// Projectile represents a player shot travelling at constant horizontal speed
type Projectile struct {
	Body
	Alive bool
}

// NewProjectile creates a projectile centered vertically on y, leaving from x
func NewProjectile(x, y float64, facingRight bool, speed float64) *Projectile {
	vx := speed
	left := x
	if !facingRight {
		vx = -speed
		left = x - ProjectileWidth
	}
	return &Projectile{
		Body: Body{
			X:  left,
			Y:  y - ProjectileHeight/2,
			W:  ProjectileWidth,
			H:  ProjectileHeight,
			VX: vx,
		},
		Alive: true,
	}
}

// Update moves the projectile and expires it outside [0, levelWidth]
func (p *Projectile) Update(levelWidth float64) {
	if !p.Alive {
		return
	}
	p.X += p.VX
	if p.Rect().Right() < 0 || p.X > levelWidth {
		p.Alive = false
	}
}

// ParticleTone tags a particle with the event that produced it
type ParticleTone int

const (
	ToneCoin ParticleTone = iota
	ToneStomp
	TonePowerUp
	ToneBoss
)

// Particle is a purely cosmetic spark that never collides
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Lifetime    int
	MaxLifetime int
	Tone        ParticleTone
}

// NewParticle creates a particle
func NewParticle(x, y, vx, vy float64, lifetime int, tone ParticleTone) *Particle {
	return &Particle{
		X:           x,
		Y:           y,
		VX:          vx,
		VY:          vy,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Tone:        tone,
	}
}

// Update applies gravity and decays the lifetime
func (p *Particle) Update(gravity float64) {
	p.VY += gravity
	p.X += p.VX
	p.Y += p.VY
	if p.Lifetime > 0 {
		p.Lifetime--
	}
}

// Alive reports whether the particle still has lifetime left
func (p *Particle) Alive() bool {
	return p.Lifetime > 0
}

// Fade returns the remaining lifetime fraction in [0, 1]
func (p *Particle) Fade() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return float64(p.Lifetime) / float64(p.MaxLifetime)
}
