package system

import (
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// PlayerController turns input into player motion
type PlayerController struct {
	config  *config.PlayerConfig
	physics *PhysicsSystem
}

// PlayerResult reports what the player did this frame
type PlayerResult struct {
	Jumped       bool
	DoubleJumped bool
	Shot         *entity.Projectile
	Platform     int // index of the platform stood on, -1 if none
}

// NewPlayerController creates a new player controller
func NewPlayerController(cfg *config.PlayerConfig, physics *PhysicsSystem) *PlayerController {
	return &PlayerController{
		config:  cfg,
		physics: physics,
	}
}

// Update applies one frame of input and moves the player through the level
func (c *PlayerController) Update(p *entity.Player, in Input, grid *entity.Grid, platforms []entity.Rect) PlayerResult {
	res := PlayerResult{Platform: -1}
	if !p.Alive {
		return res
	}

	// Right wins when both are held
	p.VX = 0
	if in.Left {
		p.VX = -c.config.Speed
		p.FacingRight = false
	}
	if in.Right {
		p.VX = c.config.Speed
		p.FacingRight = true
	}

	// Jump on the rising edge only
	if in.Jump && !p.JumpHeld {
		switch {
		case p.OnGround:
			p.VY = -c.config.JumpForce
			p.OnGround = false
			p.JumpsUsed = 1
			res.Jumped = true
		case c.config.DoubleJump && p.JumpsUsed < 2:
			p.VY = -c.config.DoubleJumpForce
			p.JumpsUsed = 2
			res.DoubleJumped = true
		}
	}
	p.JumpHeld = in.Jump

	if in.Shoot && p.ShootCooldown == 0 {
		res.Shot = c.shoot(p)
	}

	step := c.physics.Step(&p.Body, grid, platforms, StepOptions{})
	res.Platform = step.Platform
	if p.OnGround {
		p.JumpsUsed = 0
	}
	return res
}

func (c *PlayerController) shoot(p *entity.Player) *entity.Projectile {
	r := p.Rect()
	x := r.Left()
	if p.FacingRight {
		x = r.Right()
	}

	p.ShootCooldown = c.config.ShootCooldown
	if p.HasRapidFire() {
		p.ShootCooldown = c.config.RapidFireCooldown
	}
	return entity.NewProjectile(x, r.CenterY(), p.FacingRight, c.config.ProjectileSpeed)
}
