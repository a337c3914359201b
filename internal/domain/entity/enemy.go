package entity

// Kind is the variant discriminator shared by every entity in a level
type Kind int

const (
	KindPlayer Kind = iota
	KindGoomba
	KindKoopa
	KindRager
	KindSpinner
	KindGhost
	KindSlime
	KindTeleporter
	KindThief
	KindDodger
	KindShielder
	KindHealer
	KindBoss
	KindCoin
	KindPowerUp
	KindFallingSpike
	KindSpikeTrap
	KindMovingPlatform
	KindProjectile
	KindParticle
)

var kindNames = map[Kind]string{
	KindPlayer:         "Player",
	KindGoomba:         "Goomba",
	KindKoopa:          "Koopa",
	KindRager:          "Rager",
	KindSpinner:        "Spinner",
	KindGhost:          "Ghost",
	KindSlime:          "Slime",
	KindTeleporter:     "Teleporter",
	KindThief:          "Thief",
	KindDodger:         "Dodger",
	KindShielder:       "Shielder",
	KindHealer:         "Healer",
	KindBoss:           "Boss",
	KindCoin:           "Coin",
	KindPowerUp:        "PowerUp",
	KindFallingSpike:   "FallingSpike",
	KindSpikeTrap:      "SpikeTrap",
	KindMovingPlatform: "MovingPlatform",
	KindProjectile:     "Projectile",
	KindParticle:       "Particle",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Hostile reports whether touching the kind can hurt the player
func (k Kind) Hostile() bool {
	return k >= KindGoomba && k <= KindBoss
}

// Flying reports whether the kind ignores gravity and tiles
func (k Kind) Flying() bool {
	switch k {
	case KindGhost, KindThief, KindDodger, KindShielder, KindHealer:
		return true
	}
	return false
}

// EnemySize returns the fixed bounding size of an enemy kind
func EnemySize(k Kind) (w, h float64) {
	switch k {
	case KindKoopa:
		return 24, 36
	case KindGhost, KindThief:
		return 26, 26
	case KindSlime:
		return 28, 20
	case KindDodger, KindShielder, KindHealer:
		return 26, 28
	case KindBoss:
		return BossSize, BossSize
	default:
		return 28, 28
	}
}

// SpinPhase is the Spinner's speed phase
type SpinPhase int

const (
	SpinSlow SpinPhase = iota
	SpinFast
)

// TeleportPhase is the Teleporter's sub-state
type TeleportPhase int

const (
	TeleportIdle TeleportPhase = iota
	TeleportFadeOut
	TeleportFadeIn
)

// ThiefMode is the Thief's sub-state
type ThiefMode int

const (
	ThiefHunting ThiefMode = iota
	ThiefFleeing
)

// Enemy represents a hostile entity driven by a behavior variant
type Enemy struct {
	Body
	ID    EntityID
	Kind  Kind
	Alive bool

	Dir   float64 // +1 right, -1 left
	Speed float64

	// Generic frame timers; meaning depends on Kind
	Timer    int
	Cooldown int

	Spin     SpinPhase
	Teleport TeleportPhase
	Thief    ThiefMode

	// Teleporter fade
	Visible bool
	Alpha   float64

	// Dodger evasive impulse (decays each frame)
	DodgeVX, DodgeVY float64
	HoverY           float64

	// Healer cosmetic beam target (0 = none)
	HealTarget EntityID
}

// NewEnemy creates a new enemy of the given kind with its top-left at (x, y)
func NewEnemy(id EntityID, kind Kind, x, y, speed float64) *Enemy {
	w, h := EnemySize(kind)
	return &Enemy{
		Body: Body{
			X: x,
			Y: y,
			W: w,
			H: h,
		},
		ID:      id,
		Kind:    kind,
		Alive:   true,
		Dir:     1,
		Speed:   speed,
		Visible: true,
		Alpha:   1,
		HoverY:  y,
	}
}

// Interactable reports whether the enemy can touch or be touched this frame
func (e *Enemy) Interactable() bool {
	if !e.Alive {
		return false
	}
	if e.Kind == KindTeleporter {
		return e.Teleport == TeleportIdle && e.Visible
	}
	return true
}

// Kill marks the enemy dead
func (e *Enemy) Kill() {
	e.Alive = false
}

// BossSize is the side of the boss's square bounding box
const BossSize = 64

// Boss represents the boss of a boss level
type Boss struct {
	Body
	ID    EntityID
	Alive bool

	Health    int
	MaxHealth int

	MinX, MaxX float64
	Dir        float64
	Speed      float64

	Phase      int // 0, 1, 2
	PhaseTimer int
	HitTimer   int
}

// NewBoss creates a boss patrolling between minX and maxX
func NewBoss(id EntityID, x, y float64, health int, minX, maxX, speed float64) *Boss {
	return &Boss{
		Body: Body{
			X: x,
			Y: y,
			W: BossSize,
			H: BossSize,
		},
		ID:        id,
		Alive:     true,
		Health:    health,
		MaxHealth: health,
		MinX:      minX,
		MaxX:      maxX,
		Dir:       -1,
		Speed:     speed,
	}
}

// TakeDamage applies damage to the boss and returns true if it died
func (b *Boss) TakeDamage(damage int) bool {
	if !b.Alive {
		return false
	}
	b.Health -= damage
	b.HitTimer = 10
	if b.Health <= 0 {
		b.Health = 0
		b.Alive = false
		return true
	}
	return false
}
