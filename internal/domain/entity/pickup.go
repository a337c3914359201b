package entity

// Pickup sizes
const (
	CoinSize    = 20
	PowerUpSize = 24
)

// Coin is a collectible worth a flat score
type Coin struct {
	ID        EntityID
	Rect      Rect
	Collected bool
	Stolen    bool
	AnimTimer int
}

// NewCoin creates a coin with its top-left at (x, y)
func NewCoin(id EntityID, x, y float64) *Coin {
	return &Coin{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: CoinSize, H: CoinSize},
	}
}

// Available reports whether the coin is still in play
func (c *Coin) Available() bool {
	return !c.Collected && !c.Stolen
}

// BobOffset returns the cosmetic vertical bob of the coin
func (c *Coin) BobOffset() float64 {
	if (c.AnimTimer/20)%2 == 0 {
		return 0
	}
	return -3
}

// PowerUpKind is the effect granted by a power-up
type PowerUpKind int

const (
	PowerExtraLife PowerUpKind = iota
	PowerRapidFire
	PowerInvincibility
)

// String returns the string representation of the power-up kind
func (k PowerUpKind) String() string {
	switch k {
	case PowerExtraLife:
		return "ExtraLife"
	case PowerRapidFire:
		return "RapidFire"
	case PowerInvincibility:
		return "Invincibility"
	default:
		return "Unknown"
	}
}

// PowerUp is a collectible granting a timed or permanent effect
type PowerUp struct {
	ID        EntityID
	Kind      PowerUpKind
	Rect      Rect
	Collected bool
}

// NewPowerUp creates a power-up with its top-left at (x, y)
func NewPowerUp(id EntityID, kind PowerUpKind, x, y float64) *PowerUp {
	return &PowerUp{
		ID:   id,
		Kind: kind,
		Rect: Rect{X: x, Y: y, W: PowerUpSize, H: PowerUpSize},
	}
}
