package system

import "github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"

// Intent represents a side effect a behavior asks the session to apply
type Intent interface {
	isIntent()
}

// SpawnIntent asks for a new enemy with its top-left at (X, Y)
type SpawnIntent struct {
	Kind entity.Kind
	X, Y float64
	Dir  float64
}

func (SpawnIntent) isIntent() {}

// StealIntent reports that a thief took a coin out of play
type StealIntent struct {
	Thief entity.EntityID
	Coin  entity.EntityID
	X, Y  float64
}

func (StealIntent) isIntent() {}

// HealIntent reports a healer starting a heal window on a neighbour
type HealIntent struct {
	Healer entity.EntityID
	Target entity.EntityID
	X, Y   float64
}

func (HealIntent) isIntent() {}
