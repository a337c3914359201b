package entity

// HazardKind selects the hazard variant
type HazardKind int

const (
	HazardFallingSpike HazardKind = iota
	HazardSpikeTrap
)

// FallingSpikeState is the falling spike's sub-state
type FallingSpikeState int

const (
	SpikeHanging FallingSpikeState = iota
	SpikeFalling
)

// Hazard sizes
const (
	FallingSpikeWidth  = 24
	FallingSpikeHeight = 28
	SpikeTrapWidth     = 32
	SpikeTrapHeight    = 16
)

// Hazard is a lethal object that ignores stomp logic
type Hazard struct {
	Body
	ID    EntityID
	Kind  HazardKind
	Alive bool

	Falling  FallingSpikeState
	Extended bool
	Timer    int
}

// NewFallingSpike creates a spike hanging with its top-left at (x, y)
func NewFallingSpike(id EntityID, x, y float64) *Hazard {
	return &Hazard{
		Body:  Body{X: x, Y: y, W: FallingSpikeWidth, H: FallingSpikeHeight},
		ID:    id,
		Kind:  HazardFallingSpike,
		Alive: true,
	}
}

// NewSpikeTrap creates a retracting floor trap with its top-left at (x, y)
func NewSpikeTrap(id EntityID, x, y float64, phase int) *Hazard {
	return &Hazard{
		Body:  Body{X: x, Y: y, W: SpikeTrapWidth, H: SpikeTrapHeight},
		ID:    id,
		Kind:  HazardSpikeTrap,
		Alive: true,
		Timer: phase,
	}
}

// Lethal reports whether touching the hazard kills this frame
func (h *Hazard) Lethal() bool {
	if !h.Alive {
		return false
	}
	if h.Kind == HazardSpikeTrap {
		return h.Extended
	}
	return true
}

// EntityKind maps the hazard to the shared variant discriminator
func (h *Hazard) EntityKind() Kind {
	if h.Kind == HazardSpikeTrap {
		return KindSpikeTrap
	}
	return KindFallingSpike
}

// PlatformAxis is the axis a moving platform travels along
type PlatformAxis int

const (
	AxisHorizontal PlatformAxis = iota
	AxisVertical
)

// Moving platform size
const (
	PlatformWidth  = 96
	PlatformHeight = 16
)

// MovingPlatform is a one-way semi-solid that oscillates between two bounds
type MovingPlatform struct {
	Body
	ID       EntityID
	Axis     PlatformAxis
	Min, Max float64
	Speed    float64
	Dir      float64

	// Displacement applied during the last update, used to carry riders
	DX, DY float64
}

// NewMovingPlatform creates a platform oscillating along axis between min and max
func NewMovingPlatform(id EntityID, x, y float64, axis PlatformAxis, minPos, maxPos, speed float64) *MovingPlatform {
	return &MovingPlatform{
		Body:  Body{X: x, Y: y, W: PlatformWidth, H: PlatformHeight},
		ID:    id,
		Axis:  axis,
		Min:   minPos,
		Max:   maxPos,
		Speed: speed,
		Dir:   1,
	}
}

// Update advances the platform one frame, reversing at its bounds
func (m *MovingPlatform) Update() {
	step := m.Speed * m.Dir
	m.DX, m.DY = 0, 0

	pos := &m.X
	if m.Axis == AxisVertical {
		pos = &m.Y
	}
	before := *pos
	*pos += step
	if *pos >= m.Max {
		*pos = m.Max
		m.Dir = -1
	} else if *pos <= m.Min {
		*pos = m.Min
		m.Dir = 1
	}

	if m.Axis == AxisVertical {
		m.DY = *pos - before
	} else {
		m.DX = *pos - before
	}
}
