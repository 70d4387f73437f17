package swarm

import (
	"github.com/plus3/maskecs/ecs"
)

// Position is a point on the canvas.
type Position struct {
	X, Y float64
}

// Radius is the hit radius of an agent.
type Radius struct {
	R float64
}

// Speed is the current agent speed in pixels per second.
type Speed struct {
	X, Y float64
}

// Health is the remaining time, in milliseconds, an agent can spend under the pointer.
type Health struct {
	Value float64
}

// LastHit remembers when the pointer last touched an agent.
type LastHit struct {
	At     float64
	Active bool
}

// NoiseOffset is the agent's position along the two noise curves steering it.
type NoiseOffset struct {
	X, Y float64
}

// Born marks a trail point with its creation time in milliseconds.
type Born struct {
	At float64
}

// Clock is the simulation time singleton.
type Clock struct {
	Now   float64
	Frame uint64
}

// Pointer is the input singleton written by drivers before each tick.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

var (
	PositionKind    = ecs.DefineComponent[Position]("Position")
	RadiusKind      = ecs.DefineComponent[Radius]("Radius")
	SpeedKind       = ecs.DefineComponent[Speed]("Speed")
	HealthKind      = ecs.DefineComponent[Health]("Health")
	LastHitKind     = ecs.DefineComponent[LastHit]("LastHit")
	NoiseOffsetKind = ecs.DefineComponent[NoiseOffset]("NoiseOffset")
	BornKind        = ecs.DefineComponent[Born]("Born")

	ClockKind       = ecs.DefineComponent[Clock]("swarm.Clock")
	PointerKind     = ecs.DefineComponent[Pointer]("swarm.Pointer")
	DisplayListKind = ecs.DefineComponent[DisplayList]("swarm.DisplayList")
)
