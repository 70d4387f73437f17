package ecs_test

import "github.com/plus3/maskecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type Speed struct {
	Value float32
}

type PlayerController struct{}

type Frozen struct{}

var (
	PositionKind   = ecs.DefineComponent[Position]("Position")
	VelocityKind   = ecs.DefineComponent[Velocity]("Velocity")
	HealthKind     = ecs.DefineComponent[Health]("Health")
	NameKind       = ecs.DefineComponent[Name]("Name")
	SpeedKind      = ecs.DefineComponent[Speed]("Speed")
	PlayerKind     = ecs.DefineComponent[PlayerController]("")
	FrozenKind     = ecs.DefineComponent[Frozen]("Frozen")
	TagType        = ecs.NewComponentType("Tag")
	OtherTagType   = ecs.NewComponentType("Tag")
	UnnamedTagType = ecs.NewComponentType("")
)

func ids(entities []*ecs.Entity) []ecs.EntityID {
	out := make([]ecs.EntityID, len(entities))
	for i, e := range entities {
		out[i] = e.ID()
	}
	return out
}
