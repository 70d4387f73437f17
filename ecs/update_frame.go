package ecs

// UpdateFrame is passed to every system during a tick.
type UpdateFrame struct {
	DeltaTime float64
	Tick      uint64
	World     *World
	Commands  *Commands
}

func newUpdateFrame(dt float64, tick uint64, world *World, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		World:     world,
		Commands:  commands,
	}
}
