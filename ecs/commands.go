package ecs

// Commands buffers structural changes requested by systems and applies them
// after the last system of the tick has run.
type Commands struct {
	spawns  []spawnCommand
	deletes []*Entity
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []*Component
}

type addComponentCommand struct {
	entity    *Entity
	component *Component
}

type removeComponentCommand struct {
	entity   *Entity
	compType ComponentType
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues the creation of an entity with the given components.
func (c *Commands) Spawn(components ...*Component) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity *Entity) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity *Entity, component *Component) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity *Entity, compType ComponentType) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies all queued operations to world and resets the buffer.
// Deletes run first; component changes to entities that are no longer alive
// are skipped. Operations queued while flushing, for example from a Defer
// callback, are applied by a further pass of the same flush.
func (c *Commands) Flush(world *World) {
	for c.Len() > 0 {
		pending := *c
		*c = Commands{}
		pending.apply(world)
		c.recycle(&pending)
	}
}

func (c *Commands) apply(world *World) {
	for _, entity := range c.deletes {
		world.DeleteEntity(entity)
	}

	for _, cmd := range c.removes {
		if cmd.entity.Alive() {
			cmd.entity.Remove(cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if cmd.entity.Alive() {
			cmd.entity.Add(cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		world.NewEntity(cmd.components...)
	}

	for _, df := range c.defers {
		df.fn()
	}
}

// recycle hands the drained buffers of done back to c when c queued nothing
// new, so a steady state flush does not allocate.
func (c *Commands) recycle(done *Commands) {
	if c.Len() > 0 {
		return
	}
	clear(done.spawns)
	clear(done.deletes)
	clear(done.adds)
	clear(done.removes)
	clear(done.defers)
	c.spawns = done.spawns[:0]
	c.deletes = done.deletes[:0]
	c.adds = done.adds[:0]
	c.removes = done.removes[:0]
	c.defers = done.defers[:0]
}
