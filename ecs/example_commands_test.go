package ecs_test

import (
	"fmt"

	"github.com/plus3/maskecs/ecs"
)

// ExampleCommands demonstrates deferring structural changes from inside a
// system. Queued operations are applied after the last system of the tick,
// so every system sees the same set of entities.
func ExampleCommands() {
	world := ecs.NewWorld()

	for i, hp := range []int{10, 0, 5, 0} {
		world.NewEntity(
			PositionKind.New(Position{X: float32(i)}),
			HealthKind.New(Health{Current: hp, Max: 10}),
		)
	}

	living := world.QueryAll(HealthKind.Type())
	world.RegisterSystem("cleanup", ecs.StagePostUpdate, living,
		func(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
			dead := 0
			for _, e := range entities {
				if HealthKind.MustGet(e).Current <= 0 {
					frame.Commands.Delete(e)
					dead++
				}
			}
			if dead > 0 {
				fmt.Printf("Queued %d dead entities for deletion\n", dead)
				frame.Commands.Spawn(PositionKind.New(Position{}), HealthKind.New(Health{Current: 10, Max: 10}))
				frame.Commands.Defer(func() {
					fmt.Printf("Entities after flush: %d\n", frame.World.Len())
				})
			}
		})
	world.RegisterSystem("census", ecs.StageRender, living,
		func(_ *ecs.UpdateFrame, entities []*ecs.Entity) {
			fmt.Printf("Census saw %d entities\n", len(entities))
		})

	world.Tick(1.0 / 60)
	world.Tick(1.0 / 60)

	// Output:
	// Queued 2 dead entities for deletion
	// Census saw 4 entities
	// Entities after flush: 3
	// Census saw 3 entities
}
