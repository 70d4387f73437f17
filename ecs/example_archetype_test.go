package ecs_test

import (
	"fmt"

	"github.com/plus3/maskecs/ecs"
)

// ExampleResolver shows how component types map to bits. Bits are assigned
// on first use, so the first type a resolver sees gets bit 0.
func ExampleResolver() {
	resolver := ecs.NewResolver()

	position := resolver.Get(PositionKind.Type())
	velocity := resolver.Get(VelocityKind.Type())
	health := resolver.Get(HealthKind.Type())

	moving := resolver.Merge(position, velocity)
	fmt.Println(moving, resolver.Describe(moving))

	living := resolver.Add(moving, health)
	fmt.Println(living.Binary()[29:])
	fmt.Println(resolver.Contains(living, moving))

	still := resolver.Remove(living, velocity)
	fmt.Println(resolver.Describe(still))
	fmt.Println(resolver.Intersects(still, velocity))

	// Output:
	// 0x00000003 [Position Velocity]
	// 111
	// true
	// [Position Health]
	// false
}

// ExampleResolver_Resolve shows the error returned once every bit of a Mask is taken.
func ExampleResolver_Resolve() {
	resolver := ecs.NewResolver()
	for i := 0; i < ecs.MaskWidth; i++ {
		resolver.Get(ecs.NewComponentType(fmt.Sprintf("c%d", i)))
	}

	_, err := resolver.Resolve(ecs.NewComponentType("overflow"))
	fmt.Println(err)
	fmt.Println(resolver.Len())

	// Output:
	// component type capacity exceeded: component type overflow would need bit 32 (max 32 types)
	// 32
}
