package ecs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		name       string
		index      uint32
		generation uint32
	}{
		{"zero generation", 1, 0},
		{"recycled", 42, 3},
		{"max values", 0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ecs.NewEntityID(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
			assert.True(t, id.Valid())
		})
	}

	assert.False(t, ecs.EntityID(0).Valid())
	assert.Equal(t, "42:3", ecs.NewEntityID(42, 3).String())
}

func TestEntityAddAndRemove(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity()

	assert.Equal(t, ecs.EmptyMask(), e.Archetype())
	assert.Equal(t, 0, e.Len())

	e.Add(PositionKind.New(Position{X: 1}))
	e.Add(HealthKind.New(Health{Current: 5, Max: 5}))

	r := world.Resolver()
	assert.Equal(t, r.GetAll(PositionKind.Type(), HealthKind.Type()), e.Archetype())
	assert.True(t, e.Has(PositionKind.Type()))
	assert.True(t, e.Has(HealthKind.Type()))
	assert.False(t, e.Has(VelocityKind.Type()))
	assert.Equal(t, 2, e.Len())

	e.Remove(PositionKind.Type())
	assert.Equal(t, r.Get(HealthKind.Type()), e.Archetype())
	assert.False(t, e.Has(PositionKind.Type()))

	_, ok := e.Component(PositionKind.Type())
	assert.False(t, ok)
}

func TestEntityAddReplacesSameType(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity(HealthKind.New(Health{Current: 1}))
	before := e.Archetype()

	replacement := HealthKind.New(Health{Current: 99})
	e.Add(replacement)

	c, ok := e.Component(HealthKind.Type())
	require.True(t, ok)
	assert.Same(t, replacement, c)
	assert.Equal(t, 99, HealthKind.MustGet(e).Current)
	assert.Equal(t, before, e.Archetype())
	assert.Equal(t, 1, e.Len())
}

func TestEntityRemoveAbsentIsNoop(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity(PositionKind.New(Position{}))
	before := e.Archetype()

	e.Remove(VelocityKind.Type())
	e.Remove(ecs.NewComponentType("never-seen"))

	assert.Equal(t, before, e.Archetype())
	assert.Equal(t, 1, e.Len())
}

func TestEntityAddNilPanics(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity()
	assert.Panics(t, func() { e.Add(nil) })
}

func TestEntityTypesAndComponentsOrderedByBit(t *testing.T) {
	world := ecs.NewWorld()
	r := world.Resolver()
	r.Get(SpeedKind.Type())
	r.Get(NameKind.Type())

	e := world.NewEntity(NameKind.New(Name{"a"}), SpeedKind.New(Speed{1}))

	assert.Equal(t, []ecs.ComponentType{SpeedKind.Type(), NameKind.Type()}, e.Types())
	components := e.Components()
	require.Len(t, components, 2)
	assert.Equal(t, SpeedKind.Type(), components[0].Type)
	assert.Equal(t, NameKind.Type(), components[1].Type)
}

func TestEntityCapacityLeavesEntityUnchanged(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity()

	for i := 0; i < ecs.MaskWidth; i++ {
		e.Add(ecs.NewComponent(ecs.NewComponentType(""), i))
	}
	before := e.Archetype()

	overflow := ecs.NewComponentType("overflow")
	assert.Panics(t, func() { e.Add(ecs.NewComponent(overflow, nil)) })
	assert.False(t, e.Has(overflow))
	assert.Equal(t, before, e.Archetype())
	assert.Equal(t, ecs.MaskWidth, e.Len())
}

// The archetype always equals the merge of the bits of the types present,
// whatever the order of additions and removals.
func TestEntityArchetypeMatchesComponentSet(t *testing.T) {
	kinds := []ecs.ComponentType{
		PositionKind.Type(),
		VelocityKind.Type(),
		HealthKind.Type(),
		NameKind.Type(),
		SpeedKind.Type(),
		FrozenKind.Type(),
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		world := ecs.NewWorld()
		e := world.NewEntity()
		present := make(map[ecs.ComponentType]bool)

		for step := 0; step < 40; step++ {
			typ := kinds[rng.IntN(len(kinds))]
			if rng.IntN(2) == 0 {
				e.Add(ecs.NewComponent(typ, step))
				present[typ] = true
			} else {
				e.Remove(typ)
				delete(present, typ)
			}

			expected := make([]ecs.Mask, 0, len(present))
			for typ := range present {
				expected = append(expected, world.Resolver().Get(typ))
			}
			require.Equal(t, ecs.MergeMasks(expected...), e.Archetype(), "round %d step %d", round, step)
			require.Equal(t, len(present), e.Len())
		}
	}
}
