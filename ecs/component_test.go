package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

func TestComponentTypesAreUnique(t *testing.T) {
	a := ecs.NewComponentType("Same")
	b := ecs.NewComponentType("Same")

	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.Equal(t, "Same", a.String())
	assert.Equal(t, "Same", b.String())
}

func TestComponentTypeNames(t *testing.T) {
	assert.Equal(t, "Position", PositionKind.Name())
	assert.Equal(t, "ecs_test.PlayerController", PlayerKind.Name())
	assert.Contains(t, UnnamedTagType.String(), "component#")
	assert.Equal(t, "component#0", ecs.ComponentType(0).String())
}

func TestComponentKindSharesPayload(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity(PositionKind.New(Position{X: 1, Y: 2}))

	pos, ok := PositionKind.Get(e)
	require.True(t, ok)
	pos.X = 10

	again := PositionKind.MustGet(e)
	assert.Equal(t, float32(10), again.X)
	assert.Same(t, pos, again)
}

func TestComponentKindGetMissing(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity()

	pos, ok := PositionKind.Get(e)
	assert.False(t, ok)
	assert.Nil(t, pos)
	assert.False(t, PositionKind.Has(e))
	assert.Panics(t, func() { PositionKind.MustGet(e) })
}

func TestComponentKindGetWrongPayload(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity(ecs.NewComponent(PositionKind.Type(), "not a position"))

	assert.True(t, PositionKind.Has(e))
	_, ok := PositionKind.Get(e)
	assert.False(t, ok)
}

func TestUntypedComponent(t *testing.T) {
	world := ecs.NewWorld()
	e := world.NewEntity(ecs.NewComponent(TagType, nil))

	c, ok := e.Component(TagType)
	require.True(t, ok)
	assert.Equal(t, TagType, c.Type)
	assert.Nil(t, c.Data)
}
