package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

func TestSingletonLifecycle(t *testing.T) {
	world := ecs.NewWorld()

	health := ecs.NewSingleton(world, HealthKind, Health{Current: 3, Max: 3})
	require.True(t, health.Exists())
	health.Get().Current--

	c, ok := world.Singleton(HealthKind.Type())
	require.True(t, ok)
	assert.Equal(t, &Health{Current: 2, Max: 3}, c.Data)

	world.RemoveSingleton(HealthKind.Type())
	assert.False(t, health.Exists())
	assert.Empty(t, world.SingletonTypes())
}

func TestSingletonZeroValue(t *testing.T) {
	world := ecs.NewWorld()
	speed := ecs.NewSingleton(world, SpeedKind)
	assert.Equal(t, &Speed{}, speed.Get())
}

func TestSingletonNotQueryable(t *testing.T) {
	world := ecs.NewWorld()
	ecs.NewSingleton(world, PositionKind, Position{X: 1})
	world.NewEntity(PositionKind.New(Position{X: 2}))

	found := world.Find(world.QueryAll(PositionKind.Type()))
	require.Len(t, found, 1)
	assert.Equal(t, float32(2), PositionKind.MustGet(found[0]).X)
	assert.Equal(t, 1, world.Resolver().Len())
}

func TestSingletonFollowsReplacement(t *testing.T) {
	world := ecs.NewWorld()
	health := ecs.NewSingleton(world, HealthKind, Health{Current: 1})
	first := health.Get()

	world.RemoveSingleton(HealthKind.Type())
	assert.Nil(t, health.Get())

	world.SetSingleton(HealthKind.New(Health{Current: 7}))
	require.NotNil(t, health.Get())
	assert.NotSame(t, first, health.Get())
	assert.Equal(t, 7, health.Get().Current)

	world.SetSingleton(HealthKind.New(Health{Current: 9}))
	assert.Equal(t, 9, health.Get().Current)
}
