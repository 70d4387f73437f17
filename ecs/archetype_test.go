package ecs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

func TestResolverAssignsBitsInFirstSeenOrder(t *testing.T) {
	r := ecs.NewResolver()

	assert.Equal(t, ecs.MaskFromIndex(0), r.Get(VelocityKind.Type()))
	assert.Equal(t, ecs.MaskFromIndex(1), r.Get(PositionKind.Type()))
	assert.Equal(t, ecs.MaskFromIndex(0), r.Get(VelocityKind.Type()))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []ecs.ComponentType{VelocityKind.Type(), PositionKind.Type()}, r.Types())

	index, ok := r.Index(PositionKind.Type())
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	_, ok = r.Index(HealthKind.Type())
	assert.False(t, ok, "Index must not assign")
	assert.Equal(t, 2, r.Len())
}

func TestResolverGetIsIdempotent(t *testing.T) {
	r := ecs.NewResolver()
	first := r.Get(HealthKind.Type())
	for range 10 {
		assert.Equal(t, first, r.Get(HealthKind.Type()))
	}
}

func TestResolverIdentityIsByType(t *testing.T) {
	r := ecs.NewResolver()
	assert.NotEqual(t, TagType, OtherTagType)
	assert.NotEqual(t, r.Get(TagType), r.Get(OtherTagType))
	assert.Equal(t, TagType.String(), OtherTagType.String())
}

func TestResolverGetAll(t *testing.T) {
	r := ecs.NewResolver()
	pos := r.Get(PositionKind.Type())
	vel := r.Get(VelocityKind.Type())

	assert.Equal(t, pos.Union(vel), r.GetAll(PositionKind.Type(), VelocityKind.Type()))
	assert.Equal(t, pos.Union(vel), r.GetAll(VelocityKind.Type(), PositionKind.Type(), PositionKind.Type()))
	assert.Equal(t, r.Empty(), r.GetAll())
}

func TestResolverDelegatesToMaskAlgebra(t *testing.T) {
	r := ecs.NewResolver()
	pos := r.Get(PositionKind.Type())
	vel := r.Get(VelocityKind.Type())

	both := r.Add(pos, vel)
	assert.Equal(t, pos.Union(vel), both)
	assert.Equal(t, vel, r.Remove(both, pos))
	assert.True(t, r.Contains(both, pos))
	assert.True(t, r.Intersects(both, vel))
	assert.Equal(t, both, r.Merge(pos, vel))
}

func TestResolverDescribe(t *testing.T) {
	r := ecs.NewResolver()
	r.Get(NameKind.Type())
	r.Get(HealthKind.Type())
	r.Get(SpeedKind.Type())

	m := r.GetAll(SpeedKind.Type(), NameKind.Type())
	assert.Equal(t, []ecs.ComponentType{NameKind.Type(), SpeedKind.Type()}, r.Describe(m))
	assert.Empty(t, r.Describe(ecs.MaskFromIndex(20)))
}

func TestResolversAreIndependent(t *testing.T) {
	a := ecs.NewResolver()
	b := ecs.NewResolver()

	a.Get(PositionKind.Type())
	assert.Equal(t, ecs.MaskFromIndex(0), b.Get(HealthKind.Type()))
	assert.Equal(t, ecs.MaskFromIndex(1), b.Get(PositionKind.Type()))
}

func TestResolverCapacity(t *testing.T) {
	r := ecs.NewResolver()

	types := make([]ecs.ComponentType, ecs.MaskWidth+1)
	for i := range types {
		types[i] = ecs.NewComponentType(fmt.Sprintf("capacity-%d", i))
	}

	for i := 0; i < ecs.MaskWidth; i++ {
		m, err := r.Resolve(types[i])
		require.NoError(t, err)
		assert.Equal(t, ecs.MaskFromIndex(i), m)
	}

	_, err := r.Resolve(types[ecs.MaskWidth])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrCapacityExceeded))

	var capErr *ecs.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, ecs.MaskWidth, capErr.Index)
	assert.Equal(t, types[ecs.MaskWidth], capErr.Type)
	assert.Contains(t, err.Error(), "capacity-32")

	assert.Panics(t, func() { r.Get(types[ecs.MaskWidth]) })
	assert.Equal(t, ecs.MaskWidth, r.Len(), "a failed resolve must not consume a bit")

	// Already known types still resolve.
	m, err := r.Resolve(types[5])
	require.NoError(t, err)
	assert.Equal(t, ecs.MaskFromIndex(5), m)
}
