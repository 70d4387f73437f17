package ecs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

func TestMaskAlgebra(t *testing.T) {
	a := ecs.MaskFromIndex(0).Union(ecs.MaskFromIndex(3))
	b := ecs.MaskFromIndex(3).Union(ecs.MaskFromIndex(5))

	assert.Equal(t, ecs.Mask(0), ecs.EmptyMask())
	assert.Equal(t, ecs.Mask(1<<0|1<<3|1<<5), a.Union(b))
	assert.Equal(t, ecs.Mask(1<<0), a.Subtract(b))
	assert.True(t, a.Intersects(b))
	assert.False(t, ecs.MaskFromIndex(1).Intersects(a))
	assert.True(t, a.Union(b).Contains(a))
	assert.False(t, a.Contains(b))
	assert.Equal(t, []int{0, 3}, a.Indices())
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Has(3))
	assert.False(t, a.Has(4))
	assert.False(t, a.Has(-1))
	assert.False(t, a.Has(ecs.MaskWidth))
}

func TestMaskEmptyIsContainedEverywhere(t *testing.T) {
	assert.True(t, ecs.EmptyMask().Contains(ecs.EmptyMask()))
	assert.True(t, ecs.MaskFromIndex(7).Contains(ecs.EmptyMask()))
	assert.False(t, ecs.MaskFromIndex(7).Intersects(ecs.EmptyMask()))
	assert.True(t, ecs.EmptyMask().IsEmpty())
}

func TestMergeMasks(t *testing.T) {
	assert.Equal(t, ecs.EmptyMask(), ecs.MergeMasks())
	assert.Equal(t, ecs.Mask(0b1011), ecs.MergeMasks(
		ecs.MaskFromIndex(0),
		ecs.MaskFromIndex(1),
		ecs.MaskFromIndex(3),
		ecs.MaskFromIndex(1),
	))
}

func TestMaskFromIndexHighestBit(t *testing.T) {
	m := ecs.MaskFromIndex(ecs.MaskWidth - 1)
	assert.Equal(t, ecs.Mask(1<<31), m)
	assert.Equal(t, "0x80000000", m.String())
	assert.Equal(t, "1"+strings.Repeat("0", ecs.MaskWidth-1), m.Binary())
	assert.Equal(t, strings.Repeat("0", ecs.MaskWidth-1)+"1", ecs.MaskFromIndex(0).Binary())
}

func TestMaskFromIndexOutOfRange(t *testing.T) {
	for _, index := range []int{-1, ecs.MaskWidth, ecs.MaskWidth + 10} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "index %d should panic", index)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ecs.ErrCapacityExceeded))
			}()
			ecs.MaskFromIndex(index)
		}()
	}
}
