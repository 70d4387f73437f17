package ecs

import (
	"fmt"
	"math/bits"
	"strconv"
)

// MaskWidth is the number of distinct component types a Mask can represent.
const MaskWidth = 32

// Mask is a fixed-width set of component bit indices. Bit i is set when the
// i-th component type seen by a Resolver is part of the set.
type Mask uint32

// EmptyMask returns the mask with no bits set.
func EmptyMask() Mask { return 0 }

// MaskFromIndex returns a mask with only bit index set.
// Panics with a *CapacityError if index falls outside [0, MaskWidth).
func MaskFromIndex(index int) Mask {
	if index < 0 || index >= MaskWidth {
		panic(&CapacityError{Index: index})
	}
	return Mask(1) << uint(index)
}

// Union returns the bits present in either mask.
func (m Mask) Union(other Mask) Mask { return m | other }

// Subtract returns the bits of m that are not present in other.
func (m Mask) Subtract(other Mask) Mask { return m &^ other }

// Contains reports whether every bit of sub is also set in m.
// An empty sub is contained by every mask.
func (m Mask) Contains(sub Mask) bool { return m&sub == sub }

// Intersects reports whether m and other share at least one bit.
func (m Mask) Intersects(other Mask) bool { return m&other != 0 }

// IsEmpty reports whether no bits are set.
func (m Mask) IsEmpty() bool { return m == 0 }

// Has reports whether bit index is set. Out of range indices are never set.
func (m Mask) Has(index int) bool {
	if index < 0 || index >= MaskWidth {
		return false
	}
	return m&(Mask(1)<<uint(index)) != 0
}

// Len returns the number of bits set.
func (m Mask) Len() int { return bits.OnesCount32(uint32(m)) }

// Indices returns the set bit indices in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Len())
	for word := uint32(m); word != 0; word &= word - 1 {
		out = append(out, bits.TrailingZeros32(word))
	}
	return out
}

// String formats the mask as a fixed-width hexadecimal word.
func (m Mask) String() string {
	return fmt.Sprintf("0x%08X", uint32(m))
}

// Binary formats the mask as MaskWidth binary digits, highest bit first.
func (m Mask) Binary() string {
	s := strconv.FormatUint(uint64(m), 2)
	for len(s) < MaskWidth {
		s = "0" + s
	}
	return s
}

// MergeMasks ORs all masks together. The result of an empty list is EmptyMask.
func MergeMasks(masks ...Mask) Mask {
	var merged Mask
	for _, m := range masks {
		merged |= m
	}
	return merged
}
