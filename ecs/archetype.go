package ecs

import (
	"github.com/kamstrup/intmap"
)

// Resolver assigns bit indices to component types and builds archetype masks.
// Indices are handed out in first-seen order and are never reassigned or
// reclaimed, so masks stay comparable for the lifetime of the resolver.
type Resolver struct {
	bits  *intmap.Map[ComponentType, int]
	types []ComponentType
}

// NewResolver creates an empty resolver. Each World owns its own.
func NewResolver() *Resolver {
	return &Resolver{
		bits:  intmap.New[ComponentType, int](MaskWidth),
		types: make([]ComponentType, 0, MaskWidth),
	}
}

// Resolve returns the single-bit mask for t, assigning the next free bit on
// first sight. Fails with a *CapacityError once MaskWidth types are in use.
func (r *Resolver) Resolve(t ComponentType) (Mask, error) {
	if index, ok := r.bits.Get(t); ok {
		return MaskFromIndex(index), nil
	}

	index := len(r.types)
	if index >= MaskWidth {
		return 0, &CapacityError{Index: index, Type: t}
	}

	r.bits.Put(t, index)
	r.types = append(r.types, t)
	return MaskFromIndex(index), nil
}

// Get is Resolve for callers that treat capacity overflow as fatal.
func (r *Resolver) Get(t ComponentType) Mask {
	mask, err := r.Resolve(t)
	if err != nil {
		panic(err)
	}
	return mask
}

// GetAll merges the masks of every given type.
func (r *Resolver) GetAll(types ...ComponentType) Mask {
	var merged Mask
	for _, t := range types {
		merged = merged.Union(r.Get(t))
	}
	return merged
}

// Add returns source with the bits of toAdd set.
func (r *Resolver) Add(source, toAdd Mask) Mask { return source.Union(toAdd) }

// Remove returns source with the bits of toRemove cleared.
func (r *Resolver) Remove(source, toRemove Mask) Mask { return source.Subtract(toRemove) }

// Contains reports whether container holds every bit of contained.
func (r *Resolver) Contains(container, contained Mask) bool { return container.Contains(contained) }

// Intersects reports whether the masks share a bit.
func (r *Resolver) Intersects(a, b Mask) bool { return a.Intersects(b) }

// Merge ORs the given masks.
func (r *Resolver) Merge(masks ...Mask) Mask { return MergeMasks(masks...) }

// Empty returns the archetype with no components.
func (r *Resolver) Empty() Mask { return EmptyMask() }

// Index returns the bit assigned to t, if any. It never assigns.
func (r *Resolver) Index(t ComponentType) (int, bool) {
	return r.bits.Get(t)
}

// Len returns the number of component types with an assigned bit.
func (r *Resolver) Len() int { return len(r.types) }

// Types returns the registered component types ordered by bit index.
func (r *Resolver) Types() []ComponentType {
	out := make([]ComponentType, len(r.types))
	copy(out, r.types)
	return out
}

// Describe expands a mask back into component types, ordered by bit index.
// Bits that were never assigned are ignored.
func (r *Resolver) Describe(m Mask) []ComponentType {
	out := make([]ComponentType, 0, m.Len())
	for _, index := range m.Indices() {
		if index < len(r.types) {
			out = append(out, r.types[index])
		}
	}
	return out
}
