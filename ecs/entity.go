package ecs

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// EntityID encodes a slot generation (upper 32 bits) and a slot index (lower 32 bits).
// Slot 0 is never issued, so the zero EntityID is never a live entity.
type EntityID uint64

// NewEntityID creates an EntityID from a slot index and generation.
func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index.
func (id EntityID) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Generation extracts the slot generation.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// Valid reports whether the id could refer to an entity at all.
func (id EntityID) Valid() bool {
	return id.Index() != 0
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}

// Entity owns a set of components (at most one per type) and the archetype
// derived from them. Handles are only handed out by a World.
type Entity struct {
	id         EntityID
	resolver   *Resolver
	index      *Index
	components *intmap.Map[ComponentType, *Component]
	archetype  Mask
	alive      bool
}

func newEntity(id EntityID, resolver *Resolver, index *Index) *Entity {
	return &Entity{
		id:         id,
		resolver:   resolver,
		index:      index,
		components: intmap.New[ComponentType, *Component](8),
		alive:      true,
	}
}

// ID returns the entity's identifier.
func (e *Entity) ID() EntityID { return e.id }

// Archetype returns the mask of component types currently attached.
func (e *Entity) Archetype() Mask { return e.archetype }

// Alive reports whether the entity is still registered with its World.
func (e *Entity) Alive() bool { return e.alive }

// Component returns the instance stored for t.
func (e *Entity) Component(t ComponentType) (*Component, bool) {
	return e.components.Get(t)
}

// Has reports whether a component of type t is attached.
func (e *Entity) Has(t ComponentType) bool {
	return e.components.Has(t)
}

// Len returns the number of attached components.
func (e *Entity) Len() int {
	return e.components.Len()
}

// Add attaches c, replacing any existing component of the same type, and
// recomputes the archetype. Panics if c would exceed the type capacity; in
// that case the entity is left unchanged.
func (e *Entity) Add(c *Component) {
	if c == nil {
		panic("ecs: cannot add a nil component")
	}

	bit := e.resolver.Get(c.Type)

	e.components.Put(c.Type, c)
	e.archetype = e.resolver.Add(e.archetype, bit)
	e.index.Update(e)
}

// Remove detaches the component of type t. Removing an absent type is a no-op.
func (e *Entity) Remove(t ComponentType) {
	if !e.components.Del(t) {
		return
	}

	if index, ok := e.resolver.Index(t); ok {
		e.archetype = e.resolver.Remove(e.archetype, MaskFromIndex(index))
	}
	e.index.Update(e)
}

// Types returns the attached component types ordered by bit index.
func (e *Entity) Types() []ComponentType {
	return e.resolver.Describe(e.archetype)
}

// Components returns the attached instances ordered by bit index.
func (e *Entity) Components() []*Component {
	types := e.Types()
	out := make([]*Component, 0, len(types))
	for _, t := range types {
		if c, ok := e.components.Get(t); ok {
			out = append(out, c)
		}
	}
	return out
}

// idAllocator hands out entity ids. With recycling enabled, released slots are
// reused last-in first-out and their generation is bumped on release so that
// stale ids no longer resolve.
type idAllocator struct {
	recycle     bool
	generations []uint32
	free        []uint32
}

func newIDAllocator(recycle bool) *idAllocator {
	return &idAllocator{
		recycle:     recycle,
		generations: []uint32{0},
	}
}

func (a *idAllocator) allocate() EntityID {
	if a.recycle && len(a.free) > 0 {
		index := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		return NewEntityID(index, a.generations[index])
	}

	index := uint32(len(a.generations))
	a.generations = append(a.generations, 0)
	return NewEntityID(index, 0)
}

func (a *idAllocator) release(id EntityID) {
	if !a.recycle {
		return
	}
	index := id.Index()
	if index == 0 || int(index) >= len(a.generations) || a.generations[index] != id.Generation() {
		return
	}
	a.generations[index]++
	a.free = append(a.free, index)
}
