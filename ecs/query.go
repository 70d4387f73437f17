package ecs

import (
	"strings"
)

// Filter selects entities by component type. All types in All must be
// present, at least one type in Any must be present (no constraint when Any
// is empty), and no type in None may be present.
type Filter struct {
	All  []ComponentType
	Any  []ComponentType
	None []ComponentType
}

// Query is a compiled Filter. Queries are immutable and are cache keys for
// the World's index by identity, so create them once and reuse them.
type Query struct {
	id       uint32
	resolver *Resolver
	filter   Filter
	all    Mask
	any    Mask
	none   Mask
}

func compileQuery(id uint32, resolver *Resolver, filter Filter) *Query {
	return &Query{
		id:       id,
		resolver: resolver,
		filter: Filter{
			All:  cloneTypes(filter.All),
			Any:  cloneTypes(filter.Any),
			None: cloneTypes(filter.None),
		},
		all:  resolver.GetAll(filter.All...),
		any:  resolver.GetAll(filter.Any...),
		none: resolver.GetAll(filter.None...),
	}
}

func cloneTypes(types []ComponentType) []ComponentType {
	if len(types) == 0 {
		return nil
	}
	out := make([]ComponentType, len(types))
	copy(out, types)
	return out
}

// matchArchetype is the archetype-level predicate behind every query.
func matchArchetype(archetype, all, any, none Mask) bool {
	if !archetype.Contains(all) {
		return false
	}
	if !any.IsEmpty() && !archetype.Intersects(any) {
		return false
	}
	return !archetype.Intersects(none)
}

// ID returns the query's identity within its World.
func (q *Query) ID() uint32 { return q.id }

// Spec returns a copy of the filter the query was compiled from.
func (q *Query) Spec() Filter {
	return Filter{
		All:  cloneTypes(q.filter.All),
		Any:  cloneTypes(q.filter.Any),
		None: cloneTypes(q.filter.None),
	}
}

// Masks returns the compiled all, any and none masks.
func (q *Query) Masks() (all, any, none Mask) {
	return q.all, q.any, q.none
}

// MatchArchetype tests an archetype against the query.
func (q *Query) MatchArchetype(archetype Mask) bool {
	return matchArchetype(archetype, q.all, q.any, q.none)
}

// Match tests a single entity against the query.
func (q *Query) Match(e *Entity) bool {
	return q.MatchArchetype(e.Archetype())
}

// Filter returns the matching entities in input order. The input is not modified.
func (q *Query) Filter(entities []*Entity) []*Entity {
	out := make([]*Entity, 0, len(entities))
	for _, e := range entities {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func (q *Query) String() string {
	var b strings.Builder
	writeTypes := func(label string, types []ComponentType) {
		if len(types) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(label)
		b.WriteString("=[")
		for i, t := range types {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.String())
		}
		b.WriteByte(']')
	}
	writeTypes("all", q.filter.All)
	writeTypes("any", q.filter.Any)
	writeTypes("none", q.filter.None)
	if b.Len() == 0 {
		return "all=[]"
	}
	return b.String()
}
