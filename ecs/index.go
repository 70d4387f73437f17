package ecs

import (
	"fmt"
	"slices"
	"sort"

	"github.com/kamstrup/intmap"
)

// IndexPolicy controls how the query index reacts to entity changes.
type IndexPolicy int

const (
	// IndexIncremental re-tests only the changed entity against each cached
	// query and patches the cached lists in place.
	IndexIncremental IndexPolicy = iota

	// IndexInvalidateAll drops every cached list on any entity change.
	IndexInvalidateAll
)

func (p IndexPolicy) String() string {
	switch p {
	case IndexIncremental:
		return "incremental"
	case IndexInvalidateAll:
		return "invalidate-all"
	default:
		return "unknown"
	}
}

// ParseIndexPolicy is the inverse of IndexPolicy.String.
func ParseIndexPolicy(s string) (IndexPolicy, error) {
	for _, p := range []IndexPolicy{IndexIncremental, IndexInvalidateAll} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownIndexPolicy, s)
}

// Population is an ordered snapshot of live entities. Query results are
// always computed against, and cached for, one population.
type Population struct {
	entities  []*Entity
	positions *intmap.Map[EntityID, int]
}

// NewPopulation snapshots entities. The slice is retained, not copied.
func NewPopulation(entities []*Entity) *Population {
	positions := intmap.New[EntityID, int](len(entities))
	for i, e := range entities {
		positions.Put(e.id, i)
	}
	return &Population{
		entities:  entities,
		positions: positions,
	}
}

// Entities returns the snapshot. Callers must not modify it.
func (p *Population) Entities() []*Entity { return p.entities }

// Len returns the number of entities in the snapshot.
func (p *Population) Len() int { return len(p.entities) }

// Contains reports whether e is part of the snapshot.
func (p *Population) Contains(e *Entity) bool {
	_, ok := p.position(e)
	return ok
}

func (p *Population) position(e *Entity) (int, bool) {
	pos, ok := p.positions.Get(e.id)
	if !ok || p.entities[pos] != e {
		return 0, false
	}
	return pos, true
}

type cachedResult struct {
	query    *Query
	pop      *Population
	entities []*Entity
	members  *intmap.Set[EntityID]

	// shared is set once entities has been handed out; the next patch copies first.
	shared bool
}

// IndexStats reports cache activity.
type IndexStats struct {
	Policy             IndexPolicy
	Cached             int
	Hits               uint64
	Misses             uint64
	Invalidations      uint64
	IncrementalUpdates uint64
}

// HitRatio returns the share of lookups served from the cache.
func (s IndexStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Index caches query results per query identity. Results are computed lazily
// on first request after a change and shared by every reader of that query
// until the next change.
type Index struct {
	policy  IndexPolicy
	results *intmap.Map[uint32, *cachedResult]

	hits               uint64
	misses             uint64
	invalidations      uint64
	incrementalUpdates uint64
}

// NewIndex creates an empty index with the given policy.
func NewIndex(policy IndexPolicy) *Index {
	return &Index{
		policy:  policy,
		results: intmap.New[uint32, *cachedResult](64),
	}
}

// Policy returns the invalidation policy.
func (x *Index) Policy() IndexPolicy { return x.policy }

// Len returns the number of cached query results.
func (x *Index) Len() int { return x.results.Len() }

// Get returns the cached result of q over pop.
func (x *Index) Get(q *Query, pop *Population) ([]*Entity, bool) {
	entry, ok := x.results.Get(q.id)
	if !ok || entry.pop != pop {
		x.misses++
		return nil, false
	}
	x.hits++
	entry.shared = true
	return entry.entities, true
}

// Set stores entities as the result of q over pop, replacing any previous entry.
func (x *Index) Set(q *Query, pop *Population, entities []*Entity) {
	members := intmap.NewSet[EntityID](len(entities))
	for _, e := range entities {
		members.Add(e.id)
	}
	x.results.Put(q.id, &cachedResult{
		query:    q,
		pop:      pop,
		entities: entities,
		members:  members,
		shared:   true,
	})
}

// Resolve returns the cached result of q over pop, computing and storing it on a miss.
func (x *Index) Resolve(q *Query, pop *Population) []*Entity {
	if entities, ok := x.Get(q, pop); ok {
		return entities
	}
	entities := q.Filter(pop.entities)
	x.Set(q, pop, entities)
	return entities
}

// Invalidate drops every cached result.
func (x *Index) Invalidate() {
	if x.results.Len() == 0 {
		return
	}
	x.results.Clear()
	x.invalidations++
}

// Update is called whenever e is created, deleted or changes its components.
func (x *Index) Update(e *Entity) {
	if x == nil {
		return
	}

	if x.policy == IndexInvalidateAll {
		x.Invalidate()
		return
	}

	x.results.ForEach(func(_ uint32, entry *cachedResult) bool {
		x.patch(entry, e)
		return true
	})
}

// patch adds or removes e from a cached result so that it again equals
// entry.query.Filter(entry.pop.entities).
func (x *Index) patch(entry *cachedResult, e *Entity) {
	pos, ok := entry.pop.position(e)
	if !ok {
		return
	}

	matched := entry.query.Match(e)
	if matched == entry.members.Has(e.id) {
		return
	}

	if entry.shared {
		entry.entities = slices.Clone(entry.entities)
		entry.shared = false
	}

	if matched {
		at := sort.Search(len(entry.entities), func(i int) bool {
			other, _ := entry.pop.position(entry.entities[i])
			return other > pos
		})
		entry.entities = slices.Insert(entry.entities, at, e)
		entry.members.Add(e.id)
	} else {
		at := sort.Search(len(entry.entities), func(i int) bool {
			other, _ := entry.pop.position(entry.entities[i])
			return other >= pos
		})
		if at < len(entry.entities) && entry.entities[at] == e {
			entry.entities = slices.Delete(entry.entities, at, at+1)
		}
		entry.members.Del(e.id)
	}

	x.incrementalUpdates++
}

// Stats returns a snapshot of the index counters.
func (x *Index) Stats() IndexStats {
	return IndexStats{
		Policy:             x.policy,
		Cached:             x.results.Len(),
		Hits:               x.hits,
		Misses:             x.misses,
		Invalidations:      x.invalidations,
		IncrementalUpdates: x.incrementalUpdates,
	}
}
