package ecs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/maskecs/ecs"
)

var indexPolicies = []ecs.IndexPolicy{ecs.IndexIncremental, ecs.IndexInvalidateAll}

func TestIndexPolicyString(t *testing.T) {
	assert.Equal(t, "incremental", ecs.IndexIncremental.String())
	assert.Equal(t, "invalidate-all", ecs.IndexInvalidateAll.String())
	assert.Equal(t, "unknown", ecs.IndexPolicy(42).String())
}

func TestParseIndexPolicy(t *testing.T) {
	for _, policy := range indexPolicies {
		parsed, err := ecs.ParseIndexPolicy(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	_, err := ecs.ParseIndexPolicy("sometimes")
	assert.ErrorIs(t, err, ecs.ErrUnknownIndexPolicy)
}

func TestIndexGetSet(t *testing.T) {
	world := ecs.NewWorld()
	a := world.NewEntity(PositionKind.New(Position{}))
	b := world.NewEntity(HealthKind.New(Health{}))
	q := world.QueryAll(PositionKind.Type())

	index := ecs.NewIndex(ecs.IndexInvalidateAll)
	pop := ecs.NewPopulation([]*ecs.Entity{a, b})
	assert.Equal(t, 2, pop.Len())
	assert.True(t, pop.Contains(a))

	_, ok := index.Get(q, pop)
	assert.False(t, ok)

	index.Set(q, pop, []*ecs.Entity{a})
	cached, ok := index.Get(q, pop)
	require.True(t, ok)
	assert.Equal(t, []*ecs.Entity{a}, cached)
	assert.Equal(t, 1, index.Len())

	other := ecs.NewPopulation([]*ecs.Entity{a})
	_, ok = index.Get(q, other)
	assert.False(t, ok, "results are bound to the population they were computed from")

	index.Update(a)
	_, ok = index.Get(q, pop)
	assert.False(t, ok)
	assert.Equal(t, 0, index.Len())

	stats := index.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(3), stats.Misses)
	assert.Equal(t, uint64(1), stats.Invalidations)
}

func TestIndexResolveSharesResult(t *testing.T) {
	for _, policy := range indexPolicies {
		t.Run(policy.String(), func(t *testing.T) {
			world := ecs.NewWorld(ecs.WithIndexPolicy(policy))
			world.NewEntity(PositionKind.New(Position{}))
			world.NewEntity(PositionKind.New(Position{}))
			q := world.QueryAll(PositionKind.Type())

			first := world.Find(q)
			second := world.Find(q)
			require.Len(t, first, 2)
			assert.Same(t, &first[0], &second[0])

			stats := world.Index().Stats()
			assert.Equal(t, uint64(1), stats.Misses)
			assert.Equal(t, uint64(1), stats.Hits)
		})
	}
}

func TestIndexReflectsMutations(t *testing.T) {
	for _, policy := range indexPolicies {
		t.Run(policy.String(), func(t *testing.T) {
			world := ecs.NewWorld(ecs.WithIndexPolicy(policy))
			a := world.NewEntity(PositionKind.New(Position{}), HealthKind.New(Health{}))
			b := world.NewEntity(PositionKind.New(Position{}))
			c := world.NewEntity(PositionKind.New(Position{}), HealthKind.New(Health{}))
			q := world.QueryAll(PositionKind.Type(), HealthKind.Type())

			before := world.Find(q)
			assert.Equal(t, []*ecs.Entity{a, c}, before)

			b.Add(HealthKind.New(Health{}))
			assert.Equal(t, []*ecs.Entity{a, b, c}, world.Find(q), "insertions keep creation order")
			assert.Equal(t, []*ecs.Entity{a, c}, before, "a handed out result never changes")

			a.Remove(HealthKind.Type())
			assert.Equal(t, []*ecs.Entity{b, c}, world.Find(q))

			d := world.NewEntity(PositionKind.New(Position{}), HealthKind.New(Health{}))
			assert.Equal(t, []*ecs.Entity{b, c, d}, world.Find(q))

			world.DeleteEntity(c)
			assert.Equal(t, []*ecs.Entity{b, d}, world.Find(q))
		})
	}
}

func TestIndexIncrementalPatchesInPlace(t *testing.T) {
	world := ecs.NewWorld(ecs.WithIndexPolicy(ecs.IndexIncremental))
	a := world.NewEntity(PositionKind.New(Position{}))
	world.NewEntity(HealthKind.New(Health{}))
	q := world.QueryAll(PositionKind.Type())
	world.Find(q)

	a.Add(HealthKind.New(Health{}))
	a.Remove(PositionKind.Type())
	a.Add(PositionKind.New(Position{}))

	stats := world.Index().Stats()
	assert.Equal(t, uint64(2), stats.IncrementalUpdates, "adding Health does not change membership")
	assert.Equal(t, 1, stats.Cached)
	assert.Equal(t, []*ecs.Entity{a}, world.Find(q))
	assert.Equal(t, uint64(1), world.Index().Stats().Hits)
}

func TestIndexInvalidateAllClears(t *testing.T) {
	world := ecs.NewWorld(ecs.WithIndexPolicy(ecs.IndexInvalidateAll))
	a := world.NewEntity(PositionKind.New(Position{}))
	q := world.QueryAll(PositionKind.Type())
	world.Find(q)

	a.Add(HealthKind.New(Health{}))
	assert.Equal(t, 0, world.Index().Len())
	assert.Equal(t, []*ecs.Entity{a}, world.Find(q))
}

// After any sequence of mutations every cached query equals a fresh filter
// over the live entities.
func TestIndexMatchesGroundTruth(t *testing.T) {
	types := []ecs.ComponentType{
		PositionKind.Type(),
		VelocityKind.Type(),
		HealthKind.Type(),
		FrozenKind.Type(),
	}

	for _, policy := range indexPolicies {
		t.Run(policy.String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(7, 11))
			world := ecs.NewWorld(ecs.WithIndexPolicy(policy))

			queries := []*ecs.Query{
				world.QueryAll(PositionKind.Type()),
				world.QueryAll(PositionKind.Type(), VelocityKind.Type()),
				world.QueryFilter(ecs.Filter{Any: []ecs.ComponentType{HealthKind.Type(), FrozenKind.Type()}}),
				world.QueryFilter(ecs.Filter{
					All:  []ecs.ComponentType{PositionKind.Type()},
					None: []ecs.ComponentType{FrozenKind.Type()},
				}),
				world.QueryFilter(ecs.Filter{}),
			}

			for i := 0; i < 20; i++ {
				world.NewEntity(ecs.NewComponent(types[rng.IntN(len(types))], nil))
			}

			for step := 0; step < 500; step++ {
				live := world.Entities()
				switch op := rng.IntN(10); {
				case op == 0 || len(live) == 0:
					world.NewEntity(ecs.NewComponent(types[rng.IntN(len(types))], nil))
				case op == 1:
					world.DeleteEntity(live[rng.IntN(len(live))])
				case op < 6:
					live[rng.IntN(len(live))].Add(ecs.NewComponent(types[rng.IntN(len(types))], step))
				default:
					live[rng.IntN(len(live))].Remove(types[rng.IntN(len(types))])
				}

				// Only read some queries each step so cached entries of
				// different ages coexist.
				for i, q := range queries {
					if (step+i)%2 == 0 {
						continue
					}
					require.Equal(t, ids(q.Filter(world.Entities())), ids(world.Find(q)), "policy %s step %d query %s", policy, step, q)
				}
			}
		})
	}
}

func TestIndexStatsHitRatio(t *testing.T) {
	assert.Equal(t, 0.0, ecs.IndexStats{}.HitRatio())
	assert.Equal(t, 0.75, ecs.IndexStats{Hits: 3, Misses: 1}.HitRatio())
}
