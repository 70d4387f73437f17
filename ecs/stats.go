package ecs

import (
	"cmp"
	"slices"
)

// WorldStats is a point-in-time summary of a world.
type WorldStats struct {
	EntityCount        int
	ComponentTypeCount int
	ArchetypeCount     int
	SingletonCount     int
	Ticks              uint64
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []ComponentType
	Index              IndexStats
	Scheduler          *SchedulerStats
}

// ArchetypeStats counts the live entities sharing one archetype.
type ArchetypeStats struct {
	Archetype      Mask
	ComponentTypes []ComponentType
	EntityCount    int
}

// CollectStats gathers statistics about the world's entities, index and systems.
func (w *World) CollectStats() *WorldStats {
	counts := make(map[Mask]int)
	w.entities.ForEach(func(_ EntityID, e *Entity) bool {
		counts[e.archetype]++
		return true
	})

	breakdown := make([]ArchetypeStats, 0, len(counts))
	for archetype, count := range counts {
		breakdown = append(breakdown, ArchetypeStats{
			Archetype:      archetype,
			ComponentTypes: w.resolver.Describe(archetype),
			EntityCount:    count,
		})
	}
	slices.SortFunc(breakdown, func(a, b ArchetypeStats) int {
		if c := cmp.Compare(b.EntityCount, a.EntityCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Archetype, b.Archetype)
	})

	singletons := w.SingletonTypes()
	slices.Sort(singletons)

	return &WorldStats{
		EntityCount:        w.entities.Len(),
		ComponentTypeCount: w.resolver.Len(),
		ArchetypeCount:     len(breakdown),
		SingletonCount:     w.singletons.Len(),
		Ticks:              w.ticks,
		ArchetypeBreakdown: breakdown,
		SingletonTypes:     singletons,
		Index:              w.index.Stats(),
		Scheduler:          w.scheduler.GetStats(),
	}
}
