package ecs

import (
	"fmt"
	"slices"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Stages          []Stage
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	LastEntities   int
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	lastEntities   int
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler keeps systems bucketed by stage and derives one flattened
// execution order: stage order first, then registration order.
type Scheduler struct {
	stages   []Stage
	buckets  map[Stage][]*System
	schedule []*System
	stats    map[*System]*systemStatsInternal
}

// NewScheduler creates a scheduler running the given stages in order.
// With no stages the DefaultStages order is used. Repeated stages are ignored.
func NewScheduler(stages ...Stage) *Scheduler {
	if len(stages) == 0 {
		stages = DefaultStages()
	}

	s := &Scheduler{
		buckets: make(map[Stage][]*System, len(stages)),
		stats:   make(map[*System]*systemStatsInternal),
	}
	for _, stage := range stages {
		if _, ok := s.buckets[stage]; ok {
			continue
		}
		s.stages = append(s.stages, stage)
		s.buckets[stage] = nil
	}
	return s
}

// Stages returns the stage order.
func (s *Scheduler) Stages() []Stage {
	return slices.Clone(s.stages)
}

// HasStage reports whether stage is part of the stage order.
func (s *Scheduler) HasStage(stage Stage) bool {
	_, ok := s.buckets[stage]
	return ok
}

// Add appends system to its stage and recomputes the schedule.
// Systems naming an unknown stage are rejected with ErrUnknownStage.
func (s *Scheduler) Add(system *System) error {
	bucket, ok := s.buckets[system.stage]
	if !ok {
		return fmt.Errorf("%w %q for system %q", ErrUnknownStage, system.stage, system.name)
	}

	s.buckets[system.stage] = append(bucket, system)
	s.stats[system] = &systemStatsInternal{
		minDuration: time.Duration(1<<63 - 1),
	}
	s.order()
	return nil
}

func (s *Scheduler) order() {
	schedule := make([]*System, 0, len(s.schedule)+1)
	for _, stage := range s.stages {
		schedule = append(schedule, s.buckets[stage]...)
	}
	s.schedule = schedule
}

// Schedule returns the systems in execution order.
func (s *Scheduler) Schedule() []*System {
	return slices.Clone(s.schedule)
}

// Len returns the number of scheduled systems.
func (s *Scheduler) Len() int { return len(s.schedule) }

// execute runs every scheduled system once. Systems registered while the
// schedule is running take effect on the next call.
func (s *Scheduler) execute(frame *UpdateFrame, resolve func(*Query) []*Entity) {
	for _, system := range s.schedule {
		entities := resolve(system.query)

		start := time.Now()
		system.update(frame, entities)
		duration := time.Since(start)

		stats := s.stats[system]
		stats.executionCount++
		stats.lastEntities = len(entities)
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// GetStats returns statistics about system execution, in schedule order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Stages:      s.Stages(),
		SystemCount: len(s.schedule),
		Systems:     make([]SystemStats, len(s.schedule)),
	}

	var totalExecs int64
	for i, system := range s.schedule {
		internal := s.stats[system]

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           system.name,
			Stage:          system.stage,
			ExecutionCount: internal.executionCount,
			LastEntities:   internal.lastEntities,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
