package ecs

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/sirupsen/logrus"
)

// World owns entities, the archetype resolver, the query index and the
// scheduler. A World is not safe for concurrent use; all calls, including
// Tick, must come from one goroutine.
type World struct {
	log       *logrus.Entry
	resolver  *Resolver
	index     *Index
	scheduler *Scheduler
	ids       *idAllocator

	entities   *intmap.Map[EntityID, *Entity]
	order      []*Entity
	dead       int
	singletons *intmap.Map[ComponentType, *Component]

	population *Population
	dirty      bool

	nextQueryID uint32
	ticks       uint64
	ticking     bool
	commands    *Commands
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &World{
		log:        cfg.logger,
		resolver:   NewResolver(),
		index:      NewIndex(cfg.policy),
		scheduler:  NewScheduler(cfg.stages...),
		ids:        newIDAllocator(cfg.recycle),
		entities:   intmap.New[EntityID, *Entity](256),
		singletons: intmap.New[ComponentType, *Component](16),
		commands:   newCommands(),
	}

	w.log.WithFields(logrus.Fields{
		"stages":       w.scheduler.Stages(),
		"index_policy": cfg.policy.String(),
		"id_recycling": cfg.recycle,
	}).Debug("world created")

	return w
}

// Resolver returns the world's archetype resolver.
func (w *World) Resolver() *Resolver { return w.resolver }

// Index returns the world's query result index.
func (w *World) Index() *Index { return w.index }

// Scheduler returns the world's system scheduler.
func (w *World) Scheduler() *Scheduler { return w.scheduler }

// NewEntity creates and registers an entity, then attaches components in order.
func (w *World) NewEntity(components ...*Component) *Entity {
	e := newEntity(w.ids.allocate(), w.resolver, w.index)

	w.entities.Put(e.id, e)
	w.order = append(w.order, e)
	w.dirty = true
	w.index.Update(e)

	for _, c := range components {
		e.Add(c)
	}

	if w.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		w.log.WithFields(logrus.Fields{
			"entity":    e.id.String(),
			"archetype": e.archetype.String(),
		}).Trace("entity created")
	}
	return e
}

// DeleteEntity unregisters e. Deleting an entity that is not alive in this
// world is a no-op. The entity keeps its components, and it stays visible to
// the remaining systems of a tick already in progress.
func (w *World) DeleteEntity(e *Entity) {
	if e == nil || !e.alive {
		return
	}
	if live, ok := w.entities.Get(e.id); !ok || live != e {
		return
	}

	w.entities.Del(e.id)
	e.alive = false
	w.dead++
	w.ids.release(e.id)
	w.dirty = true
	w.index.Update(e)

	if w.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		w.log.WithField("entity", e.id.String()).Trace("entity deleted")
	}
}

// Entity looks up a live entity by id.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	return w.entities.Get(id)
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.entities.Len() }

// Entities returns the live entities in creation order.
func (w *World) Entities() []*Entity {
	return slices.Clone(w.currentPopulation().entities)
}

// currentPopulation returns the snapshot of live entities, rebuilding it only
// after entities were created or deleted.
func (w *World) currentPopulation() *Population {
	if w.population != nil && !w.dirty {
		return w.population
	}

	if w.dead > 0 {
		w.order = slices.DeleteFunc(w.order, func(e *Entity) bool { return !e.alive })
		w.dead = 0
	}

	w.population = NewPopulation(slices.Clone(w.order))
	w.dirty = false
	w.index.Invalidate()
	return w.population
}

// QueryAll compiles a query requiring every given type.
func (w *World) QueryAll(types ...ComponentType) *Query {
	return w.QueryFilter(Filter{All: types})
}

// QueryFilter compiles an all/any/none query.
// Panics if the filter introduces more component types than a Mask can hold.
func (w *World) QueryFilter(filter Filter) *Query {
	w.nextQueryID++
	return compileQuery(w.nextQueryID, w.resolver, filter)
}

// Find evaluates q against the current live entities, using the index.
// The result is shared and must not be modified.
// Panics if q was compiled by another World.
func (w *World) Find(q *Query) []*Entity {
	w.mustOwn(q)
	return w.index.Resolve(q, w.currentPopulation())
}

// Owns reports whether q was compiled by w. Masks and cache keys of a
// query are only meaningful in the world that built it.
func (w *World) Owns(q *Query) bool {
	return q != nil && q.resolver == w.resolver
}

func (w *World) mustOwn(q *Query) {
	if q == nil {
		panic("ecs: nil query")
	}
	if !w.Owns(q) {
		panic(fmt.Sprintf("ecs: query %s belongs to another world", q))
	}
}

// RegisterSystem adds a system to the schedule.
func (w *World) RegisterSystem(name string, stage Stage, query *Query, update UpdateFunc) error {
	system, err := NewSystem(name, stage, query, update)
	if err == nil && !w.Owns(query) {
		err = fmt.Errorf("%w: system %q uses a query from another world", ErrInvalidSystem, name)
	}
	if err == nil {
		err = w.scheduler.Add(system)
	}
	if err != nil {
		w.log.WithError(err).WithField("system", name).Error("system rejected")
		return err
	}

	w.log.WithFields(logrus.Fields{
		"system": name,
		"stage":  stage,
		"query":  query.String(),
	}).Debug("system registered")
	return nil
}

// Systems returns the registered systems in execution order.
func (w *World) Systems() []*System {
	return w.scheduler.Schedule()
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 { return w.ticks }

// Tick runs every scheduled system once, in order. The live entities are
// snapshotted once at the start: entities created during the tick are not
// seen by later systems of the same tick, while component changes are.
// Deferred commands are flushed after the last system.
func (w *World) Tick(dt float64) {
	if w.ticking {
		panic("ecs: Tick called while a tick is already running")
	}
	w.ticking = true
	defer func() { w.ticking = false }()

	pop := w.currentPopulation()
	frame := newUpdateFrame(dt, w.ticks, w, w.commands)

	w.scheduler.execute(frame, func(q *Query) []*Entity {
		w.mustOwn(q)
		return w.index.Resolve(q, pop)
	})

	frame.Commands.Flush(w)
	w.ticks++
}

// Run ticks the world at the given interval until the context is cancelled.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			w.Tick(dt)
		}
	}
}
