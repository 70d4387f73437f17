package ecs

import "fmt"

// Stage names a phase of a tick. Systems run stage by stage in the
// scheduler's stage order, and in registration order within a stage.
type Stage string

const (
	StageInit       Stage = "INIT"
	StagePostInit   Stage = "POSTINIT"
	StagePreUpdate  Stage = "PREUPDATE"
	StageUpdate     Stage = "UPDATE"
	StagePostUpdate Stage = "POSTUPDATE"
	StagePreRender  Stage = "PRERENDER"
	StageRender     Stage = "RENDER"
)

// DefaultStages returns the default stage order.
func DefaultStages() []Stage {
	return []Stage{
		StageInit,
		StagePostInit,
		StagePreUpdate,
		StageUpdate,
		StagePostUpdate,
		StagePreRender,
		StageRender,
	}
}

// UpdateFunc is a system's per-tick routine. entities holds the tick's
// entities matching the system's query; it is shared with other readers of
// the same query and must not be modified.
type UpdateFunc func(frame *UpdateFrame, entities []*Entity)

// System is a named, staged pairing of a query and an update routine.
type System struct {
	name   string
	stage  Stage
	query  *Query
	update UpdateFunc
}

// NewSystem validates and builds a system.
func NewSystem(name string, stage Stage, query *Query, update UpdateFunc) (*System, error) {
	if query == nil {
		return nil, fmt.Errorf("%w: system %q has no query", ErrInvalidSystem, name)
	}
	if update == nil {
		return nil, fmt.Errorf("%w: system %q has no update function", ErrInvalidSystem, name)
	}
	return &System{
		name:   name,
		stage:  stage,
		query:  query,
		update: update,
	}, nil
}

// Name returns the system's name.
func (s *System) Name() string { return s.name }

// Stage returns the stage the system runs in.
func (s *System) Stage() Stage { return s.stage }

// Query returns the system's query.
func (s *System) Query() *Query { return s.query }
