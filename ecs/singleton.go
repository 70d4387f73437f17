package ecs

// Singleton provides access to a single component instance that is not
// associated with any entity. Use this for global game state, input state,
// configuration, or other singleton data. Singletons never take part in
// archetypes or queries.
type Singleton[T any] struct {
	world *World
	kind  ComponentKind[T]
}

// NewSingleton creates a Singleton accessor for kind in world.
// If the singleton does not exist yet it is created from the initializer,
// or from the zero value of T. This guarantees the singleton exists after the call.
func NewSingleton[T any](world *World, kind ComponentKind[T], initializer ...T) *Singleton[T] {
	s := &Singleton[T]{world: world, kind: kind}
	if !s.Exists() {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.SetSingleton(kind.New(value))
	}
	return s
}

// Get returns a pointer to the singleton value currently stored in the
// world, or nil if it was removed.
func (s *Singleton[T]) Get() *T {
	c, ok := s.world.Singleton(s.kind.Type())
	if !ok {
		return nil
	}
	ptr, _ := c.Data.(*T)
	return ptr
}

// Exists reports whether the singleton is present in the world.
func (s *Singleton[T]) Exists() bool {
	_, ok := s.world.Singleton(s.kind.Type())
	return ok
}

// SetSingleton stores c as the world's singleton for c.Type, replacing any previous one.
func (w *World) SetSingleton(c *Component) {
	w.singletons.Put(c.Type, c)
}

// Singleton returns the world's singleton of type t.
func (w *World) Singleton(t ComponentType) (*Component, bool) {
	return w.singletons.Get(t)
}

// RemoveSingleton deletes the singleton of type t.
func (w *World) RemoveSingleton(t ComponentType) {
	w.singletons.Del(t)
}

// SingletonTypes returns the types of all stored singletons.
func (w *World) SingletonTypes() []ComponentType {
	out := make([]ComponentType, 0, w.singletons.Len())
	for t := range w.singletons.Keys() {
		out = append(out, t)
	}
	return out
}
