package ecs

import (
	"reflect"
	"strconv"
	"sync"
)

// ComponentType identifies a declared kind of component. Identifiers are
// minted once per declaration, are unique for the lifetime of the process
// and are never reused. The zero value is not a valid type.
type ComponentType uint32

type componentTypeTable struct {
	mu    sync.RWMutex
	next  uint32
	names map[ComponentType]string
}

var componentTypes = &componentTypeTable{
	names: make(map[ComponentType]string),
}

// NewComponentType mints a new component type identifier.
// Two calls with the same name still yield distinct types.
func NewComponentType(name string) ComponentType {
	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()

	componentTypes.next++
	t := ComponentType(componentTypes.next)
	if name == "" {
		name = "component#" + strconv.FormatUint(uint64(t), 10)
	}
	componentTypes.names[t] = name
	return t
}

// String returns the name the type was declared with.
func (t ComponentType) String() string {
	componentTypes.mu.RLock()
	name, ok := componentTypes.names[t]
	componentTypes.mu.RUnlock()
	if !ok {
		return "component#" + strconv.FormatUint(uint64(t), 10)
	}
	return name
}

// Component is a component instance: a type identifier and its payload.
// Systems mutate Data in place; the entity owns the instance.
type Component struct {
	Type ComponentType
	Data any
}

// NewComponent builds an untyped component instance.
func NewComponent(t ComponentType, data any) *Component {
	return &Component{Type: t, Data: data}
}

// ComponentKind is a typed handle over a ComponentType whose payload is a *T.
type ComponentKind[T any] struct {
	typ ComponentType
}

// DefineComponent declares a new component kind with payload type T.
// When name is empty the Go type name of T is used.
func DefineComponent[T any](name string) ComponentKind[T] {
	if name == "" {
		name = reflect.TypeFor[T]().String()
	}
	return ComponentKind[T]{typ: NewComponentType(name)}
}

// Type returns the kind's component type identifier.
func (k ComponentKind[T]) Type() ComponentType { return k.typ }

// Name returns the kind's declared name.
func (k ComponentKind[T]) Name() string { return k.typ.String() }

// New wraps value in a component instance. The payload is stored as a *T
// so that every reader shares and mutates the same value.
func (k ComponentKind[T]) New(value T) *Component {
	data := value
	return &Component{Type: k.typ, Data: &data}
}

// Get returns the entity's payload for this kind.
func (k ComponentKind[T]) Get(e *Entity) (*T, bool) {
	c, ok := e.Component(k.typ)
	if !ok {
		return nil, false
	}
	data, ok := c.Data.(*T)
	return data, ok
}

// MustGet returns the entity's payload for this kind or panics if it is absent.
// Systems whose query requires the kind can rely on it being present.
func (k ComponentKind[T]) MustGet(e *Entity) *T {
	data, ok := k.Get(e)
	if !ok {
		panic("entity " + e.ID().String() + " has no " + k.Name() + " component")
	}
	return data
}

// Has reports whether the entity carries this kind.
func (k ComponentKind[T]) Has(e *Entity) bool { return e.Has(k.typ) }
