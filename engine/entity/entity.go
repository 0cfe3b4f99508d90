// Package entity provides the component store the event dispatcher filters
// against. An entity carries at most one component per kind; receivers
// declare the kinds a target entity must carry before they fire.
package entity

import (
	"github.com/google/uuid"
)

// Kind identifies a concrete component type. Game code defines its own
// kinds; the engine only compares them.
type Kind string

// Component is a typed capability or data fragment attached to an entity.
type Component interface {
	Kind() Kind
}

// Entity owns an unordered collection of components, at most one per kind.
//
// A nil *Entity is valid and stands in for "no specific target": it reports
// no components and silently ignores mutation. Events fired without a target
// entity are dispatched against the nil entity.
type Entity struct {
	id         uuid.UUID
	components map[Kind]Component
}

func New() *Entity {
	return &Entity{
		id:         uuid.New(),
		components: make(map[Kind]Component),
	}
}

// ID returns the unique identifier of the entity, or the zero UUID for
// the nil entity.
func (e *Entity) ID() uuid.UUID {
	if e == nil {
		return uuid.Nil
	}
	return e.id
}

// HasComponent reports whether the entity carries a component of the
// given kind.
func (e *Entity) HasComponent(kind Kind) bool {
	if e == nil {
		return false
	}
	_, ok := e.components[kind]
	return ok
}

// Component returns the component of the given kind, if present.
func (e *Entity) Component(kind Kind) (Component, bool) {
	if e == nil {
		return nil, false
	}
	c, ok := e.components[kind]
	return c, ok
}

// AddComponent attaches a component. Adding a component of a kind the
// entity already carries is a no-op.
func (e *Entity) AddComponent(component Component) {
	if e == nil || component == nil {
		return
	}
	if _, ok := e.components[component.Kind()]; ok {
		return
	}
	e.components[component.Kind()] = component
}

// RemoveComponent detaches the component of the given kind, if present.
func (e *Entity) RemoveComponent(kind Kind) {
	if e == nil {
		return
	}
	delete(e.components, kind)
}

// Components returns a copy of the attached components, in no particular
// order.
func (e *Entity) Components() []Component {
	if e == nil {
		return nil
	}
	components := make([]Component, 0, len(e.components))
	for _, c := range e.components {
		components = append(components, c)
	}
	return components
}
