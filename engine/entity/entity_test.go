package entity

import (
	"testing"

	"github.com/google/uuid"
)

const (
	kindPosition Kind = "position"
	kindVelocity Kind = "velocity"
)

type position struct {
	x, y float64
}

func (position) Kind() Kind { return kindPosition }

type velocity struct {
	dx, dy float64
}

func (velocity) Kind() Kind { return kindVelocity }

func TestEntityAddAndQuery(t *testing.T) {
	e := New()
	e.AddComponent(position{x: 1, y: 2})

	if !e.HasComponent(kindPosition) {
		t.Error("expected entity to carry a position component")
	}
	if e.HasComponent(kindVelocity) {
		t.Error("expected entity not to carry a velocity component")
	}

	c, ok := e.Component(kindPosition)
	if !ok {
		t.Fatal("expected position component to be present")
	}
	if p := c.(position); p.x != 1 || p.y != 2 {
		t.Errorf("expected position {1 2}, got %+v", p)
	}
}

func TestEntityDuplicateAddIsNoOp(t *testing.T) {
	e := New()
	e.AddComponent(position{x: 1, y: 2})
	e.AddComponent(position{x: 9, y: 9})

	if got := len(e.Components()); got != 1 {
		t.Fatalf("expected exactly one component, got %d", got)
	}
	c, _ := e.Component(kindPosition)
	if p := c.(position); p.x != 1 {
		t.Errorf("expected the first add to win, got %+v", p)
	}
}

func TestEntityRemoveComponent(t *testing.T) {
	e := New()
	e.AddComponent(velocity{dx: 3})
	e.RemoveComponent(kindVelocity)

	if e.HasComponent(kindVelocity) {
		t.Error("expected velocity component to be removed")
	}
	// Removing an absent kind is fine.
	e.RemoveComponent(kindPosition)
}

func TestNilEntityReportsNothing(t *testing.T) {
	var e *Entity

	if e.HasComponent(kindPosition) {
		t.Error("expected nil entity to report no components")
	}
	if _, ok := e.Component(kindPosition); ok {
		t.Error("expected nil entity to return no component")
	}
	if e.Components() != nil {
		t.Error("expected nil entity to return no component list")
	}
}

func TestNilEntityIgnoresMutation(t *testing.T) {
	var e *Entity

	e.AddComponent(position{})
	e.RemoveComponent(kindPosition)

	if e.HasComponent(kindPosition) {
		t.Error("expected mutation of the nil entity to be discarded")
	}
}

func TestEntityIdentity(t *testing.T) {
	a := New()
	b := New()
	if a.ID() == b.ID() {
		t.Error("expected distinct entities to have distinct ids")
	}
	var nilEntity *Entity
	if nilEntity.ID() != uuid.Nil {
		t.Error("expected nil entity to have the zero id")
	}
}
