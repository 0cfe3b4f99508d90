// Package input tracks keyboard and mouse state from the events the
// platform layer fires. It is itself an event handler: registering its
// Handler on the dispatcher is all the wiring it needs.
package input

import (
	"github.com/ombralabs/ombra/engine/entity"
	"github.com/ombralabs/ombra/engine/event"
)

// HandlerName is the stable identifier game handlers can order themselves
// against, e.g. event.NewHandler("movement").After(input.HandlerName).
const HandlerName = "input"

// maxKeys is sized for the raw GLFW key range.
const maxKeys = 512

// maxButtons is sized for the raw GLFW mouse button range.
const maxButtons = 8

type keyboardState struct {
	keys [maxKeys]bool
}

type mouseState struct {
	x       float64
	y       float64
	buttons [maxButtons]bool
}

// System holds the current and previous frame's input state. Update rolls
// current into previous; the event receivers keep current fresh.
type System struct {
	keyboardCurrent  keyboardState
	keyboardPrevious keyboardState
	mouseCurrent     mouseState
	mousePrevious    mouseState
}

func New() *System {
	return &System{}
}

// Handler returns the event handler that feeds the system. Its receivers
// carry no component filter; device input is not bound to an entity yet.
func (s *System) Handler() *event.Handler {
	return event.NewHandler(HandlerName).
		Receive(s.onKey, event.TypeKeyPressed, event.TypeKeyReleased).
		Receive(s.onMouseButton, event.TypeMouseButtonPressed, event.TypeMouseButtonReleased).
		Receive(s.onCursorMoved, event.TypeCursorMoved)
}

// Update copies current states to previous states. Call once per frame,
// after the game update.
func (s *System) Update(deltaTime float64) {
	s.keyboardPrevious = s.keyboardCurrent
	s.mousePrevious = s.mouseCurrent
}

func (s *System) onKey(ev event.Event, target *entity.Entity) event.Result {
	ke, ok := ev.(*event.KeyEvent)
	if !ok || ke.Key < 0 || ke.Key >= maxKeys {
		return event.Continue
	}
	s.keyboardCurrent.keys[ke.Key] = ke.Action == event.Press
	return event.Continue
}

func (s *System) onMouseButton(ev event.Event, target *entity.Entity) event.Result {
	be, ok := ev.(*event.MouseButtonEvent)
	if !ok || be.Button < 0 || be.Button >= maxButtons {
		return event.Continue
	}
	s.mouseCurrent.buttons[be.Button] = be.Action == event.Press
	return event.Continue
}

func (s *System) onCursorMoved(ev event.Event, target *entity.Entity) event.Result {
	ce, ok := ev.(*event.CursorPositionEvent)
	if !ok {
		return event.Continue
	}
	s.mouseCurrent.x = ce.X
	s.mouseCurrent.y = ce.Y
	return event.Continue
}

// keyboard queries

func (s *System) IsKeyDown(key int) bool {
	if key < 0 || key >= maxKeys {
		return false
	}
	return s.keyboardCurrent.keys[key]
}

func (s *System) IsKeyUp(key int) bool {
	return !s.IsKeyDown(key)
}

func (s *System) WasKeyDown(key int) bool {
	if key < 0 || key >= maxKeys {
		return false
	}
	return s.keyboardPrevious.keys[key]
}

func (s *System) WasKeyUp(key int) bool {
	return !s.WasKeyDown(key)
}

// mouse queries

func (s *System) IsButtonDown(button int) bool {
	if button < 0 || button >= maxButtons {
		return false
	}
	return s.mouseCurrent.buttons[button]
}

func (s *System) WasButtonDown(button int) bool {
	if button < 0 || button >= maxButtons {
		return false
	}
	return s.mousePrevious.buttons[button]
}

func (s *System) CursorPosition() (float64, float64) {
	return s.mouseCurrent.x, s.mouseCurrent.y
}

func (s *System) PreviousCursorPosition() (float64, float64) {
	return s.mousePrevious.x, s.mousePrevious.y
}
