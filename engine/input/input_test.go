package input

import (
	"testing"

	"github.com/ombralabs/ombra/engine/event"
)

func newWiredSystem(t *testing.T) (*System, *event.Dispatcher) {
	t.Helper()
	s := New()
	d := event.NewDispatcher()
	if err := d.Register(s.Handler()); err != nil {
		t.Fatalf("expected input handler to register, got %v", err)
	}
	return s, d
}

func TestKeyStateFollowsEvents(t *testing.T) {
	s, d := newWiredSystem(t)

	const keyW = 87

	if s.IsKeyDown(keyW) {
		t.Error("expected key to start up")
	}

	d.Fire(event.NewKeyEvent(nil, keyW, 0, event.Press, 0))
	if !s.IsKeyDown(keyW) {
		t.Error("expected key to be down after a press event")
	}

	d.Fire(event.NewKeyEvent(nil, keyW, 0, event.Release, 0))
	if s.IsKeyDown(keyW) {
		t.Error("expected key to be up after a release event")
	}
}

func TestPreviousFrameState(t *testing.T) {
	s, d := newWiredSystem(t)

	const keySpace = 32

	d.Fire(event.NewKeyEvent(nil, keySpace, 0, event.Press, 0))
	if s.WasKeyDown(keySpace) {
		t.Error("expected previous frame state to lag behind")
	}

	s.Update(0.016)
	if !s.WasKeyDown(keySpace) {
		t.Error("expected previous frame state to catch up after Update")
	}
}

func TestMouseStateFollowsEvents(t *testing.T) {
	s, d := newWiredSystem(t)

	d.Fire(event.NewMouseButtonEvent(nil, 0, event.Press, 0))
	if !s.IsButtonDown(0) {
		t.Error("expected button 0 to be down")
	}

	d.Fire(event.NewCursorPositionEvent(nil, 120.5, 64.25))
	x, y := s.CursorPosition()
	if x != 120.5 || y != 64.25 {
		t.Errorf("expected cursor at (120.5, 64.25), got (%v, %v)", x, y)
	}

	d.Fire(event.NewMouseButtonEvent(nil, 0, event.Release, 0))
	if s.IsButtonDown(0) {
		t.Error("expected button 0 to be up after release")
	}
}

func TestOutOfRangeInputIsIgnored(t *testing.T) {
	s, d := newWiredSystem(t)

	d.Fire(event.NewKeyEvent(nil, maxKeys+10, 0, event.Press, 0))
	d.Fire(event.NewMouseButtonEvent(nil, maxButtons+1, event.Press, 0))

	if s.IsKeyDown(maxKeys + 10) {
		t.Error("expected out of range key query to report up")
	}
	if s.IsButtonDown(maxButtons + 1) {
		t.Error("expected out of range button query to report up")
	}
}
