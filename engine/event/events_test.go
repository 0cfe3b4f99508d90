package event

import "testing"

func TestKeyEventTagFollowsAction(t *testing.T) {
	cases := []struct {
		action Action
		want   Type
	}{
		{Press, TypeKeyPressed},
		{Release, TypeKeyReleased},
		{Repeat, TypeKeyRepeated},
	}
	for _, c := range cases {
		ev := NewKeyEvent(nil, 65, 0, c.action, 0)
		if got := ev.EventType(); got != c.want {
			t.Errorf("action %d: expected %s, got %s", c.action, c.want, got)
		}
	}
}

func TestCursorEnterEventTag(t *testing.T) {
	if got := NewCursorEnterEvent(nil, true).EventType(); got != TypeCursorEntered {
		t.Errorf("expected %s, got %s", TypeCursorEntered, got)
	}
	if got := NewCursorEnterEvent(nil, false).EventType(); got != TypeCursorLeft {
		t.Errorf("expected %s, got %s", TypeCursorLeft, got)
	}
}

func TestEventCarriesSource(t *testing.T) {
	src := &struct{ name string }{name: "window"}
	ev := NewScrollEvent(src, 0, 1)
	if ev.Source() != src {
		t.Error("expected the event to carry its originating window")
	}
	if NewApplicationQuitEvent().Source() != nil {
		t.Error("expected an event without a window to report a nil source")
	}
}
