// Package event implements the engine's publish/subscribe core: a closed
// set of input event kinds, explicit handler registration with receiver
// tuples, and a dispatcher that fires events to matching receivers in a
// dependency-respecting handler order.
package event

// Type tags an event kind. The set is closed; receivers subscribe to tags
// and matching is a plain tag comparison.
type Type int

const (
	TypeKeyPressed Type = iota
	TypeKeyReleased
	TypeKeyRepeated
	TypeMouseButtonPressed
	TypeMouseButtonReleased
	TypeCursorMoved
	TypeCursorEntered
	TypeCursorLeft
	TypeScrolled
	TypeWindowResized
	TypeConfigChanged
	TypeApplicationQuit
)

func (t Type) String() string {
	switch t {
	case TypeKeyPressed:
		return "key-pressed"
	case TypeKeyReleased:
		return "key-released"
	case TypeKeyRepeated:
		return "key-repeated"
	case TypeMouseButtonPressed:
		return "mouse-button-pressed"
	case TypeMouseButtonReleased:
		return "mouse-button-released"
	case TypeCursorMoved:
		return "cursor-moved"
	case TypeCursorEntered:
		return "cursor-entered"
	case TypeCursorLeft:
		return "cursor-left"
	case TypeScrolled:
		return "scrolled"
	case TypeWindowResized:
		return "window-resized"
	case TypeConfigChanged:
		return "config-changed"
	case TypeApplicationQuit:
		return "application-quit"
	}
	return "unknown"
}

// Event is an immutable value created by a producer at the moment of
// occurrence and consumed synchronously by dispatch. Source is the
// originating window, if any; the dispatcher never inspects it.
type Event interface {
	EventType() Type
	Source() interface{}
}

// Result is the continuation verdict returned by a receiver. Break stops
// the remainder of the dispatch pass; Continue lets it proceed.
type Result int

const (
	Continue Result = iota
	Break
)
