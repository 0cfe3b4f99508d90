package event

// Action describes what happened to a key or mouse button. The values
// match the GLFW release/press/repeat constants.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

type base struct {
	window interface{}
}

func (b base) Source() interface{} {
	return b.window
}

// KeyEvent reports a keyboard key changing state. Key, ScanCode and Mods
// carry the raw platform values; the dispatcher treats them as payload.
type KeyEvent struct {
	base
	Key      int
	ScanCode int
	Action   Action
	Mods     int
}

func NewKeyEvent(window interface{}, key, scanCode int, action Action, mods int) *KeyEvent {
	return &KeyEvent{base: base{window: window}, Key: key, ScanCode: scanCode, Action: action, Mods: mods}
}

func (e *KeyEvent) EventType() Type {
	switch e.Action {
	case Press:
		return TypeKeyPressed
	case Repeat:
		return TypeKeyRepeated
	}
	return TypeKeyReleased
}

// MouseButtonEvent reports a mouse button changing state.
type MouseButtonEvent struct {
	base
	Button int
	Action Action
	Mods   int
}

func NewMouseButtonEvent(window interface{}, button int, action Action, mods int) *MouseButtonEvent {
	return &MouseButtonEvent{base: base{window: window}, Button: button, Action: action, Mods: mods}
}

func (e *MouseButtonEvent) EventType() Type {
	if e.Action == Press {
		return TypeMouseButtonPressed
	}
	return TypeMouseButtonReleased
}

// CursorPositionEvent reports the cursor moving to a new position, in
// screen coordinates relative to the window's upper-left corner.
type CursorPositionEvent struct {
	base
	X float64
	Y float64
}

func NewCursorPositionEvent(window interface{}, x, y float64) *CursorPositionEvent {
	return &CursorPositionEvent{base: base{window: window}, X: x, Y: y}
}

func (e *CursorPositionEvent) EventType() Type {
	return TypeCursorMoved
}

// CursorEnterEvent reports the cursor entering or leaving the window's
// content area.
type CursorEnterEvent struct {
	base
	Entered bool
}

func NewCursorEnterEvent(window interface{}, entered bool) *CursorEnterEvent {
	return &CursorEnterEvent{base: base{window: window}, Entered: entered}
}

func (e *CursorEnterEvent) EventType() Type {
	if e.Entered {
		return TypeCursorEntered
	}
	return TypeCursorLeft
}

// ScrollEvent reports scroll wheel or touchpad scroll input.
type ScrollEvent struct {
	base
	XOffset float64
	YOffset float64
}

func NewScrollEvent(window interface{}, xOffset, yOffset float64) *ScrollEvent {
	return &ScrollEvent{base: base{window: window}, XOffset: xOffset, YOffset: yOffset}
}

func (e *ScrollEvent) EventType() Type {
	return TypeScrolled
}

// WindowResizedEvent reports a framebuffer size change from the OS.
type WindowResizedEvent struct {
	base
	Width  uint32
	Height uint32
}

func NewWindowResizedEvent(window interface{}, width, height uint32) *WindowResizedEvent {
	return &WindowResizedEvent{base: base{window: window}, Width: width, Height: height}
}

func (e *WindowResizedEvent) EventType() Type {
	return TypeWindowResized
}

// ConfigChangedEvent reports that a watched configuration file was
// rewritten on disk.
type ConfigChangedEvent struct {
	base
	Path string
}

func NewConfigChangedEvent(path string) *ConfigChangedEvent {
	return &ConfigChangedEvent{Path: path}
}

func (e *ConfigChangedEvent) EventType() Type {
	return TypeConfigChanged
}

// ApplicationQuitEvent asks the engine to shut down on the next frame.
type ApplicationQuitEvent struct {
	base
}

func NewApplicationQuitEvent() *ApplicationQuitEvent {
	return &ApplicationQuitEvent{}
}

func (e *ApplicationQuitEvent) EventType() Type {
	return TypeApplicationQuit
}
