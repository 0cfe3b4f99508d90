package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a native GLFW window. Events carry their originating
// Window as an opaque source; the dispatcher never inspects it.
type Window struct {
	glfwWindow *glfw.Window
	title      string
	width      uint32
	height     uint32
}

// All created windows which haven't been destroyed yet, keyed by their
// native handle. Touched only from the main thread that owns GLFW.
var windows = make(map[*glfw.Window]*Window)

// LookupWindow resolves a native handle back to its Window wrapper, or
// nil when the handle is unknown.
func LookupWindow(handle *glfw.Window) *Window {
	return windows[handle]
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) Size() (uint32, uint32) {
	return w.width, w.height
}

func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose flags the window to close on the next poll.
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

func (w *Window) destroy() {
	delete(windows, w.glfwWindow)
	w.glfwWindow.Destroy()
}
