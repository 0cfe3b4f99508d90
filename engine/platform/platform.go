// Package platform owns the native windowing layer. Its input callbacks
// are the producer boundary of the event core: each one constructs an
// event value and fires it on the dispatcher handed to Startup.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ombralabs/ombra/engine/core"
	"github.com/ombralabs/ombra/engine/event"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window     *Window
	dispatcher *event.Dispatcher
}

func New(dispatcher *event.Dispatcher) *Platform {
	return &Platform{
		dispatcher: dispatcher,
	}
}

func (p *Platform) Startup(applicationName string, x, y, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	glfwWindow, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		return err
	}
	p.Window = &Window{
		glfwWindow: glfwWindow,
		title:      applicationName,
		width:      width,
		height:     height,
	}
	windows[glfwWindow] = p.Window

	glfwWindow.SetKeyCallback(p.keyCallback)
	glfwWindow.SetMouseButtonCallback(p.mouseButtonCallback)
	glfwWindow.SetCursorPosCallback(p.cursorPosCallback)
	glfwWindow.SetCursorEnterCallback(p.cursorEnterCallback)
	glfwWindow.SetScrollCallback(p.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	glfwWindow.SetPos(int(x), int(y))
	glfwWindow.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PumpMessages processes pending native events, which invokes the
// callbacks below on the calling thread.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	p.dispatcher.Fire(event.NewKeyEvent(LookupWindow(w), int(key), scancode, event.Action(action), int(mods)))
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	p.dispatcher.Fire(event.NewMouseButtonEvent(LookupWindow(w), int(button), event.Action(action), int(mods)))
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.dispatcher.Fire(event.NewCursorPositionEvent(LookupWindow(w), xpos, ypos))
}

func (p *Platform) cursorEnterCallback(w *glfw.Window, entered bool) {
	p.dispatcher.Fire(event.NewCursorEnterEvent(LookupWindow(w), entered))
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.dispatcher.Fire(event.NewScrollEvent(LookupWindow(w), xoff, yoff))
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	window := LookupWindow(w)
	if window != nil {
		window.width = uint32(width)
		window.height = uint32(height)
	}
	p.dispatcher.Fire(event.NewWindowResizedEvent(window, uint32(width), uint32(height)))
}
