package engine

import (
	"github.com/ombralabs/ombra/engine/event"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

// Initialize is called once after the engine subsystems are up. The
// dispatcher is handed over so the game can register its event handlers.
type Initialize func(dispatcher *event.Dispatcher) error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
