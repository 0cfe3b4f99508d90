package engine

import (
	"fmt"

	"github.com/ombralabs/ombra/engine/config"
	"github.com/ombralabs/ombra/engine/core"
	"github.com/ombralabs/ombra/engine/entity"
	"github.com/ombralabs/ombra/engine/event"
	"github.com/ombralabs/ombra/engine/input"
	"github.com/ombralabs/ombra/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Escape key in the raw platform key range.
const keyEscape = 256

// Engine owns the dispatcher, the platform layer and the frame loop. It
// is constructed once by the application root; there is no global engine
// state.
type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	dispatcher    *event.Dispatcher
	platform      *platform.Platform
	inputSystem   *input.System
	configWatcher *config.Watcher
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.Metrics
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game instance with an application config is required")
	}
	d := event.NewDispatcher()
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		dispatcher:   d,
		platform:     platform.New(d),
		inputSystem:  input.New(),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		isRunning:    false,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	cfg := e.gameInstance.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}

	// The input system is the first handler in the graph; game handlers
	// order themselves after it by name.
	if err := e.dispatcher.Register(e.inputSystem.Handler()); err != nil {
		return err
	}
	if err := e.dispatcher.Register(e.controlHandler()); err != nil {
		return err
	}

	if cfg.ConfigPath != "" {
		watcher, err := config.NewWatcher(cfg.ConfigPath, e.dispatcher)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		e.configWatcher = watcher
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.dispatcher); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized")
	return nil
}

// controlHandler reacts to engine-level events: shutdown requests, the
// Escape shortcut and window resizes.
func (e *Engine) controlHandler() *event.Handler {
	return event.NewHandler("engine-control").
		After(input.HandlerName).
		Receive(e.onQuit, event.TypeApplicationQuit).
		Receive(e.onKey, event.TypeKeyPressed).
		Receive(e.onResized, event.TypeWindowResized)
}

func (e *Engine) onQuit(ev event.Event, target *entity.Entity) event.Result {
	core.LogInfo("application quit requested, shutting down on next frame")
	e.isRunning = false
	return event.Break
}

func (e *Engine) onKey(ev event.Event, target *entity.Entity) event.Result {
	if ke, ok := ev.(*event.KeyEvent); ok && ke.Key == keyEscape {
		e.dispatcher.Fire(event.NewApplicationQuitEvent())
	}
	return event.Continue
}

func (e *Engine) onResized(ev event.Event, target *entity.Entity) event.Result {
	re, ok := ev.(*event.WindowResizedEvent)
	if !ok {
		return event.Continue
	}
	if re.Width == e.width && re.Height == e.height {
		return event.Continue
	}
	e.width = re.Width
	e.height = re.Height

	// A zero size means the window was minimized; suspend until restored.
	if re.Width == 0 || re.Height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return event.Continue
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application")
		e.isSuspended = false
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(re.Width, re.Height); err != nil {
			core.LogError("game resize hook: %s", err)
		}
	}
	return event.Continue
}

func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.ElapsedSeconds()

	for e.isRunning && !e.platform.Window.ShouldClose() {
		e.clock.Update()
		currentTime := e.clock.ElapsedSeconds()
		delta := currentTime - e.lastTime

		// Native callbacks fire events synchronously from here.
		e.platform.PumpMessages()

		// Deferred events from producer goroutines.
		e.dispatcher.DispatchPosted()

		if !e.isSuspended && e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed: %s", err)
				e.isRunning = false
				break
			}
		}

		// Roll input state into the previous frame.
		e.inputSystem.Update(delta)

		e.clock.Update()
		e.metrics.Update(e.clock.ElapsedSeconds() - currentTime)
		e.lastTime = currentTime
	}
	e.isRunning = false

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("engine shutting down")

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown hook: %s", err)
		}
	}
	if e.configWatcher != nil {
		if err := e.configWatcher.Close(); err != nil {
			core.LogError("closing config watcher: %s", err)
		}
	}
	return e.platform.Shutdown()
}

// Dispatcher exposes the event dispatcher so producers outside the
// platform layer can fire or post events.
func (e *Engine) Dispatcher() *event.Dispatcher {
	return e.dispatcher
}

// Input exposes the input state system for polling-style queries.
func (e *Engine) Input() *input.System {
	return e.inputSystem
}

// Metrics exposes the frame metrics of the run loop.
func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}
