package testbed

import (
	"github.com/ombralabs/ombra/engine"
	"github.com/ombralabs/ombra/engine/core"
	"github.com/ombralabs/ombra/engine/entity"
	"github.com/ombralabs/ombra/engine/event"
	"github.com/ombralabs/ombra/engine/input"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	player     *entity.Entity
	dispatcher *event.Dispatcher

	width  uint32
	height uint32
}

func NewTestGame() (*TestGame, error) {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  1280,
				StartHeight: 720,
				Name:        "Ombra Testbed",
				LogLevel:    core.DebugLevel,
			},
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Initialize(dispatcher *event.Dispatcher) error {
	core.LogInfo("initializing testbed...")
	state := g.State.(*gameState)
	state.dispatcher = dispatcher
	state.width = g.ApplicationConfig.StartWidth
	state.height = g.ApplicationConfig.StartHeight

	state.player = entity.New()
	state.player.AddComponent(Position{X: 0, Y: 0})
	state.player.AddComponent(Velocity{})

	// Device input events arrive with no target entity. The binding
	// handler re-fires them at the player so component-filtered
	// receivers further down the order can match.
	binding := event.NewHandler("player-binding").
		After(input.HandlerName).
		Before("movement").
		Receive(state.onUnboundKey, event.TypeKeyPressed, event.TypeKeyReleased)
	if err := dispatcher.Register(binding); err != nil {
		return err
	}

	// The movement handler only cares about entities that can move, so
	// its receivers require both components.
	movement := event.NewHandler("movement").
		After("player-binding").
		ReceiveFiltered(state.onMoveKey,
			[]event.Type{event.TypeKeyPressed, event.TypeKeyReleased},
			KindPosition, KindVelocity)
	if err := dispatcher.Register(movement); err != nil {
		return err
	}

	// The camera handler follows the cursor and must run after movement
	// has settled the player.
	camera := event.NewHandler("camera").
		After("movement").
		Receive(state.onCursorMoved, event.TypeCursorMoved)
	if err := dispatcher.Register(camera); err != nil {
		return err
	}

	reload := event.NewHandler("config-reload").
		Receive(state.onConfigChanged, event.TypeConfigChanged)
	return dispatcher.Register(reload)
}

const (
	keyW = 87
	keyA = 65
	keyS = 83
	keyD = 68
)

func (s *gameState) onUnboundKey(ev event.Event, target *entity.Entity) event.Result {
	// Only rebind device-level events; an event that already has a
	// target came from this very receiver.
	if target == nil {
		s.dispatcher.FireAt(ev, s.player)
	}
	return event.Continue
}

func (s *gameState) onMoveKey(ev event.Event, target *entity.Entity) event.Result {
	ke := ev.(*event.KeyEvent)
	c, ok := target.Component(KindVelocity)
	if !ok {
		return event.Continue
	}
	vel := c.(Velocity)
	speed := 0.0
	if ke.Action == event.Press {
		speed = 10.0
	}
	switch ke.Key {
	case keyW:
		vel.DY = -speed
	case keyS:
		vel.DY = speed
	case keyA:
		vel.DX = -speed
	case keyD:
		vel.DX = speed
	default:
		return event.Continue
	}
	target.RemoveComponent(KindVelocity)
	target.AddComponent(vel)
	return event.Continue
}

func (s *gameState) onCursorMoved(ev event.Event, target *entity.Entity) event.Result {
	ce := ev.(*event.CursorPositionEvent)
	core.LogDebug("cursor at (%f, %f)", ce.X, ce.Y)
	return event.Continue
}

func (s *gameState) onConfigChanged(ev event.Event, target *entity.Entity) event.Result {
	core.LogInfo("configuration file %s changed on disk", ev.(*event.ConfigChangedEvent).Path)
	return event.Continue
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)

	// Integrate the velocity the movement handler set from key events.
	c, ok := state.player.Component(KindVelocity)
	if !ok {
		return nil
	}
	vel := c.(Velocity)
	if vel.DX == 0 && vel.DY == 0 {
		return nil
	}
	pc, _ := state.player.Component(KindPosition)
	pos := pc.(Position)
	pos.X += vel.DX * deltaTime
	pos.Y += vel.DY * deltaTime
	state.player.RemoveComponent(KindPosition)
	state.player.AddComponent(pos)
	return nil
}

func (g *TestGame) OnResize(width, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	core.LogInfo("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down")
	return nil
}
