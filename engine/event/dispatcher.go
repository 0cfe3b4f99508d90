package event

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ombralabs/ombra/engine/containers"
	"github.com/ombralabs/ombra/engine/core"
	"github.com/ombralabs/ombra/engine/entity"
)

// Capacity of the deferred-event queue. Enough for a frame's worth of
// producer events; Post fails loudly beyond that.
const postedQueueSize = 256

// ErrHandlerRegistered is returned when a handler name is already taken.
var ErrHandlerRegistered = errors.New("handler already registered")

// Dispatcher routes events to the receivers of its registered handlers,
// in an order that respects every handler's before/after constraints.
// The ordering is recomputed on every registration, so the handler list
// is always a valid topological order of the dependency graph.
//
// Register and Fire are not safe for concurrent use; they belong to the
// thread that owns the platform event loop. Post is the one exception:
// it may be called from other goroutines, with DispatchPosted draining
// the queue on the owner thread.
type Dispatcher struct {
	handlers []*Handler
	lookup   map[string]*Handler

	postedMu sync.Mutex
	posted   *containers.RingQueue[Event]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		lookup: make(map[string]*Handler),
		posted: containers.NewRingQueue[Event](postedQueueSize),
	}
}

// Register adds a handler and recomputes the handler order from the
// before/after declarations of all registered handlers. When the
// constraints form a cycle the handler is rejected, the previous order
// stays in force, and a wrapped containers.ErrCyclicGraph is returned.
func (d *Dispatcher) Register(h *Handler) error {
	if h == nil || h.name == "" {
		return fmt.Errorf("handler must have a name")
	}
	if _, ok := d.lookup[h.name]; ok {
		return fmt.Errorf("%w: %q", ErrHandlerRegistered, h.name)
	}

	d.handlers = append(d.handlers, h)
	d.lookup[h.name] = h

	sorted, err := d.sortHandlers()
	if err != nil {
		// Roll the registration back; no partial order is ever accepted.
		d.handlers = d.handlers[:len(d.handlers)-1]
		delete(d.lookup, h.name)
		return fmt.Errorf("registering handler %q: %w", h.name, err)
	}
	d.handlers = sorted
	return nil
}

// sortHandlers rebuilds the dependency graph from every registered
// handler's constraints and returns a topological order. Constraints
// naming handlers that are not registered yet are skipped; the graph is
// rebuilt on each registration, so they apply as soon as the named
// handler shows up.
func (d *Dispatcher) sortHandlers() ([]*Handler, error) {
	sorter := containers.NewTopSorter[*Handler]()
	sorter.AddVertices(d.handlers)
	for _, h := range d.handlers {
		for _, name := range h.before {
			if target, ok := d.lookup[name]; ok {
				sorter.AddEdge(h, target)
			}
		}
		for _, name := range h.after {
			if target, ok := d.lookup[name]; ok {
				sorter.AddEdge(target, h)
			}
		}
	}
	return sorter.Sort()
}

// Fire dispatches an event that has no specific target entity. Only
// receivers without a component filter can match.
func (d *Dispatcher) Fire(ev Event) {
	d.FireAt(ev, nil)
}

// FireAt dispatches an event against a target entity. Handlers are walked
// in topological order; within each handler every receiver whose tag list
// contains the event's tag and whose required component kinds are all
// present on the target is invoked. A receiver returning Break stops the
// remainder of the pass. Dispatch never fails: a panicking receiver is
// logged and skipped, and the pass continues.
func (d *Dispatcher) FireAt(ev Event, target *entity.Entity) {
	if ev == nil {
		return
	}
	t := ev.EventType()
	for _, h := range d.handlers {
		for _, r := range h.receivers {
			if !r.accepts(t) || !r.wants(target) {
				continue
			}
			if d.invoke(h, r, ev, target) == Break {
				return
			}
		}
	}
}

// invoke calls a single receiver, converting a panic into an error log and
// a Continue verdict so one misbehaving receiver cannot break input
// processing for the rest of the application.
func (d *Dispatcher) invoke(h *Handler, r *receiver, ev Event, target *entity.Entity) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			core.LogError("handler %q: receiver for %s panicked: %v", h.name, ev.EventType(), rec)
			res = Continue
		}
	}()
	return r.fn(ev, target)
}

// Post queues an event for deferred dispatch. Unlike Fire it is safe to
// call from producer goroutines; the queued events are delivered when the
// owner thread calls DispatchPosted. Events beyond the queue capacity are
// dropped with an error log.
func (d *Dispatcher) Post(ev Event) {
	if ev == nil {
		return
	}
	d.postedMu.Lock()
	err := d.posted.Enqueue(ev)
	d.postedMu.Unlock()
	if err != nil {
		core.LogError("posted event queue overflow, dropping %s event", ev.EventType())
	}
}

// DispatchPosted drains the deferred-event queue in FIFO order, firing
// each event with no target entity. Called once per frame by the engine
// run loop.
func (d *Dispatcher) DispatchPosted() {
	for {
		d.postedMu.Lock()
		ev, err := d.posted.Dequeue()
		d.postedMu.Unlock()
		if err != nil {
			return
		}
		d.Fire(ev)
	}
}

// Handlers returns the names of the registered handlers in their current
// dispatch order.
func (d *Dispatcher) Handlers() []string {
	names := make([]string, len(d.handlers))
	for i, h := range d.handlers {
		names[i] = h.name
	}
	return names
}
