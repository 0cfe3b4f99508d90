package event

import (
	"github.com/ombralabs/ombra/engine/entity"
)

// Callback is the required receiver signature. The target entity is nil
// when the event was fired without a specific target.
type Callback func(ev Event, target *entity.Entity) Result

// receiver binds a callback to the event tags it accepts and the component
// kinds the target entity must carry for it to be invoked.
type receiver struct {
	types      []Type
	components []entity.Kind
	fn         Callback
}

func (r *receiver) accepts(t Type) bool {
	for _, rt := range r.types {
		if rt == t {
			return true
		}
	}
	return false
}

func (r *receiver) wants(target *entity.Entity) bool {
	for _, kind := range r.components {
		if !target.HasComponent(kind) {
			return false
		}
	}
	return true
}

// Handler owns zero or more receivers and participates in the before/after
// ordering graph under a stable name. Handlers are built explicitly:
//
//	h := event.NewHandler("movement").
//		After("input").
//		ReceiveFiltered(onKey, []event.Type{event.TypeKeyPressed}, KindPosition)
//
// A handler with zero receivers is legal and simply never fires.
type Handler struct {
	name      string
	receivers []*receiver
	before    []string
	after     []string
}

func NewHandler(name string) *Handler {
	return &Handler{name: name}
}

// Name returns the stable identifier other handlers reference in their
// ordering constraints.
func (h *Handler) Name() string {
	return h.name
}

// Before declares that this handler must be processed before the named
// handlers. Names not registered yet take effect once they are.
func (h *Handler) Before(names ...string) *Handler {
	h.before = append(h.before, names...)
	return h
}

// After declares that this handler must be processed after the named
// handlers.
func (h *Handler) After(names ...string) *Handler {
	h.after = append(h.after, names...)
	return h
}

// Receive adds a receiver with no component filter: it fires for every
// event carrying one of the given tags, regardless of the target entity.
func (h *Handler) Receive(fn Callback, types ...Type) *Handler {
	return h.ReceiveFiltered(fn, types)
}

// ReceiveFiltered adds a receiver that fires for events carrying one of
// the given tags, but only when the target entity carries every one of
// the given component kinds.
func (h *Handler) ReceiveFiltered(fn Callback, types []Type, components ...entity.Kind) *Handler {
	if fn == nil {
		return h
	}
	h.receivers = append(h.receivers, &receiver{
		types:      types,
		components: components,
		fn:         fn,
	})
	return h
}
