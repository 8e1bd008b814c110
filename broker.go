package relay

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/alphadose/haxmap"
	"github.com/casualjim/relay/pkg/reflectx"
	"github.com/casualjim/relay/pkg/slogx"
	"github.com/casualjim/relay/pkg/uuidx"
	"github.com/fogfish/opts"
)

// Listener is a function registered for an event name. It receives the
// arguments passed to Emit. Listeners that need the broker close over it;
// there is no implicit invocation context.
type Listener func(args ...any)

// Broker is an in-process publish/subscribe event broker. Each instance owns
// a private registry mapping event names to ordered listener lists; the
// registry is reachable only through the Broker's methods.
//
// The zero value is not usable, construct instances with New.
type Broker struct {
	id      string
	logger  *slog.Logger
	topics  *haxmap.Map[string, *listenerList]
	onceSeq atomic.Uint64
}

var (
	// WithID overrides the generated broker instance id used in log output.
	WithID = opts.ForName[Broker, string]("id")
	// WithLogger overrides the slog logger the broker reports listener
	// failures through. Defaults to slog.Default().
	WithLogger = opts.ForName[Broker, *slog.Logger]("logger")
)

// New constructs a Broker with an empty registry.
func New(options ...opts.Option[Broker]) *Broker {
	b := &Broker{
		topics: haxmap.New[string, *listenerList](),
	}
	if err := opts.Apply(b, options); err != nil {
		panic(err)
	}
	if b.id == "" {
		b.id = uuidx.NewString()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With(slog.String("broker", b.id))
	return b
}

// ID returns the broker's instance id.
func (b *Broker) ID() string {
	return b.id
}

// Subscribe registers fn for the named event and returns a function that
// removes exactly this registration, equivalent to calling Unsubscribe with
// the same pair.
//
// Registration is idempotent: if fn is already registered for this event
// (identity comparison on the function's code pointer) the call changes
// nothing and the returned function still removes the original registration.
// An actual registration emits ListenerAddedEvent through the normal dispatch
// path.
func (b *Broker) Subscribe(event string, fn Listener) (func(), error) {
	if err := validEventName(event); err != nil {
		return nil, err
	}
	if err := validListener(fn); err != nil {
		return nil, err
	}
	return b.subscribe(event, listenerKey{ptr: reflectx.Pointer(fn)}, fn), nil
}

// SubscribeOnce registers fn to run at most once: on its first invocation the
// emitted arguments are forwarded to fn and the registration removes itself
// before returning, even if fn panics.
//
// The broker stores a self-removing adapter, not fn itself, so every
// SubscribeOnce call is a distinct registration and ListenerAddedEvent
// carries the adapter. The returned function cancels the registration if it
// has not fired yet.
func (b *Broker) SubscribeOnce(event string, fn Listener) (func(), error) {
	if err := validEventName(event); err != nil {
		return nil, err
	}
	if err := validListener(fn); err != nil {
		return nil, err
	}

	key := listenerKey{ptr: reflectx.Pointer(fn), seq: b.onceSeq.Add(1)}
	var fired atomic.Bool
	adapter := func(args ...any) {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		defer b.removeListener(event, key)
		fn(args...)
	}
	return b.subscribe(event, key, adapter), nil
}

func (b *Broker) subscribe(event string, key listenerKey, fn Listener) func() {
	list, _ := b.topics.GetOrCompute(event, func() *listenerList {
		return &listenerList{}
	})
	if list.add(listenerEntry{key: key, fn: fn}) {
		b.dispatch(ListenerAddedEvent, []any{newListenerInfo(event, fn)})
	}
	return func() { b.removeListener(event, key) }
}

// Unsubscribe removes fn from the named event's list if it is registered
// (identity comparison). An actual removal emits ListenerRemovedEvent;
// removing an unknown listener is a silent no-op.
func (b *Broker) Unsubscribe(event string, fn Listener) error {
	if err := validEventName(event); err != nil {
		return err
	}
	if err := validListener(fn); err != nil {
		return err
	}
	b.removeListener(event, listenerKey{ptr: reflectx.Pointer(fn)})
	return nil
}

// UnsubscribeAll removes every listener registered for the named event, one
// at a time. Removing N listeners emits N ListenerRemovedEvent events, not a
// single batched one.
func (b *Broker) UnsubscribeAll(event string) error {
	if err := validEventName(event); err != nil {
		return err
	}
	list, ok := b.topics.Get(event)
	if !ok {
		return nil
	}
	for _, key := range list.keys() {
		b.removeListener(event, key)
	}
	return nil
}

func (b *Broker) removeListener(event string, key listenerKey) {
	list, ok := b.topics.Get(event)
	if !ok {
		return
	}
	fn, removed := list.remove(key)
	if !removed {
		return
	}
	if list.len() == 0 {
		b.topics.Del(event)
	}
	b.dispatch(ListenerRemovedEvent, []any{newListenerInfo(event, fn)})
}

// Emit invokes every listener currently registered for the named event, in
// registration order, passing args. It returns an error only when the event
// name fails validation; listener failures never surface here.
//
// Dispatch works on a snapshot taken when the round starts: listeners
// registered mid-round are not invoked this round, and listeners removed
// mid-round by an earlier listener still fire. A panicking listener is
// recovered, reported on ErrorEvent, and the round continues with the next
// listener.
func (b *Broker) Emit(event string, args ...any) error {
	if err := validEventName(event); err != nil {
		return err
	}
	b.dispatch(event, args)
	return nil
}

func (b *Broker) dispatch(event string, args []any) {
	list, ok := b.topics.Get(event)
	if !ok {
		return
	}
	for _, e := range list.snapshot() {
		b.invoke(event, e.fn, args)
	}
}

func (b *Broker) invoke(event string, fn Listener, args []any) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		b.logger.Error("listener panicked",
			slogx.Event(event), slogx.Listener(fn), slogx.Error(err))
		b.dispatch(ErrorEvent, []any{newListenerError(event, fn, err)})
	}()
	fn(args...)
}

// On is an alias for Subscribe.
func (b *Broker) On(event string, fn Listener) (func(), error) {
	return b.Subscribe(event, fn)
}

// Once is an alias for SubscribeOnce.
func (b *Broker) Once(event string, fn Listener) (func(), error) {
	return b.SubscribeOnce(event, fn)
}

// Off is an alias for Unsubscribe.
func (b *Broker) Off(event string, fn Listener) error {
	return b.Unsubscribe(event, fn)
}

// ListenerCount returns the number of listeners currently registered for the
// named event. Unknown names report zero.
func (b *Broker) ListenerCount(event string) int {
	list, ok := b.topics.Get(event)
	if !ok {
		return 0
	}
	return list.len()
}

// EventNames returns the names that currently have at least one listener, in
// unspecified order.
func (b *Broker) EventNames() []string {
	names := make([]string, 0, int(b.topics.Len()))
	b.topics.ForEach(func(name string, _ *listenerList) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Len returns the number of event names that currently have listeners.
func (b *Broker) Len() int {
	return int(b.topics.Len())
}

// Clear drops every registration from the registry without emitting any
// lifecycle events. Use UnsubscribeAll for observable removal.
func (b *Broker) Clear() {
	b.topics.ForEach(func(name string, _ *listenerList) bool {
		b.topics.Del(name)
		return true
	})
}
