/*
Package relay provides a synchronous, in-process publish/subscribe event broker:
callers register listeners under string event names, later emit those names with
arbitrary arguments, and every registered listener runs in registration order
before Emit returns.

The package focuses on the few contracts that are easy to get wrong in an event
emitter:

  - Ordering: listeners always fire in the order they were registered
  - Identity: registering the same function twice for one event is a no-op
  - Snapshot dispatch: mutating the registry from inside a listener never
    skips or double-fires the listeners of the current emission round
  - Error isolation: a panicking listener never breaks the emission round,
    its failure is rerouted to the reserved "error" event

# Basic Usage

Create a broker, register listeners, emit events:

	b := relay.New()

	off, err := b.Subscribe("user.created", func(args ...any) {
		fmt.Println("welcome,", args[0])
	})
	if err != nil {
		// Handle error
	}

	_ = b.Emit("user.created", "marty")

	off() // removes exactly this listener

Fire-once listeners remove themselves after their first invocation:

	_, _ = b.SubscribeOnce("cache.warm", func(args ...any) {
		fmt.Println("warmed once")
	})

# Lifecycle Events

The broker emits its own state changes on three reserved names, dispatched
through the exact same path as user events:

  - relay.ListenerAddedEvent ("listenerAdded"): payload relay.ListenerInfo
  - relay.ListenerRemovedEvent ("listenerRemoved"): payload relay.ListenerInfo
  - relay.ErrorEvent ("error"): payload relay.ListenerError

A caller who never subscribes to "error" silently loses failure details; the
broker still logs them through its slog logger and always completes the round.

# Listener Identity

A listener's identity is the code pointer of its function body. Two closures
minted from the same function literal therefore share an identity and collapse
into a single registration, the same trade-off made by reflection-based
emitters in the ecosystem. Callers that need several registrations of one
body should use SubscribeOnce (every once-registration is distinct) or keep
the unsubscribe closure returned by Subscribe instead of removing by value.

# Concurrency

Emission is a plain nested call on the caller's goroutine: no goroutines,
channels, or deferred scheduling. A listener may call Emit again (on the same
or another event); that is ordinary recursion and mutual emission cycles are
not guarded against. Registry mutations take a short-lived lock that is never
held while a listener runs, so brokers are also safe to share across
goroutines without changing the synchronous semantics.
*/
package relay
