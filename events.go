package relay

import (
	"fmt"
	"time"

	"github.com/casualjim/relay/pkg/reflectx"
	"github.com/go-openapi/strfmt"
	"github.com/goccy/go-json"
)

// Reserved event names the broker emits on its own behalf. They are ordinary
// events: callers may subscribe to, unsubscribe from, and even emit them, and
// they are dispatched through the same path as every other event.
const (
	// ErrorEvent carries a ListenerError whenever a listener panics during
	// emission.
	ErrorEvent = "error"
	// ListenerAddedEvent carries a ListenerInfo whenever a listener is
	// registered.
	ListenerAddedEvent = "listenerAdded"
	// ListenerRemovedEvent carries a ListenerInfo whenever a listener is
	// removed.
	ListenerRemovedEvent = "listenerRemoved"
)

// ListenerInfo is the payload of the ListenerAddedEvent and
// ListenerRemovedEvent lifecycle events.
type ListenerInfo struct {
	// Event is the name the listener was registered under.
	Event string
	// Listener is the registered function. For fire-once registrations this
	// is the self-removing adapter, not the wrapped function.
	Listener Listener
	// Timestamp records when the registry changed.
	Timestamp strfmt.DateTime
}

func newListenerInfo(event string, fn Listener) ListenerInfo {
	return ListenerInfo{
		Event:     event,
		Listener:  fn,
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

// MarshalJSON renders the listener as its resolved function name, since
// function values have no meaningful JSON form.
func (l ListenerInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Event     string          `json:"event"`
		Listener  string          `json:"listener"`
		Timestamp strfmt.DateTime `json:"timestamp"`
	}{
		Event:     l.Event,
		Listener:  reflectx.FunctionName(l.Listener),
		Timestamp: l.Timestamp,
	})
}

// ListenerError is the payload of the ErrorEvent lifecycle event. It wraps a
// panic recovered from a listener during emission; the emission round that
// produced it always runs to completion.
type ListenerError struct {
	// Event is the name that was being emitted when the listener failed.
	Event string
	// Listener is the function that panicked.
	Listener Listener
	// Err is the recovered failure. Non-error panic values are wrapped.
	Err error
	// Timestamp records when the failure was recovered.
	Timestamp strfmt.DateTime
}

func newListenerError(event string, fn Listener, err error) ListenerError {
	return ListenerError{
		Event:     event,
		Listener:  fn,
		Err:       err,
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

func (l ListenerError) Error() string {
	return fmt.Sprintf("listener %s failed during emission of %q: %v",
		reflectx.FunctionName(l.Listener), l.Event, l.Err)
}

func (l ListenerError) Unwrap() error {
	return l.Err
}

// MarshalJSON renders the listener as its resolved function name and the
// failure as its message.
func (l ListenerError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Event     string          `json:"event"`
		Listener  string          `json:"listener"`
		Error     string          `json:"error"`
		Timestamp strfmt.DateTime `json:"timestamp"`
	}{
		Event:     l.Event,
		Listener:  reflectx.FunctionName(l.Listener),
		Error:     l.Err.Error(),
		Timestamp: l.Timestamp,
	})
}
