package slogx

import (
	"fmt"
	"log/slog"

	"github.com/casualjim/relay/pkg/reflectx"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
//
// Parameters:
//   - err: The error to be converted into a slog.Attr.
//
// Returns:
//   - slog.Attr: An attribute with the key "error" and the error's message as the value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Event returns a slog.Attr for an event name.
// The attribute key is "event" and the value is the event name.
//
// Parameters:
//   - name: The event name being logged.
//
// Returns:
//   - slog.Attr: An attribute with the key "event" and the name as the value.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Listener returns a slog.Attr describing a listener function.
// The attribute key is "listener" and the value is the function's short name
// as resolved by reflectx.FunctionName.
//
// Parameters:
//   - fn: The listener function being logged.
//
// Returns:
//   - slog.Attr: An attribute with the key "listener" and the function name as the value.
func Listener(fn any) slog.Attr {
	return slog.String("listener", reflectx.FunctionName(fn))
}

// Stringer creates a slog.Attr with the provided key and the string
// representation of the given fmt.Stringer value.
//
// Parameters:
//   - key: A string representing the key for the attribute.
//   - value: An object that implements the fmt.Stringer interface.
//
// Returns:
//   - slog.Attr: An attribute containing the key and the string representation of the value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}
