package relay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is the sentinel wrapped by every InvalidArgumentError,
// so callers can match validation failures with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a rejected parameter on one of the broker
// operations. It is returned before any registry mutation or event emission
// takes place, and names the parameter that failed validation.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter, e.g. "eventName".
	Param string
	// Reason describes what the parameter should have been.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// validEventName rejects names that are empty after trimming surrounding
// whitespace. The untrimmed name stays the registry key.
func validEventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidArgumentError{Param: "eventName", Reason: "must be a non-empty string"}
	}
	return nil
}

func validListener(fn Listener) error {
	if fn == nil {
		return &InvalidArgumentError{Param: "listener", Reason: "must be a non-nil function"}
	}
	return nil
}
