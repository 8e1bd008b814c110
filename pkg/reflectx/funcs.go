package reflectx

import (
	"reflect"
	"runtime"
	"strings"
)

// IsFunction reports whether fn is a non-nil function value.
//
// Parameters:
//   - fn: The value to inspect.
//
// Returns:
//   - bool: true when fn's dynamic type has kind reflect.Func.
func IsFunction(fn any) bool {
	if fn == nil {
		return false
	}
	return reflect.TypeOf(fn).Kind() == reflect.Func
}

// Pointer returns the code pointer backing the function value fn.
//
// The pointer identifies the compiled function body, so two values minted
// from the same function literal share a pointer even when they capture
// different variables. Non-function values yield 0.
//
// Parameters:
//   - fn: The function value to identify.
//
// Returns:
//   - uintptr: The code pointer, or 0 when fn is not a function.
func Pointer(fn any) uintptr {
	if !IsFunction(fn) {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// FunctionName returns a short human-readable name for the function value fn.
//
// Named function types report their type name. Everything else resolves
// through the runtime symbol table: the package qualifier is stripped and
// the "-fm" suffix the runtime appends to method values is removed, so a
// method value like b.handle reports "handle". Anonymous functions keep the
// runtime's generated suffix (e.g. "func1"). Non-function values yield the
// empty string.
//
// Parameters:
//   - fn: The function value to name.
//
// Returns:
//   - string: The short name of the function.
func FunctionName(fn any) string {
	if !IsFunction(fn) {
		return ""
	}

	val := reflect.ValueOf(fn)

	rf := runtime.FuncForPC(val.Pointer())
	if rf == nil {
		return val.Type().String()
	}

	name := rf.Name()
	if lastDot := strings.LastIndex(name, "."); lastDot >= 0 {
		name = name[lastDot+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
