package reflectx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcTestStruct struct{}

func (t *funcTestStruct) ptrMethod()  {}
func (t funcTestStruct) valueMethod() {}
func regularFunction()                {}
func withParams(x int)                {}
func withReturn() error               { return nil }
func variadicFunc(args ...any)        {}

func TestIsFunction(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want bool
	}{
		{"nil", nil, false},
		{"int", 42, false},
		{"string", "not a func", false},
		{"struct", funcTestStruct{}, false},
		{"regular function", regularFunction, true},
		{"anonymous function", func() {}, true},
		{"function with params", withParams, true},
		{"function with return", withReturn, true},
		{"variadic function", variadicFunc, true},
		{"pointer method expression", (*funcTestStruct).ptrMethod, true},
		{"value method expression", (funcTestStruct).valueMethod, true},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsFunction(tt.fn))
		})
	}
}

func TestPointer(t *testing.T) {
	t.Run("non-functions yield zero", func(t *testing.T) {
		require.Zero(t, Pointer(nil))
		require.Zero(t, Pointer(42))
		require.Zero(t, Pointer("str"))
	})

	t.Run("stable for the same function", func(t *testing.T) {
		require.Equal(t, Pointer(regularFunction), Pointer(regularFunction))
	})

	t.Run("distinct functions differ", func(t *testing.T) {
		require.NotEqual(t, Pointer(regularFunction), Pointer(withParams))
	})

	t.Run("same literal shares a pointer", func(t *testing.T) {
		mk := func(i int) func() int { return func() int { return i } }
		require.Equal(t, Pointer(mk(1)), Pointer(mk(2)))
	})
}

func TestFunctionName(t *testing.T) {
	tests := []struct {
		name     string
		fn       any
		expected string
	}{
		{"nil", nil, ""},
		{"int", 42, ""},
		{"regular function", regularFunction, "regularFunction"},
		{"function with params", withParams, "withParams"},
		{"variadic function", variadicFunc, "variadicFunc"},
		{"pointer method expression", (*funcTestStruct).ptrMethod, "ptrMethod"},
		{"value method expression", (funcTestStruct).valueMethod, "valueMethod"},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FunctionName(tt.fn))
		})
	}

	t.Run("method value trims -fm suffix", func(t *testing.T) {
		s := &funcTestStruct{}
		require.Equal(t, "ptrMethod", FunctionName(s.ptrMethod))
	})

	t.Run("anonymous function keeps runtime suffix", func(t *testing.T) {
		assert.NotEmpty(t, FunctionName(func() {}))
	})
}
