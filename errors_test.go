package relay

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentError(t *testing.T) {
	err := &InvalidArgumentError{Param: "eventName", Reason: "must be a non-empty string"}

	assert.Equal(t, `invalid argument "eventName": must be a non-empty string`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, errors.New("other"), ErrInvalidArgument)
}

func TestValidEventName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain", "greet", true},
		{"inner whitespace", "user created", true},
		{"padded", "  greet  ", true},
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", " \t\n ", false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			err := validEventName(tt.input)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}
