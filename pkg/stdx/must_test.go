package stdx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMust0(t *testing.T) {
	require.NotPanics(t, func() { Must0(nil) })
	require.Panics(t, func() { Must0(errors.New("boom")) })
}

func TestMust1(t *testing.T) {
	require.Equal(t, 42, Must1(42, nil))
	require.Panics(t, func() { Must1(0, errors.New("boom")) })
}
