package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Name() string
}

func TestCheckInit(t *testing.T) {
	var missing provider
	require.NotPanics(t, func() { CheckInit("store", 1, "name", "x") })
	require.PanicsWithValue(t, "зависимость store не инициализирована", func() { CheckInit("store", missing) })
	require.Panics(t, func() { CheckInit("store") })
	require.Panics(t, func() { CheckInit(1, 2) })
}
