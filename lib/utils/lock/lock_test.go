package lock

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTryRun(t *testing.T) {
	t.Run(`second call with same key is rejected while first runs`, func(t *testing.T) {
		key := "decision:REQ-LOCKTEST"
		var nestedAcquired bool
		acquired, err := TryRun(key, func() error {
			require.True(t, IsLocked(key))
			var nestedErr error
			nestedAcquired, nestedErr = TryRun(key, func() error {
				return nil
			})
			return nestedErr
		})
		require.NoError(t, err)
		require.True(t, acquired)
		require.False(t, nestedAcquired)
		require.False(t, IsLocked(key))
	})

	t.Run(`other keys are independent`, func(t *testing.T) {
		acquired, err := TryRun("decision:REQ-A", func() error {
			inner, innerErr := TryRun("decision:REQ-B", func() error { return nil })
			require.True(t, inner)
			return innerErr
		})
		require.NoError(t, err)
		require.True(t, acquired)
	})

	t.Run(`error from code is returned and key released`, func(t *testing.T) {
		expected := errors.New("boom")
		acquired, err := TryRun("decision:REQ-ERR", func() error { return expected })
		require.True(t, acquired)
		require.Equal(t, expected, err)
		require.False(t, IsLocked("decision:REQ-ERR"))
	})
}
