package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer(t *testing.T) {
	t.Run("RapidTriggersCollapseIntoOne", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)
		var calls atomic.Int32

		for i := 0; i < 3; i++ {
			d.Trigger(func() { calls.Add(1) })
			time.Sleep(5 * time.Millisecond)
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 },
			time.Second, 5*time.Millisecond)
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("CancelStopsPendingCall", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)
		var calls atomic.Int32

		d.Trigger(func() { calls.Add(1) })
		d.Cancel()

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("SeparateQuietPeriodsFireSeparately", func(t *testing.T) {
		d := newDebouncer(10 * time.Millisecond)
		var calls atomic.Int32

		d.Trigger(func() { calls.Add(1) })
		require.Eventually(t, func() bool { return calls.Load() == 1 },
			time.Second, time.Millisecond)

		d.Trigger(func() { calls.Add(1) })
		require.Eventually(t, func() bool { return calls.Load() == 2 },
			time.Second, time.Millisecond)
	})
}
