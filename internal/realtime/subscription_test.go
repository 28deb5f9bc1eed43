package realtime_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xinyujieHong/CSEN174-Project/internal/realtime"
)

func TestStartFiresImmediately(t *testing.T) {
	var calls atomic.Int64
	sub := realtime.New(time.Hour, func(context.Context) { calls.Add(1) })

	sub.Start()
	defer sub.Stop()

	// The first call happens synchronously inside Start; the hour-long
	// interval means no further ticks during the test.
	assert.Equal(t, int64(1), calls.Load())
}

func TestTicksAtInterval(t *testing.T) {
	var calls atomic.Int64
	sub := realtime.New(10*time.Millisecond, func(context.Context) { calls.Add(1) })

	sub.Start()
	time.Sleep(55 * time.Millisecond)
	sub.Stop()

	// Initial call plus several ticks; exact count depends on scheduling.
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestStopPreventsFurtherCalls(t *testing.T) {
	var calls atomic.Int64
	sub := realtime.New(5*time.Millisecond, func(context.Context) { calls.Add(1) })

	sub.Start()
	time.Sleep(20 * time.Millisecond)
	sub.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	sub := realtime.New(time.Hour, func(context.Context) {})

	// Stop before Start is a no-op.
	sub.Stop()

	sub.Start()
	sub.Stop()
	sub.Stop()
}

func TestRestartAfterStop(t *testing.T) {
	var calls atomic.Int64
	sub := realtime.New(time.Hour, func(context.Context) { calls.Add(1) })

	sub.Start()
	sub.Stop()
	sub.Start()
	defer sub.Stop()

	assert.Equal(t, int64(2), calls.Load())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	var calls atomic.Int64
	sub := realtime.New(time.Hour, func(context.Context) { calls.Add(1) })

	sub.Start()
	sub.Start()
	defer sub.Stop()

	assert.Equal(t, int64(1), calls.Load())
}
