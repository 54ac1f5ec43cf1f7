package utils_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrsobakin/battleship/internal/utils"
)

func TestStopwatch_Close(t *testing.T) {
	var expired atomic.Bool

	sw := utils.NewStopwatch(20*time.Millisecond, func() {
		expired.Store(true)
	})
	sw.Close()
	sw.Resume()
	time.Sleep(60 * time.Millisecond)
	sw.Pause()

	assert.False(t, expired.Load(), "closed stopwatch must not expire")
}

func TestStopwatch_RepeatClose(t *testing.T) {
	sw := utils.NewStopwatch(100*time.Millisecond, func() {})
	sw.Close()
	assert.NotPanics(t, sw.Close, "Close should not panic on repeated calls")
}

func TestStopwatch_PausedTimeNotCounted(t *testing.T) {
	var expired atomic.Bool

	sw := utils.NewStopwatch(50*time.Millisecond, func() {
		expired.Store(true)
	})
	defer sw.Close()

	sw.Resume()
	time.Sleep(10 * time.Millisecond)
	sw.Pause()

	time.Sleep(100 * time.Millisecond)

	assert.False(t, expired.Load(), "paused stopwatch must not expire")
	assert.GreaterOrEqual(t, sw.Elapsed(), 10*time.Millisecond)
	assert.Less(t, sw.Elapsed(), 50*time.Millisecond)
}

func TestStopwatch_Accumulates(t *testing.T) {
	var calls atomic.Int32

	sw := utils.NewStopwatch(40*time.Millisecond, func() {
		calls.Add(1)
	})
	defer sw.Close()

	for i := 0; i < 5; i++ {
		sw.Resume()
		time.Sleep(2 * time.Millisecond)
		sw.Pause()
	}
	assert.Zero(t, calls.Load())

	sw.Resume()
	time.Sleep(100 * time.Millisecond)
	sw.Pause()

	sw.Resume()
	time.Sleep(10 * time.Millisecond)
	sw.Pause()

	assert.Equal(t, int32(1), calls.Load(), "expiry callback must fire exactly once")
}

func TestStopwatchContext_Timeout(t *testing.T) {
	parentCtx, cancelParent := context.WithCancel(context.Background())
	defer cancelParent()

	cause := errors.New("thinking time exceeded")
	ctx, sw := utils.NewStopwatchContext(parentCtx, 30*time.Millisecond, cause)
	defer sw.Close()

	sw.Resume()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
	sw.Pause()

	assert.ErrorIs(t, context.Cause(ctx), cause, "context cancel cause should be the specified cause")
}

func TestStopwatchContext_ParentCancel(t *testing.T) {
	parentCtx, cancelParent := context.WithCancel(context.Background())

	cause := errors.New("thinking time exceeded")
	ctx, sw := utils.NewStopwatchContext(parentCtx, time.Hour, cause)
	defer sw.Close()

	sw.Resume()
	cancelParent()

	<-ctx.Done()
	sw.Pause()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.NotErrorIs(t, context.Cause(ctx), cause)
}
