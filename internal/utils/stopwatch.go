package utils

import (
	"context"
	"sync"
	"time"
)

// Accumulates the time that passes between `Stopwatch.Resume()`
// and `Stopwatch.Pause()` calls.
//
// Once the accumulated running time reaches the budget, `onExpire`
// is called exactly once. Time spent paused is never counted.
//
// `Stopwatch.Close()` stops the stopwatch for good; `onExpire` is not
// called after it.
type Stopwatch struct {
	mu         sync.Mutex
	budget     time.Duration
	passed     time.Duration
	lastResume time.Time
	running    bool
	expired    bool
	closed     bool
	timer      *time.Timer
	onExpire   func()
}

// Creates Stopwatch with given budget and expiry callback.
//
// Created Stopwatch is in PAUSED state.
func NewStopwatch(budget time.Duration, onExpire func()) *Stopwatch {
	return &Stopwatch{
		budget:   budget,
		onExpire: onExpire,
	}
}

func (s *Stopwatch) expire() {
	s.mu.Lock()
	if s.closed || s.expired || !s.running {
		s.mu.Unlock()
		return
	}
	s.expired = true
	s.mu.Unlock()

	s.onExpire()
}

func (s *Stopwatch) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.closed || s.expired {
		return
	}

	s.running = true
	s.lastResume = time.Now()
	s.timer = time.AfterFunc(max(0, s.budget-s.passed), s.expire)
}

func (s *Stopwatch) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.passed += time.Since(s.lastResume)
	s.timer.Stop()
}

// Returns total running time so far.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.passed + time.Since(s.lastResume)
	}
	return s.passed
}

func (s *Stopwatch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

// Creates context and stopwatch bounded together.
//
// When stopwatch running time exceeds `budget`, context is cancelled
// with `cause` cause.
//
// When the parent context is cancelled, stopwatch is closed.
func NewStopwatchContext(parent context.Context, budget time.Duration, cause error) (context.Context, *Stopwatch) {
	ctx, cancel := context.WithCancelCause(parent)
	sw := NewStopwatch(budget, func() {
		cancel(cause)
	})

	context.AfterFunc(ctx, sw.Close)

	return ctx, sw
}
