// Package realtime implements polling-based update subscriptions.
//
// The backend has no push transport, so consumers poll. Subscription
// wraps the repetition so the transport can later be swapped for
// WebSocket or SSE without touching consumer code.
package realtime

import (
	"context"
	"sync"
	"time"
)

// Subscription runs a callback immediately on Start and then on every
// interval tick until Stop.
//
// Stop guarantees no further callback invocation after it returns: it
// cancels the callback context and waits for the polling goroutine to
// finish. A tick in flight at the moment of Stop is allowed to
// complete; its effect is immaterial since consumers idempotently
// replace state on every tick.
type Subscription struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// New creates a subscription. The callback must tolerate being invoked
// with a context that is canceled mid-call.
func New(interval time.Duration, fn func(ctx context.Context)) *Subscription {
	return &Subscription{interval: interval, fn: fn}
}

// Start fires the first callback synchronously, then polls at the
// configured interval. Calling Start on a running subscription is a
// no-op.
func (s *Subscription) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started = true
	s.mu.Unlock()

	s.fn(ctx)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.fn(ctx)
			}
		}
	}()
}

// Stop cancels the repetition and blocks until the polling goroutine
// has exited. Safe to call multiple times and before Start.
func (s *Subscription) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.started = false
	s.mu.Unlock()

	cancel()
	<-done
}
