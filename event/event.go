// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"sync"
	"time"

	"github.com/xmidt-org/syncseq/clock"
)

// Option configures an Event
type Option func(*Event)

// WithClock sets the clock used to create timeout timers.  A nil clock restores the system clock.
func WithClock(c clock.Interface) Option {
	return func(e *Event) {
		if c != nil {
			e.clock = c
		} else {
			e.clock = clock.System()
		}
	}
}

// Event is a manually reset event.  The flag and the wake channel are guarded by the same mutex:
// the channel is closed exactly when the flag becomes true and replaced when the flag is cleared.
type Event struct {
	clock clock.Interface

	lock sync.Mutex
	set  bool
	done chan struct{}
}

// New creates an Event in the cleared state
func New(o ...Option) *Event {
	e := &Event{
		clock: clock.System(),
		done:  make(chan struct{}),
	}

	for _, f := range o {
		f(e)
	}

	return e
}

// Set sets this event, waking every current waiter.  Setting an event that is already set does nothing.
func (e *Event) Set() {
	e.lock.Lock()
	if !e.set {
		e.set = true
		close(e.done)
	}

	e.lock.Unlock()
}

// Clear resets this event.  Clearing an event that is not set does nothing.
func (e *Event) Clear() {
	e.lock.Lock()
	if e.set {
		e.set = false
		e.done = make(chan struct{})
	}

	e.lock.Unlock()
}

func (e *Event) IsSet() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.set
}

// Done returns a channel that is closed once this event is set.  A channel obtained before a Set
// is always closed by that Set, so a caller that captures Done and then selects on it never misses
// a notification.
func (e *Event) Done() <-chan struct{} {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.done
}

// Wait blocks until this event is set, the timeout elapses, or the context is canceled.  A nonpositive
// timeout means wait without a timeout.  This method returns true only if the event was set, and it
// never clears the event.
func (e *Event) Wait(ctx context.Context, timeout time.Duration) bool {
	done := e.Done()
	select {
	case <-done:
		return true
	default:
	}

	if ctx.Err() != nil {
		return false
	}

	var expired <-chan time.Time
	if timeout > 0 {
		t := e.clock.NewTimer(timeout)
		defer t.Stop()
		expired = t.C()
	}

	select {
	case <-done:
		return true
	case <-expired:
		return false
	case <-ctx.Done():
		return false
	}
}
