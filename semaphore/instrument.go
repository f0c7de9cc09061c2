// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package semaphore

import (
	"context"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/syncseq/xmetrics"
)

// InstrumentOption configures an instrumented semaphore.
type InstrumentOption func(*instrumented)

// WithResources sets the metric tracking whether the lock is held, 1 while held and 0 otherwise.
// A gauge is the natural fit.  A nil metric discards the values.
func WithResources(a xmetrics.Adder) InstrumentOption {
	return func(i *instrumented) {
		if a != nil {
			i.held = a
		} else {
			i.held = discard.NewGauge()
		}
	}
}

// WithFailures sets the metric counting acquisitions that did not take the lock, either
// because the context ended or because TryAcquire found it held.  A nil metric discards the counts.
func WithFailures(a xmetrics.Adder) InstrumentOption {
	return func(i *instrumented) {
		if a != nil {
			i.failures = a
		} else {
			i.failures = discard.NewCounter()
		}
	}
}

// Instrument decorates a semaphore with metrics.  A nil semaphore results in a panic.
func Instrument(s Interface, o ...InstrumentOption) Interface {
	if s == nil {
		panic("A semaphore is required")
	}

	i := &instrumented{
		next:     s,
		held:     discard.NewGauge(),
		failures: discard.NewCounter(),
	}

	for _, f := range o {
		f(i)
	}

	return i
}

type instrumented struct {
	next     Interface
	held     xmetrics.Adder
	failures xmetrics.Adder
}

func (i *instrumented) acquired(ok bool) {
	if ok {
		i.held.Add(1.0)
	} else {
		i.failures.Add(1.0)
	}
}

func (i *instrumented) AcquireCtx(ctx context.Context) error {
	err := i.next.AcquireCtx(ctx)
	i.acquired(err == nil)
	return err
}

func (i *instrumented) TryAcquire() bool {
	ok := i.next.TryAcquire()
	i.acquired(ok)
	return ok
}

func (i *instrumented) Release() {
	i.next.Release()
	i.held.Add(-1.0)
}
