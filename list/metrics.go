// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"context"
	"errors"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/syncseq/xmetrics"
)

// Names for our metrics
const (
	OperationCounter    = "list_operations"
	LengthGauge         = "list_length"
	ChangeWaitCounter   = "list_change_waits"
	WaitDurationSeconds = "list_wait_duration_seconds"
	LockHeldGauge       = "list_lock_held"
	LockFailureCounter  = "list_lock_failures"
)

// labels
const (
	OpLabel      = "op"
	OutcomeLabel = "outcome"

	// ListLabel carries the list's name on the gauges that describe a single list
	ListLabel = "list"
)

// outcomes
const (
	SuccessOutcome         = "success"
	NotFoundOutcome        = "not_found"
	OutOfBoundsOutcome     = "out_of_bounds"
	InvalidArgumentOutcome = "invalid_argument"
	CanceledOutcome        = "canceled"
	FailureOutcome         = "failure"

	ChangedOutcome = "changed"
	TimeoutOutcome = "timeout"
)

// Metrics returns the Metrics relevant to this package.  To initialize the metrics, use NewMeasures.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       OperationCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of list operations, by operation and outcome",
			LabelNames: []string{OpLabel, OutcomeLabel},
		},
		{
			Name:       LengthGauge,
			Type:       xmetrics.GaugeType,
			Help:       "The number of elements in each list as of its last change, by list name",
			LabelNames: []string{ListLabel},
		},
		{
			Name:       ChangeWaitCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of completed waits for a change, by outcome",
			LabelNames: []string{OutcomeLabel},
		},
		{
			Name:    WaitDurationSeconds,
			Type:    xmetrics.HistogramType,
			Help:    "How long waits for a change took",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		{
			Name:       LockHeldGauge,
			Type:       xmetrics.GaugeType,
			Help:       "Whether each list's lock is currently held, by list name",
			LabelNames: []string{ListLabel},
		},
		{
			Name: LockFailureCounter,
			Type: xmetrics.CounterType,
			Help: "The number of lock acquisitions that did not take the lock, either canceled or found busy by String",
		},
	}
}

// Measures describes the defined metrics that a List updates.  One Measures may be shared by
// many lists: Length and LockHeld are labeled with ListLabel, so lists sharing them should
// have distinct names.
type Measures struct {
	Operations   metrics.Counter
	Length       metrics.Gauge
	ChangeWaits  metrics.Counter
	WaitDuration metrics.Histogram
	LockHeld     metrics.Gauge
	LockFailures metrics.Counter
}

// NewMeasures realizes the metrics described by Metrics.  The provider should have those metrics
// preregistered, e.g. an xmetrics.Registry created with the Metrics module.
func NewMeasures(p provider.Provider) *Measures {
	return &Measures{
		Operations:   p.NewCounter(OperationCounter),
		Length:       p.NewGauge(LengthGauge),
		ChangeWaits:  p.NewCounter(ChangeWaitCounter),
		WaitDuration: p.NewHistogram(WaitDurationSeconds, 0),
		LockHeld:     p.NewGauge(LockHeldGauge),
		LockFailures: p.NewCounter(LockFailureCounter),
	}
}

// DiscardMeasures returns Measures that record nothing
func DiscardMeasures() *Measures {
	return &Measures{
		Operations:   discard.NewCounter(),
		Length:       discard.NewGauge(),
		ChangeWaits:  discard.NewCounter(),
		WaitDuration: discard.NewHistogram(),
		LockHeld:     discard.NewGauge(),
		LockFailures: discard.NewCounter(),
	}
}

// withDefaults fills in any nil field with a discard metric
func (m *Measures) withDefaults() *Measures {
	d := DiscardMeasures()
	if m == nil {
		return d
	}

	c := *m
	if c.Operations == nil {
		c.Operations = d.Operations
	}

	if c.Length == nil {
		c.Length = d.Length
	}

	if c.ChangeWaits == nil {
		c.ChangeWaits = d.ChangeWaits
	}

	if c.WaitDuration == nil {
		c.WaitDuration = d.WaitDuration
	}

	if c.LockHeld == nil {
		c.LockHeld = d.LockHeld
	}

	if c.LockFailures == nil {
		c.LockFailures = d.LockFailures
	}

	return &c
}

// outcomeOf maps an operation's error onto the outcome label
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return SuccessOutcome
	case errors.Is(err, ErrNotFound):
		return NotFoundOutcome
	case errors.Is(err, ErrIndexOutOfBounds):
		return OutOfBoundsOutcome
	case errors.Is(err, ErrInvalidArgument):
		return InvalidArgumentOutcome
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CanceledOutcome
	default:
		return FailureOutcome
	}
}
