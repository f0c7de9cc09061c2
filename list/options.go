// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/syncseq/clock"
	"go.uber.org/zap"
)

// DefaultName is the name used in log output for lists created without WithName
const DefaultName = "list"

type options struct {
	name     string
	logger   *zap.Logger
	clock    clock.Interface
	measures *Measures
}

// Option configures a List.  Options apply to lists of any element type.
type Option func(*options)

// WithName sets the name that identifies the list in log output
func WithName(name string) Option {
	return func(o *options) {
		if len(name) > 0 {
			o.name = name
		} else {
			o.name = DefaultName
		}
	}
}

// WithLogger sets the logger used for failed operations.  A nil logger restores the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		} else {
			o.logger = sallust.Default()
		}
	}
}

// WithClock sets the clock used to time waits for changes.  A nil clock restores the system clock.
func WithClock(c clock.Interface) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		} else {
			o.clock = clock.System()
		}
	}
}

// WithMeasures sets the metrics a List updates.  Nil fields, or a nil Measures, discard.
func WithMeasures(m *Measures) Option {
	return func(o *options) {
		o.measures = m
	}
}

func newOptions(o ...Option) options {
	opts := options{
		name:   DefaultName,
		logger: sallust.Default(),
		clock:  clock.System(),
	}

	for _, f := range o {
		f(&opts)
	}

	opts.measures = opts.measures.withDefaults()
	return opts
}
