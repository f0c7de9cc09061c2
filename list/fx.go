// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/syncseq/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideIn holds the optional dependencies of a List provided through uber/fx
type ProvideIn struct {
	fx.In

	Logger   *zap.Logger       `optional:"true"`
	Clock    clock.Interface   `optional:"true"`
	Provider provider.Provider `optional:"true"`
}

// Provide supplies an empty *List[T] with the given name to an fx application.  When a
// provider.Provider is available, it must have the metrics from Metrics preregistered.
func Provide[T comparable](name string) fx.Option {
	return fx.Provide(
		func(in ProvideIn) *List[T] {
			o := []Option{
				WithName(name),
				WithLogger(in.Logger),
				WithClock(in.Clock),
			}

			if in.Provider != nil {
				o = append(o, WithMeasures(NewMeasures(in.Provider)))
			}

			return New[T](nil, o...)
		},
	)
}
