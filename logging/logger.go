// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Default returns the logger used when nothing else has been configured.
func Default() *zap.Logger {
	return sallust.Default()
}

// New builds a zap Logger from the LoggingKey subtree of the given Viper.  A nil Viper,
// or one without a LoggingKey subtree, produces a logger from sallust's defaults.
func New(v *viper.Viper, options ...zap.Option) (*zap.Logger, error) {
	c, err := FromViper(Sub(v))
	if err != nil {
		return nil, err
	}

	return c.Build(options...)
}
