// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
)

const (
	// LoggingKey is the Viper subkey under which logging should be stored.
	// FromViper *does not* assume this key.
	LoggingKey = "log"
)

// Sub returns the standard child Viper, using LoggingKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper produces a sallust.Config from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (sallust.Config, error) {
	var c sallust.Config
	if v != nil {
		if err := v.Unmarshal(&c); err != nil {
			return sallust.Config{}, err
		}
	}

	return c, nil
}
