// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import "github.com/spf13/viper"

type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

type keyUnmarshaler interface {
	UnmarshalKey(string, interface{}, ...viper.DecoderConfigOption) error
}

// UnmarshalSeveral unmarshals the whole configuration into each of the given values, stopping
// at the first error.
func UnmarshalSeveral(u unmarshaler, v ...interface{}) error {
	var err error
	for i := 0; err == nil && i < len(v); i++ {
		err = u.Unmarshal(v[i])
	}

	return err
}

// UnmarshalKeys unmarshals each key's subtree into its associated value, stopping at the first error.
// Keys are processed in the order given.
func UnmarshalKeys(u keyUnmarshaler, keys []string, v ...interface{}) error {
	var err error
	for i := 0; err == nil && i < len(keys) && i < len(v); i++ {
		err = u.UnmarshalKey(keys[i], v[i])
	}

	return err
}

type defaulter interface {
	SetDefault(string, interface{})
}

type Defaults map[string]interface{}

func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}
