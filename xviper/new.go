// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetEnvPrefix sets the environment prefix.  Dashes and dots in keys are mapped to underscores, so
// that a flag such as batch-every can be set with PREFIX_BATCH_EVERY.
func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigFile uses the value of the given flag, if set, as the fully-qualified configuration file.
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configFile := f.Value.String()
			if len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// ReadInConfig reads the configuration.  When optional is true, a configuration file that cannot be
// found is not an error.  An explicitly named file that does not exist is always an error.
func ReadInConfig(optional bool) Option {
	return func(v *viper.Viper) error {
		err := v.ReadInConfig()

		var notFound viper.ConfigFileNotFoundError
		if optional && errors.As(err, &notFound) {
			return nil
		}

		return err
	}
}

// StdOptions applies the usual configuration layout for an application:  the /etc/<app>,
// $HOME/.<app> and current directory search paths, environment variables prefixed with the
// application name, a configuration name equal to the application name, and pflag bindings.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		err := AddConfigPaths(
			fmt.Sprintf("/etc/%s", applicationName),
			fmt.Sprintf("$HOME/.%s", applicationName),
			".",
		)(v)

		if err == nil {
			err = SetEnvPrefix(applicationName)(v)
		}

		if err == nil {
			err = AutomaticEnv(v)
		}

		if err == nil {
			err = SetConfigName(applicationName)(v)
		}

		if err == nil {
			err = BindPFlags(fs)(v)
		}

		return err
	}
}

func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
