// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/syncseq/list"
	"github.com/xmidt-org/syncseq/logging"
	"github.com/xmidt-org/syncseq/xmetrics"
	"github.com/xmidt-org/syncseq/xviper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	applicationName = "listdemo"
)

// Config is the demo's configuration, drawn from flags, the environment, and an optional file
type Config struct {
	Producers  int           `mapstructure:"producers"`
	Consumers  int           `mapstructure:"consumers"`
	Items      int           `mapstructure:"items"`
	Wait       time.Duration `mapstructure:"wait"`
	BatchEvery int           `mapstructure:"batch-every"`
}

// defaults are the settings that have no flag
var defaults = xviper.Defaults{
	logging.LoggingKey + ".level":       "info",
	logging.LoggingKey + ".encoding":    "json",
	logging.LoggingKey + ".outputPaths": []string{"stdout"},
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.Int("producers", 3, "the number of goroutines appending items")
	fs.Int("consumers", 2, "the number of goroutines draining items")
	fs.Int("items", 10, "the number of appends each producer makes")
	fs.Duration("wait", 100*time.Millisecond, "how long a consumer waits for a change before checking again")
	fs.Int("batch-every", 4, "every nth append is a batch of three under one lock, 0 disables batches")
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file")
	return fs
}

func newViper(arguments []string) (*viper.Viper, error) {
	fs := newFlagSet()
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	v, err := xviper.New(
		xviper.StdOptions(applicationName, fs),
		xviper.BindConfigFile(fs, xviper.DefaultFileFlag),
		xviper.ReadInConfig(true),
	)

	if err == nil {
		xviper.ApplyDefaults(v, defaults)
	}

	return v, err
}

func provideConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := xviper.UnmarshalSeveral(v, &c); err != nil {
		return Config{}, err
	}

	if c.Producers < 1 || c.Consumers < 1 || c.Items < 0 || c.BatchEvery < 0 {
		return Config{}, fmt.Errorf("invalid configuration: %+v", c)
	}

	return c, nil
}

func provideRegistry(v *viper.Viper) (xmetrics.Registry, provider.Provider, error) {
	var o xmetrics.Options
	if err := xviper.UnmarshalKeys(v, []string{xmetrics.MetricsKey}, &o); err != nil {
		return nil, nil, err
	}

	r, err := xmetrics.NewRegistry(&o, list.Metrics)
	return r, r, err
}

func demo(arguments []string) int {
	v, err := newViper(arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to configure %s: %s\n", applicationName, err)
		return 1
	}

	logger, err := logging.New(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create logger: %s\n", err)
		return 1
	}

	defer logger.Sync()

	var (
		config   Config
		registry xmetrics.Registry
		l        *list.List[string]
	)

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger { return &fxevent.ZapLogger{Logger: logger} }),
		fx.Supply(v, logger),
		fx.Provide(provideConfig, provideRegistry),
		list.Provide[string](applicationName),
		fx.Populate(&config, &registry, &l),
	)

	if err := app.Err(); err != nil {
		logger.Error("unable to build the application", zap.Error(err))
		return 1
	}

	ctx := sallust.With(context.Background(), logger)
	if err := app.Start(ctx); err != nil {
		logger.Error("unable to start the application", zap.Error(err))
		return 1
	}

	defer app.Stop(ctx)

	r, err := run(ctx, config, l)
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}

	logger.Info("demo complete", zap.Int("produced", r.produced), zap.Int("consumed", r.consumed))
	if err := logMetrics(logger, registry); err != nil {
		logger.Error("unable to gather metrics", zap.Error(err))
		return 1
	}

	if r.produced != r.consumed {
		logger.Error("items were lost", zap.Int("produced", r.produced), zap.Int("consumed", r.consumed))
		return 1
	}

	return 0
}

func main() {
	os.Exit(demo(os.Args[1:]))
}
