// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	DefaultNamespace = "xmidt"
	DefaultSubsystem = "syncseq"

	// MetricsKey is the Viper subkey under which metrics options are conventionally stored.
	MetricsKey = "metrics"
)

// Options is the configurable options for creating a Prometheus registry
type Options struct {
	// Namespace is the global default namespace for metrics which don't define a namespace (or for ad hoc metrics).
	// If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem is the global default subsystem for metrics which don't define a subsystem (or for ad hoc metrics).
	// If not supplied, DefaultSubsystem is used.
	Subsystem string

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().  By default, this is false.  Set
	// to true for testing or development.
	Pedantic bool

	// DisableGoCollector controls whether the Go Collector is registered with the Registry.
	DisableGoCollector bool

	// DisableProcessCollector controls whether the Process Collector is registered with the Registry.
	DisableProcessCollector bool

	// Metrics defines a set of predefined metrics in addition to those supplied by modules.
	// Duplicate metrics, i.e. the same name, cause an error.
	Metrics []Metric
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) pedantic() bool {
	if o != nil {
		return o.Pedantic
	}

	return false
}

func (o *Options) disableGoCollector() bool {
	if o != nil {
		return o.DisableGoCollector
	}

	return false
}

func (o *Options) disableProcessCollector() bool {
	if o != nil {
		return o.DisableProcessCollector
	}

	return false
}

func (o *Options) registry() *prometheus.Registry {
	var pr *prometheus.Registry

	if o.pedantic() {
		pr = prometheus.NewPedanticRegistry()
	} else {
		pr = prometheus.NewRegistry()
	}

	if !o.disableGoCollector() {
		pr.MustRegister(collectors.NewGoCollector())
	}

	if !o.disableProcessCollector() {
		pr.MustRegister(collectors.NewProcessCollector(
			collectors.ProcessCollectorOpts{
				Namespace: o.namespace(),
			},
		))
	}

	return pr
}

// Module acts as a metrics module function using the (normally) configured metrics.
func (o *Options) Module() []Metric {
	if o != nil {
		return o.Metrics
	}

	return nil
}
