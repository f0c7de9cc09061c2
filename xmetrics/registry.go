// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry and a go-kit metrics.Provider all in one.
//
// The Provider implementation works slightly differently than the go-kit implementation.  For any metric that is already defined
// the provider returns a new go-kit wrapper for that metric.  New, ad hoc metrics are cached and returned by subsequent calls
// to the Provider methods.  Requesting an existing metric as a different type panics.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// NewRegistry creates a Registry from a (possibly nil) Options and zero or more modules.  Every Metric
// from the options and the modules is preregistered.  Metrics without a namespace or subsystem take on
// the ones from the options.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, mf := range append([]Module{o.Module}, modules...) {
		for _, m := range mf() {
			if err := r.preregister(m); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (r *registry) preregister(m Metric) error {
	if len(m.Name) == 0 {
		return errors.New("metric names cannot be empty")
	}

	if _, ok := r.cache[m.Name]; ok {
		return fmt.Errorf("duplicate metric with name: %s", m.Name)
	}

	if len(m.Namespace) == 0 {
		m.Namespace = r.namespace
	}

	if len(m.Subsystem) == 0 {
		m.Subsystem = r.subsystem
	}

	c, err := NewCollector(m)
	if err != nil {
		return err
	}

	if err := r.Registry.Register(c); err != nil {
		return fmt.Errorf("error while preregistering metric %s: %w", m.Name, err)
	}

	r.cache[m.Name] = c
	return nil
}

// collector returns the cached collector with the given name, creating and registering an
// unlabeled one of the given type if necessary.
func (r *registry) collector(name, metricType string) prometheus.Collector {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c, err := NewCollector(Metric{
		Name:      name,
		Type:      metricType,
		Namespace: r.namespace,
		Subsystem: r.subsystem,
	})

	if err != nil {
		panic(err)
	}

	if err := r.Registry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			panic(err)
		}

		c = already.ExistingCollector
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	if cv, ok := r.collector(name, CounterType).(*prometheus.CounterVec); ok {
		return gokitprometheus.NewCounter(cv)
	}

	panic(fmt.Errorf("the metric %s is not a counter", name))
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	if gv, ok := r.collector(name, GaugeType).(*prometheus.GaugeVec); ok {
		return gokitprometheus.NewGauge(gv)
	}

	panic(fmt.Errorf("the metric %s is not a gauge", name))
}

// NewHistogram will return a Histogram for either a Summary or Histogram.  This is different
// behavior from metrics.Provider.
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	switch vec := r.collector(name, HistogramType).(type) {
	case *prometheus.HistogramVec:
		return gokitprometheus.NewHistogram(vec)
	case *prometheus.SummaryVec:
		return gokitprometheus.NewSummary(vec)
	default:
		panic(fmt.Errorf("the metric %s is not a histogram or summary", name))
	}
}

func (r *registry) Stop() {
}
