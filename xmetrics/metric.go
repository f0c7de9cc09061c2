// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CounterType   = "counter"
	GaugeType     = "gauge"
	HistogramType = "histogram"
	SummaryType   = "summary"
)

var errNoName = errors.New("a name is required for a metric")

// Module is a function type that returns prebuilt metrics.  Packages expose their metrics through
// a Module, e.g. list.Metrics.
type Module func() []Metric

// Metric describes a single metric that will be preregistered.  This type loosely
// corresponds with Prometheus' Opts struct.  The fields in this type are the union
// of all necessary data for creating Prometheus metrics.
type Metric struct {
	// Name is the required name of this metric.
	Name string

	// Type is the required type of metric.  This value must be one of the constants defined in this package.
	Type string

	// Namespace is the namespace of this metric.  The enclosing Options' Namespace is used if this is not supplied.
	Namespace string

	// Subsystem is the subsystem of this metric.  The enclosing Options' Subsystem is used if this is not supplied.
	Subsystem string

	// Help is the help string for this metric.  If not supplied, the metric's name is used
	Help string

	// ConstLabels are the Prometheus ConstLabels for this metric.  This field is optional.
	ConstLabels map[string]string

	// LabelNames are the Prometheus label names for this metric.  This field is optional.
	LabelNames []string

	// Buckets describes the observation buckets for a histogram.  Ignored for other metric types.
	Buckets []float64

	// Objectives is the Summary objectives.  Ignored for other metric types.
	Objectives map[float64]float64

	// MaxAge is the Summary MaxAge.  Ignored for other metric types.
	MaxAge time.Duration
}

// NewCollector creates a Prometheus vector from a Metric descriptor.  The name must not be empty.
// If not supplied in the metric, namespace, subsystem, and help all take on defaults.
func NewCollector(m Metric) (prometheus.Collector, error) {
	if len(m.Name) == 0 {
		return nil, errNoName
	}

	if len(m.Namespace) == 0 {
		m.Namespace = DefaultNamespace
	}

	if len(m.Subsystem) == 0 {
		m.Subsystem = DefaultSubsystem
	}

	if len(m.Help) == 0 {
		m.Help = m.Name
	}

	switch m.Type {
	case CounterType:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	case GaugeType:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	case HistogramType:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			Buckets:     m.Buckets,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	case SummaryType:
		return prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			Objectives:  m.Objectives,
			MaxAge:      m.MaxAge,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	default:
		return nil, fmt.Errorf("unsupported metric type: %s", m.Type)
	}
}
