// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModule() []Metric {
	return []Metric{
		{
			Name:       "counter",
			Type:       CounterType,
			Help:       "a test counter",
			LabelNames: []string{"outcome"},
		},
		{
			Name: "gauge",
			Type: GaugeType,
			Help: "a test gauge",
		},
		{
			Name:    "histogram",
			Type:    HistogramType,
			Buckets: []float64{0.5, 1.0, 1.5},
		},
		{
			Name:   "summary",
			Type:   SummaryType,
			MaxAge: 15 * time.Hour,
		},
	}
}

func testOptions() *Options {
	return &Options{
		Namespace:               "test",
		Subsystem:               "basic",
		Pedantic:                true,
		DisableGoCollector:      true,
		DisableProcessCollector: true,
	}
}

func findFamily(t *testing.T, g prometheus.Gatherer, name string) *dto.MetricFamily {
	families, err := g.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}

	return nil
}

func testNewRegistryModules(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(testOptions(), testModule)
	require.NoError(err)
	require.NotNil(r)

	r.NewCounter("counter").With("outcome", "success").Add(2.0)
	r.NewGauge("gauge").Set(12.0)
	r.NewHistogram("histogram", 0).Observe(0.75)
	r.NewHistogram("summary", 0).Observe(3.0)

	counter := findFamily(t, r, "test_basic_counter")
	require.NotNil(counter)
	require.Len(counter.GetMetric(), 1)
	assert.Equal(2.0, counter.GetMetric()[0].GetCounter().GetValue())
	assert.Equal("a test counter", counter.GetHelp())

	gauge := findFamily(t, r, "test_basic_gauge")
	require.NotNil(gauge)
	assert.Equal(12.0, gauge.GetMetric()[0].GetGauge().GetValue())

	histogram := findFamily(t, r, "test_basic_histogram")
	require.NotNil(histogram)
	assert.Equal(uint64(1), histogram.GetMetric()[0].GetHistogram().GetSampleCount())

	summary := findFamily(t, r, "test_basic_summary")
	require.NotNil(summary)
	assert.Equal(uint64(1), summary.GetMetric()[0].GetSummary().GetSampleCount())
}

func testNewRegistryAdHoc(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(testOptions(), testModule)
	require.NoError(err)

	r.NewCounter("new_counter").Add(1.0)
	r.NewCounter("new_counter").Add(1.0)
	r.NewGauge("new_gauge").Add(5.0)
	r.NewHistogram("new_histogram", 10).Observe(1.0)

	counter := findFamily(t, r, "test_basic_new_counter")
	require.NotNil(counter)
	assert.Equal(2.0, counter.GetMetric()[0].GetCounter().GetValue())

	gauge := findFamily(t, r, "test_basic_new_gauge")
	require.NotNil(gauge)
	assert.Equal(5.0, gauge.GetMetric()[0].GetGauge().GetValue())

	assert.NotNil(findFamily(t, r, "test_basic_new_histogram"))
}

func testNewRegistryWrongType(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(testOptions(), testModule)
	require.NoError(err)

	assert.Panics(func() { r.NewCounter("gauge") })
	assert.Panics(func() { r.NewCounter("histogram") })
	assert.Panics(func() { r.NewGauge("counter") })
	assert.Panics(func() { r.NewGauge("summary") })
	assert.Panics(func() { r.NewHistogram("counter", 0) })
	assert.NotPanics(func() { r.Stop() })
}

func testNewRegistryErrors(t *testing.T) {
	testData := []struct {
		name    string
		options *Options
		modules []Module
	}{
		{
			name:    "NoName",
			options: testOptions(),
			modules: []Module{func() []Metric { return []Metric{{Type: CounterType}} }},
		},
		{
			name:    "BadType",
			options: testOptions(),
			modules: []Module{func() []Metric { return []Metric{{Name: "bad", Type: "nosuchtype"}} }},
		},
		{
			name:    "Duplicate",
			options: &Options{DisableGoCollector: true, DisableProcessCollector: true, Metrics: testModule()},
			modules: []Module{testModule},
		},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			r, err := NewRegistry(record.options, record.modules...)
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func testNewRegistryNilOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(nil)
	require.NoError(err)

	r.NewCounter("nil_options").Add(1.0)
	assert.NotNil(findFamily(t, r, DefaultNamespace+"_"+DefaultSubsystem+"_nil_options"))
}

func TestNewRegistry(t *testing.T) {
	t.Run("Modules", testNewRegistryModules)
	t.Run("AdHoc", testNewRegistryAdHoc)
	t.Run("WrongType", testNewRegistryWrongType)
	t.Run("Errors", testNewRegistryErrors)
	t.Run("NilOptions", testNewRegistryNilOptions)
}

func TestNewCollector(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	c, err := NewCollector(Metric{Name: "counter", Type: CounterType})
	require.NoError(err)
	assert.IsType((*prometheus.CounterVec)(nil), c)

	c, err = NewCollector(Metric{Name: "gauge", Type: GaugeType})
	require.NoError(err)
	assert.IsType((*prometheus.GaugeVec)(nil), c)

	c, err = NewCollector(Metric{Name: "histogram", Type: HistogramType})
	require.NoError(err)
	assert.IsType((*prometheus.HistogramVec)(nil), c)

	c, err = NewCollector(Metric{Name: "summary", Type: SummaryType})
	require.NoError(err)
	assert.IsType((*prometheus.SummaryVec)(nil), c)

	_, err = NewCollector(Metric{Type: CounterType})
	assert.Error(err)

	_, err = NewCollector(Metric{Name: "unknown", Type: "unknown"})
	assert.Error(err)
}
