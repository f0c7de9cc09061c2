// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/syncseq/list"
	"github.com/xmidt-org/syncseq/logging"
	"github.com/xmidt-org/syncseq/xmetrics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testRunCounts(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		ctx     = context.Background()
		l       = list.New[string](nil)
		c       = Config{Producers: 3, Consumers: 2, Items: 7, Wait: 10 * time.Millisecond, BatchEvery: 3}
	)

	r, err := run(sallust.With(ctx, logging.NewTestLogger(t)), c, l)
	require.NoError(err)

	// each producer makes 5 single appends and 2 batches
	assert.Equal(3*(5+2*batchSize), r.produced)
	assert.Equal(r.produced, r.consumed)

	empty, err := l.IsEmpty(ctx)
	require.NoError(err)
	assert.True(empty)
}

func testRunNoBatches(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		l       = list.New[string](nil)
		c       = Config{Producers: 1, Consumers: 4, Items: 20, Wait: time.Millisecond}
	)

	r, err := run(sallust.With(context.Background(), logging.NewTestLogger(t)), c, l)
	require.NoError(err)
	assert.Equal(20, r.produced)
	assert.Equal(20, r.consumed)
}

func testRunCanceled(t *testing.T) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		l           = list.New[string](nil)
		c           = Config{Producers: 1, Consumers: 1, Items: 5, Wait: time.Millisecond}
	)

	cancel()
	_, err := run(sallust.With(ctx, logging.NewTestLogger(t)), c, l)
	assert.ErrorIs(t, err, context.Canceled)
}

func testRunContextLogger(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		l       = list.New[string](nil)
		c       = Config{Producers: 2, Consumers: 1, Items: 3, Wait: time.Millisecond}

		core, logs = observer.New(zapcore.DebugLevel)
	)

	_, err := run(sallust.With(context.Background(), zap.New(core)), c, l)
	require.NoError(err)
	assert.Equal(2, logs.FilterMessage("producer finished").Len())
	assert.Equal(1, logs.FilterMessage("consumer finished").Len())
}

func TestRun(t *testing.T) {
	t.Run("Counts", testRunCounts)
	t.Run("NoBatches", testRunNoBatches)
	t.Run("Canceled", testRunCanceled)
	t.Run("ContextLogger", testRunContextLogger)
}

func TestNewItem(t *testing.T) {
	var (
		assert = assert.New(t)
		first  = newItem(2)
		second = newItem(2)
	)

	assert.True(strings.HasPrefix(first, "producer-2/"))
	assert.NotEqual(first, second)
}

func TestLogMetrics(t *testing.T) {
	var (
		assert     = assert.New(t)
		require    = require.New(t)
		core, logs = observer.New(zapcore.InfoLevel)
	)

	r, err := xmetrics.NewRegistry(
		&xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true},
		list.Metrics,
	)

	require.NoError(err)
	l := list.New([]int{1}, list.WithMeasures(list.NewMeasures(r)))
	require.NoError(l.Append(context.Background(), 2))

	require.NoError(logMetrics(zap.New(core), r))
	assert.NotZero(logs.FilterMessage("metric").FilterField(zap.String("name", "xmidt_syncseq_list_length")).Len())
	assert.NotZero(logs.FilterMessage("metric").FilterField(zap.String("op", "append")).Len())
}

func TestDemo(t *testing.T) {
	t.Run("Flags", func(t *testing.T) {
		assert.Equal(t, 0, demo([]string{
			"--producers", "2",
			"--consumers", "3",
			"--items", "6",
			"--wait", "5ms",
			"--batch-every", "2",
		}))
	})

	t.Run("File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "listdemo.yaml")
		require.NoError(t, os.WriteFile(file, []byte("producers: 2\nconsumers: 1\nitems: 4\nmetrics:\n  disableGoCollector: true\n"), 0o600))
		assert.Equal(t, 0, demo([]string{"--file", file}))
	})

	t.Run("BadFlag", func(t *testing.T) {
		assert.Equal(t, 1, demo([]string{"--nosuchflag"}))
	})

	t.Run("BadConfiguration", func(t *testing.T) {
		assert.Equal(t, 1, demo([]string{"--producers", "0"}))
	})

	t.Run("MissingFile", func(t *testing.T) {
		assert.Equal(t, 1, demo([]string{"--file", filepath.Join(t.TempDir(), "missing.yaml")}))
	})
}
