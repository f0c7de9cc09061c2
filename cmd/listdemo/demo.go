// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/syncseq/list"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchSize is the number of items a producer appends under one lock
const batchSize = 3

type result struct {
	produced int
	consumed int
}

func newItem(producer int) string {
	return fmt.Sprintf("producer-%d/%s", producer, ksuid.New())
}

func produce(ctx context.Context, c Config, l *list.List[string], id int) (int, error) {
	produced := 0
	for i := 1; i <= c.Items; i++ {
		if c.BatchEvery > 0 && i%c.BatchEvery == 0 {
			err := l.Do(ctx, func(v *list.View[string]) error {
				for b := 0; b < batchSize; b++ {
					v.Append(newItem(id))
				}

				return nil
			})

			if err != nil {
				return produced, err
			}

			produced += batchSize
			continue
		}

		if err := l.Append(ctx, newItem(id)); err != nil {
			return produced, err
		}

		produced++
	}

	sallust.Get(ctx).Debug("producer finished", zap.Int("producer", id), zap.Int("produced", produced))
	return produced, nil
}

// drain pops from the front until the list is empty
func drain(ctx context.Context, l *list.List[string]) (int, error) {
	consumed := 0
	for {
		_, err := l.PopAt(ctx, 0)
		switch {
		case errors.Is(err, list.ErrIndexOutOfBounds):
			return consumed, nil
		case err != nil:
			return consumed, err
		}

		consumed++
	}
}

// consume drains the list each time it changes, and exits once the producers are done and
// the list is empty
func consume(ctx context.Context, c Config, l *list.List[string], id int, producersDone <-chan struct{}) (int, error) {
	consumed := 0
	for {
		n, err := drain(ctx, l)
		consumed += n
		if err != nil {
			return consumed, err
		}

		select {
		case <-producersDone:
			n, err = drain(ctx, l)
			consumed += n
			sallust.Get(ctx).Debug("consumer finished", zap.Int("consumer", id), zap.Int("consumed", consumed))
			return consumed, err
		default:
		}

		l.WaitForChange(ctx, c.Wait)
	}
}

// run fans out the producers and consumers.  Each goroutine logs with the logger carried by ctx.
func run(ctx context.Context, c Config, l *list.List[string]) (result, error) {
	var (
		g, gctx       = errgroup.WithContext(ctx)
		producers     sync.WaitGroup
		producersDone = make(chan struct{})

		produced atomic.Int64
		consumed atomic.Int64
	)

	producers.Add(c.Producers)
	for p := 0; p < c.Producers; p++ {
		id := p
		g.Go(func() error {
			defer producers.Done()
			n, err := produce(gctx, c, l, id)
			produced.Add(int64(n))
			return err
		})
	}

	g.Go(func() error {
		producers.Wait()
		close(producersDone)
		return nil
	})

	for cn := 0; cn < c.Consumers; cn++ {
		id := cn
		g.Go(func() error {
			n, err := consume(gctx, c, l, id, producersDone)
			consumed.Add(int64(n))
			return err
		})
	}

	err := g.Wait()
	return result{produced: int(produced.Load()), consumed: int(consumed.Load())}, err
}

// logMetrics logs the value of every list metric in the registry
func logMetrics(logger *zap.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, f := range families {
		if !strings.Contains(f.GetName(), "list_") {
			continue
		}

		for _, m := range f.GetMetric() {
			fields := []zap.Field{zap.String("name", f.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}

			switch f.GetType() {
			case dto.MetricType_COUNTER:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			}

			logger.Info("metric", fields...)
		}
	}

	return nil
}
