// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/scribe/log"
	"sort"
	"strings"
	"sync"
	"time"
)

type Factory interface {
	NewHistogram(name string, maxValue int64) *Histogram
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
	NewText(name string, defaultValue ...string) *Text
}

type Registry interface {
	Factory
	WithLabel(key string, value string) Registry
	String() string
	Get(name string) metric
	ExportAll() map[string]exportedMetric
	ExportPrometheus() string
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) govnr.ShutdownWaiter
}

type exportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() exportedMetric
	exportPrometheus(labelString string) string
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

func NewRegistry() Registry {
	return &inMemoryRegistry{labels: map[string]string{}}
}

type inMemoryRegistry struct {
	labels map[string]string
	mu     struct {
		sync.RWMutex
		metrics []metric
	}
}

func (r *inMemoryRegistry) WithLabel(key string, value string) Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels[key] = value
	return r
}

func (r *inMemoryRegistry) register(m metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.metrics = append(r.mu.metrics, m)
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	m := newRate(name)
	r.register(m)
	return m
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	g := &Gauge{namedMetric: namedMetric{name: name}}
	r.register(g)
	return g
}

func (r *inMemoryRegistry) NewHistogram(name string, maxValue int64) *Histogram {
	h := newHistogram(name, maxValue, identity)
	r.register(h)
	return h
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	h := newHistogram(name, maxDuration.Nanoseconds(), floatToMillis)
	r.register(h)
	return h
}

func (r *inMemoryRegistry) NewText(name string, defaultValue ...string) *Text {
	t := newText(name, defaultValue...)
	r.register(t)
	return t
}

func (r *inMemoryRegistry) Get(name string) metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.mu.metrics {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func (r *inMemoryRegistry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s strings.Builder
	for _, m := range r.mu.metrics {
		s.WriteString(m.String())
	}

	return s.String()
}

func (r *inMemoryRegistry) ExportAll() map[string]exportedMetric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[string]exportedMetric)
	for _, m := range r.mu.metrics {
		all[m.Name()] = m.Export()
	}

	return all
}

func (r *inMemoryRegistry) labelsString() string {
	keys := make([]string, 0, len(r.labels))
	for key := range r.labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		labels = append(labels, fmt.Sprintf("%s=\"%s\"", key, r.labels[key]))
	}
	return strings.Join(labels, ",")
}

func (r *inMemoryRegistry) report(logger log.Logger) {
	for _, value := range r.ExportAll() {
		if logRow := value.LogRow(); logRow != nil {
			logger.Metric(logRow...)
		}
	}
}

func (r *inMemoryRegistry) rotateHistograms() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.mu.metrics {
		if h, ok := m.(*Histogram); ok {
			h.Rotate()
		}
	}
}

// ReportEvery logs every metric once per interval and once more when ctx ends
func (r *inMemoryRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) govnr.ShutdownWaiter {
	return synchronization.NewPeriodicalTrigger(ctx, "Metric registry reporter", interval, logger, func() {
		r.report(logger)
		r.rotateHistograms()
	}, func() {
		r.report(logger)
	})
}
