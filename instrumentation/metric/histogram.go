// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/codahale/hdrhistogram"
	"github.com/orbs-network/scribe/log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

const histogramWindows = 5

type Histogram struct {
	namedMetric
	scale         func(float64) float64
	overflowCount int64

	mu    sync.Mutex
	histo *hdrhistogram.WindowedHistogram
}

type histogramExport struct {
	Name    string
	Min     float64
	P50     float64
	P95     float64
	P99     float64
	Max     float64
	Avg     float64
	Samples int64
}

func newHistogram(name string, max int64, scale func(float64) float64) *Histogram {
	return &Histogram{
		namedMetric: namedMetric{name: name},
		scale:       scale,
		histo:       hdrhistogram.NewWindowed(histogramWindows, 1, max, 3),
	}
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(int64(time.Since(t)))
}

func (h *Histogram) Record(measurement int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.histo.Current.RecordValue(measurement); err != nil {
		atomic.AddInt64(&h.overflowCount, 1)
	}
}

// Rotate starts a new window; exports cover the last histogramWindows windows
func (h *Histogram) Rotate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.histo.Rotate()
}

func (h *Histogram) CurrentSamples() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.histo.Current.TotalCount()
}

func (h *Histogram) OverflowCount() int64 {
	return atomic.LoadInt64(&h.overflowCount)
}

func (h *Histogram) String() string {
	e := h.Export().(histogramExport)
	return fmt.Sprintf(
		"metric %s: [min=%f, p50=%f, p95=%f, p99=%f, max=%f, avg=%f, samples=%d, overflows=%d]\n",
		e.Name, e.Min, e.P50, e.P95, e.P99, e.Max, e.Avg, e.Samples, h.OverflowCount())
}

func (h *Histogram) Export() exportedMetric {
	h.mu.Lock()
	defer h.mu.Unlock()
	histo := h.histo.Merge()

	return histogramExport{
		h.name,
		h.scale(float64(histo.Min())),
		h.scale(float64(histo.ValueAtQuantile(50))),
		h.scale(float64(histo.ValueAtQuantile(95))),
		h.scale(float64(histo.ValueAtQuantile(99))),
		h.scale(float64(histo.Max())),
		h.scale(histo.Mean()),
		histo.TotalCount(),
	}
}

func (h histogramExport) LogRow() []*log.Field {
	if h.Samples == 0 {
		return nil
	}

	return []*log.Field{
		log.String("metric", h.Name),
		log.String("metric-type", "histogram"),
		log.Float64("min", h.Min),
		log.Float64("p50", h.P50),
		log.Float64("p95", h.P95),
		log.Float64("p99", h.P99),
		log.Float64("max", h.Max),
		log.Float64("avg", h.Avg),
		log.Int64("samples", h.Samples),
	}
}

func (h *Histogram) exportPrometheus(labelString string) string {
	e := h.Export().(histogramExport)
	name := prometheusName(h.name)

	rows := prometheusType(h.name, "histogram")
	for _, row := range []struct {
		aggregation string
		value       float64
	}{
		{"min", e.Min},
		{"median", e.P50},
		{"95p", e.P95},
		{"99p", e.P99},
		{"max", e.Max},
		{"avg", e.Avg},
		{"count", float64(e.Samples)},
	} {
		rows += fmt.Sprintf("%s{%saggregation=\"%s\"} %s\n", name, labelPrefix(labelString), row.aggregation, strconv.FormatFloat(row.value, 'f', -1, 64))
	}
	return rows
}

func identity(v float64) float64 {
	return v
}

func floatToMillis(nanoseconds float64) float64 {
	return nanoseconds / 1e+6
}
