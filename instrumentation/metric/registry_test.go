// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRegistry_ExportAllAndGet(t *testing.T) {
	r := NewRegistry()
	g := r.NewGauge("Some.Gauge")
	r.NewText("Some.Text", "hello")
	r.NewLatency("Some.Latency", time.Second)

	all := r.ExportAll()
	require.Len(t, all, 3)
	require.Equal(t, g, r.Get("Some.Gauge"))
	require.Nil(t, r.Get("Missing"))
	require.Contains(t, r.String(), "metric Some.Text: hello")
}

func TestRegistry_ReportEveryStopsWithContext(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("Some.Gauge").Update(1)
	r.NewLatency("Some.Latency", time.Second).Record(int64(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	waiter := r.ReportEvery(ctx, time.Millisecond, log.DefaultTestingLogger(t))
	time.Sleep(5 * time.Millisecond)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	waiter.WaitUntilShutdown(shutdownCtx)
}

func TestRuntimeReporter(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewRuntimeReporter(ctx, r, log.DefaultTestingLogger(t))
	require.NotNil(t, r.Get("Runtime.HeapAlloc.Bytes"))
	require.NotEmpty(t, r.Get("Runtime.Version").(*Text).Value())
}
