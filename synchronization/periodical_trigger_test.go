// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestPeriodicalTrigger_FiresRepeatedly(t *testing.T) {
	var ticks int32
	p := NewPeriodicalTrigger(context.Background(), "test trigger", time.Millisecond, log.DefaultTestingLogger(t), func() { atomic.AddInt32(&ticks, 1) }, nil)
	defer p.Stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&ticks) >= 3
	}, time.Second, time.Millisecond, "expected at least three ticks")
}

func TestPeriodicalTrigger_StopRunsOnStopAndHalts(t *testing.T) {
	var ticks, stopped int32
	p := NewPeriodicalTrigger(context.Background(), "test trigger", time.Millisecond, log.DefaultTestingLogger(t), func() { atomic.AddInt32(&ticks, 1) }, func() { atomic.AddInt32(&stopped, 1) })

	p.Stop()
	require.EqualValues(t, 1, atomic.LoadInt32(&stopped), "onStop should run before Stop returns")

	ticksAtStop := atomic.LoadInt32(&ticks)
	time.Sleep(5 * time.Millisecond)
	require.Equal(t, ticksAtStop, atomic.LoadInt32(&ticks), "no ticks expected after stop")
}

func TestPeriodicalTrigger_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPeriodicalTrigger(ctx, "test trigger", time.Hour, log.DefaultTestingLogger(t), func() {}, nil)

	cancel()
	select {
	case <-p.Closed:
	case <-time.After(time.Second):
		t.Fatal("trigger should close once its context is cancelled")
	}
}
