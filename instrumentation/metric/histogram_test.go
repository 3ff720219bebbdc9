// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_RecordsAndExports(t *testing.T) {
	h := newHistogram("Some.Histogram", 1000, identity)
	for i := int64(1); i <= 100; i++ {
		h.Record(i)
	}

	export := h.Export().(histogramExport)
	require.EqualValues(t, 100, export.Samples)
	require.EqualValues(t, 1, export.Min)
	require.EqualValues(t, 100, export.Max)
	require.InDelta(t, 50.5, export.Avg, 0.5)
}

func TestHistogram_CountsOverflows(t *testing.T) {
	h := newHistogram("Some.Histogram", 1000, identity)
	h.Record(1000000)

	require.EqualValues(t, 1, h.OverflowCount())
	require.EqualValues(t, 0, h.CurrentSamples())
}

func TestHistogram_RotateKeepsRecentWindows(t *testing.T) {
	h := newHistogram("Some.Histogram", 1000, identity)
	h.Record(5)
	h.Rotate()

	require.EqualValues(t, 0, h.CurrentSamples(), "a new window should be empty")
	require.EqualValues(t, 1, h.Export().(histogramExport).Samples, "export should merge recent windows")

	for i := 0; i < histogramWindows; i++ {
		h.Rotate()
	}
	require.EqualValues(t, 0, h.Export().(histogramExport).Samples, "old windows should be dropped")
}

func TestLatency_ExportsMillis(t *testing.T) {
	h := newHistogram("Some.Latency", int64(time.Minute), floatToMillis)
	h.Record(int64(2 * time.Millisecond))

	require.InDelta(t, 2, h.Export().(histogramExport).Max, 0.01)
}

func TestHistogram_LogRowEmptyWhenNoSamples(t *testing.T) {
	h := newHistogram("Some.Histogram", 1000, identity)
	require.Nil(t, h.Export().LogRow())
}
