// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGauge_Add(t *testing.T) {
	g := Gauge{}
	g.Add(10)

	require.EqualValues(t, 10, g.Value(), "gauge value differed from expected")
}

func TestGauge_IncDec(t *testing.T) {
	g := Gauge{}
	g.Inc()
	g.Inc()
	g.Dec()

	require.EqualValues(t, 1, g.Value(), "gauge value differed from expected")
}

func TestGauge_Update(t *testing.T) {
	g := Gauge{}
	g.Add(5)
	g.Update(123)

	require.EqualValues(t, 123, g.Value(), "gauge value differed from expected")
}

func TestGauge_LogRow(t *testing.T) {
	g := &Gauge{namedMetric: namedMetric{name: "Some.Gauge"}}
	g.Update(3)

	row := g.Export().LogRow()
	require.Len(t, row, 3)
	require.Equal(t, "Some.Gauge", row[0].StringVal)
	require.EqualValues(t, 3, row[2].Int)
}
