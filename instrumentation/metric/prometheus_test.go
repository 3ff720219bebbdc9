// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestGauge_ExportPrometheus(t *testing.T) {
	r := NewRegistry()
	status := r.NewGauge("StateStorage.Accounts.Count")

	require.Regexp(t, "# TYPE StateStorage_Accounts_Count gauge", r.ExportPrometheus())
	require.Regexp(t, "StateStorage_Accounts_Count 0", r.ExportPrometheus())

	status.Update(5123441)
	require.Regexp(t, "StateStorage_Accounts_Count 5123441", r.ExportPrometheus())
}

func TestGauge_ExportPrometheusWithLabels(t *testing.T) {
	r := NewRegistry().WithLabel("program", "abcd").WithLabel("node", "n1")
	r.NewGauge("StateStorage.Accounts.Count").Update(7)

	require.Regexp(t, "StateStorage_Accounts_Count\\{node=\"n1\",program=\"abcd\"\\} 7", r.ExportPrometheus())
}

func TestHistogram_ExportPrometheus(t *testing.T) {
	r := NewRegistry().WithLabel("node", "n1")
	histo := r.NewHistogram("Some.Size", 1000)
	histo.Record(10)

	promStr := r.ExportPrometheus()
	require.Regexp(t, "# TYPE Some_Size histogram", promStr)
	require.Equal(t, 7, strings.Count(promStr, "Some_Size{node=\"n1\",aggregation="))
	require.Contains(t, promStr, "Some_Size{node=\"n1\",aggregation=\"count\"} 1\n")
}

func TestRateAndTextAreNotExportedToPrometheus(t *testing.T) {
	r := NewRegistry()
	r.NewRate("Some.Rate").Measure(1)
	r.NewText("Some.Text", "value")

	require.Empty(t, r.ExportPrometheus())
}
