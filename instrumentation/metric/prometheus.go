// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"strconv"
	"strings"
)

/**
Format reference: https://prometheus.io/docs/instrumenting/exposition_formats/
For info on Prometheus labels, see: https://prometheus.io/docs/practices/naming/#labels
*/
func (r *inMemoryRegistry) ExportPrometheus() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labelsString := r.labelsString()

	var rows []string
	for _, metric := range r.mu.metrics {
		rows = append(rows, metric.exportPrometheus(labelsString))
	}

	return strings.Join(rows, "")
}

func (g *Gauge) exportPrometheus(labelString string) string {
	name := prometheusName(g.name)
	value := strconv.FormatInt(g.Value(), 10)
	if len(labelString) > 0 {
		return prometheusType(g.name, "gauge") + fmt.Sprintf("%s{%s} %s\n", name, labelString, value)
	}
	return prometheusType(g.name, "gauge") + fmt.Sprintf("%s %s\n", name, value)
}

// rates are reported to the log only
func (r *Rate) exportPrometheus(labelString string) string {
	return ""
}

// texts are reported to the log only
func (t *Text) exportPrometheus(labelString string) string {
	return ""
}

func prometheusName(name string) string {
	return strings.Replace(name, ".", "_", -1)
}

func prometheusType(name string, typeString string) string {
	return fmt.Sprintf("# TYPE %s %s\n", prometheusName(name), typeString)
}

func labelPrefix(labelString string) string {
	if labelString == "" {
		return ""
	}
	return labelString + ","
}
