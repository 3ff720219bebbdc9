// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/scribe/log"
)

type StatusResponse struct {
	Uptime int64

	Transactions struct {
		Processed   int64
		Rejected    int64
		Duplicate   int64
		Allocations int64
	}

	Version config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	metrics := s.metricRegistry

	status := StatusResponse{
		Uptime:  int64(time.Since(s.startTime).Seconds()),
		Version: config.GetVersion(),
	}
	status.Transactions.Processed = metricGetGaugeValue(s.logger, metrics, "VirtualMachine.ProcessedTransactions.Count")
	status.Transactions.Rejected = metricGetGaugeValue(s.logger, metrics, "PublicApi.TotalTransactionsRejected.Count")
	status.Transactions.Duplicate = metricGetGaugeValue(s.logger, metrics, "PublicApi.TotalTransactionsErrDuplicate.Count")
	status.Transactions.Allocations = metricGetGaugeValue(s.logger, metrics, "StateStorage.Allocations.Count")

	data, _ := json.MarshalIndent(status, "", "  ")

	_, err := w.Write(data)
	if err != nil {
		s.logger.Info("error writing status response", log.Error(err))
	}
}

func metricGetGaugeValue(logger log.Logger, metrics metric.Registry, name string) (value int64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Info("could not retrieve metric", log.String("metric", name))
		}
	}()

	rows := metrics.Get(name).Export().LogRow()
	value = rows[len(rows)-1].Int
	return value
}
