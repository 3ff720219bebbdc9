// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
	"time"
)

var LogTag = log.Service("public-api")

type Config interface {
	ProgramId() protocol.Address
	SendTransactionTimeout() time.Duration
}

type PublicApi interface {
	SendTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*protocol.TransactionReceipt, error)
	GetAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error)
	GetCounter(ctx context.Context, address protocol.Address) (*CounterState, error)
}

type CounterState struct {
	Address protocol.Address
	Count   uint64
}

type metrics struct {
	sendTransactionTime          *metric.Histogram
	getCounterTime               *metric.Histogram
	totalTransactionsFromClients *metric.Gauge
	totalTransactionsRejected    *metric.Gauge
	totalTransactionsDuplicate   *metric.Gauge
	transactionsRate             *metric.Rate
}

func newMetrics(factory metric.Factory, sendTransactionTimeout time.Duration) *metrics {
	return &metrics{
		sendTransactionTime:          factory.NewLatency("PublicApi.SendTransactionProcessingTime.Millis", sendTransactionTimeout),
		getCounterTime:               factory.NewLatency("PublicApi.GetCounterProcessingTime.Millis", time.Second),
		totalTransactionsFromClients: factory.NewGauge("PublicApi.TotalTransactionsFromClients.Count"),
		totalTransactionsRejected:    factory.NewGauge("PublicApi.TotalTransactionsRejected.Count"),
		totalTransactionsDuplicate:   factory.NewGauge("PublicApi.TotalTransactionsErrDuplicate.Count"),
		transactionsRate:             factory.NewRate("PublicApi.TransactionsFromClients.PerSecond"),
	}
}

type service struct {
	config         Config
	virtualMachine virtualmachine.VirtualMachine
	logger         log.Logger
	metrics        *metrics
}

func NewPublicApi(config Config, virtualMachine virtualmachine.VirtualMachine, logger log.Logger, metricFactory metric.Factory) PublicApi {
	return &service{
		config:         config,
		virtualMachine: virtualMachine,
		logger:         logger.WithTags(LogTag),
		metrics:        newMetrics(metricFactory, config.SendTransactionTimeout()),
	}
}
