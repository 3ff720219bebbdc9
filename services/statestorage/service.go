// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("state-storage")

type StateStorage interface {
	ReadAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error)
	CommitAccounts(ctx context.Context, allocations []*protocol.Account, updates []*protocol.Account) error
}

type metrics struct {
	readTime      *metric.Histogram
	commitTime    *metric.Histogram
	commits       *metric.Rate
	allocations   *metric.Gauge
	failedCommits *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		readTime:      m.NewLatency("StateStorage.ReadAccount.Time.Millis", 5*time.Second),
		commitTime:    m.NewLatency("StateStorage.CommitAccounts.Time.Millis", 5*time.Second),
		commits:       m.NewRate("StateStorage.CommitAccounts.PerSecond"),
		allocations:   m.NewGauge("StateStorage.Allocations.Count"),
		failedCommits: m.NewGauge("StateStorage.FailedCommits.Count"),
	}
}

type service struct {
	persistence adapter.AccountPersistence
	logger      log.Logger
	metrics     *metrics
}

func NewStateStorage(persistence adapter.AccountPersistence, parent log.Logger, metricFactory metric.Factory) StateStorage {
	return &service{
		persistence: persistence,
		logger:      parent.WithTags(LogTag),
		metrics:     newMetrics(metricFactory),
	}
}

func (s *service) ReadAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error) {
	if !address.IsValid() {
		return nil, errors.Errorf("invalid account address %s", address)
	}

	start := time.Now()
	defer s.metrics.readTime.RecordSince(start)

	return s.persistence.ReadAccount(ctx, address)
}

func (s *service) CommitAccounts(ctx context.Context, allocations []*protocol.Account, updates []*protocol.Account) error {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	start := time.Now()
	defer s.metrics.commitTime.RecordSince(start)

	if len(allocations) == 0 && len(updates) == 0 {
		return nil
	}

	if err := s.persistence.WriteAccounts(ctx, allocations, updates); err != nil {
		s.metrics.failedCommits.Inc()
		if err != adapter.ErrAccountAlreadyExists {
			logger.Error("failed to commit accounts", log.Error(err))
		}
		return err
	}

	s.metrics.commits.Measure(1)
	s.metrics.allocations.Add(int64(len(allocations)))

	for _, account := range allocations {
		logger.Info("account allocated", logfields.Account(account.Address), logfields.Program(account.Owner))
	}
	return nil
}
