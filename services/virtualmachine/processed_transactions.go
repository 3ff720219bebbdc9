// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"sync"
	"time"
)

const maxCleanupInterval = time.Minute

type processedTransaction struct {
	receipt   *protocol.TransactionReceipt
	timestamp primitives.TimestampNano
}

// processedTransactions remembers committed transactions until they expire so a replay is answered as a duplicate
type processedTransactions struct {
	mu        sync.Mutex
	committed map[string]*processedTransaction
	inFlight  map[string]bool

	count *metric.Gauge
}

func newProcessedTransactions(metricFactory metric.Factory) *processedTransactions {
	return &processedTransactions{
		committed: make(map[string]*processedTransaction),
		inFlight:  make(map[string]bool),
		count:     metricFactory.NewGauge("VirtualMachine.ProcessedTransactions.Count"),
	}
}

// reserve claims txHash for execution. When it was already claimed it returns false together with the
// committed receipt, which is nil while the first claimant is still executing.
func (p *processedTransactions) reserve(txHash primitives.Sha256) (*protocol.TransactionReceipt, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := txHash.KeyForMap()
	if tx, found := p.committed[key]; found {
		return tx.receipt, false
	}
	if p.inFlight[key] {
		return nil, false
	}
	p.inFlight[key] = true
	return nil, true
}

func (p *processedTransactions) release(txHash primitives.Sha256) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.inFlight, txHash.KeyForMap())
}

func (p *processedTransactions) complete(receipt *protocol.TransactionReceipt, timestamp primitives.TimestampNano) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := receipt.Txhash.KeyForMap()
	delete(p.inFlight, key)
	p.committed[key] = &processedTransaction{receipt: receipt, timestamp: timestamp}
	p.count.Update(int64(len(p.committed)))
}

func (p *processedTransactions) clearTransactionsOlderThan(timestamp primitives.TimestampNano) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, tx := range p.committed {
		if tx.timestamp < timestamp {
			delete(p.committed, key)
		}
	}
	p.count.Update(int64(len(p.committed)))
}

// a transaction older than the expiration window is rejected before the duplicate check, so it need not be remembered
func (s *service) startCleaningProcess(ctx context.Context) govnr.ShutdownWaiter {
	interval := s.config.TransactionExpirationWindow()
	if interval <= 0 || interval > maxCleanupInterval {
		interval = maxCleanupInterval
	}

	return synchronization.NewPeriodicalTrigger(ctx, "processed transactions cleanup", interval, s.logger, func() {
		expiry := s.config.TransactionExpirationWindow() + s.config.TransactionFutureGrace()
		s.processed.clearTransactionsOlderThan(primitives.TimestampNano(s.now().Add(-expiry).UnixNano()))
	}, nil)
}
