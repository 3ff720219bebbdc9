// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"sync"
)

type metrics struct {
	accountCount *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		accountCount: m.NewGauge("StateStorage.InMemoryAccountPersistence.Accounts.Count"),
	}
}

type AccountPersistence struct {
	metrics *metrics

	mu struct {
		sync.RWMutex
		accounts map[string]*protocol.Account
	}
}

func NewAccountPersistence(metricFactory metric.Factory) *AccountPersistence {
	p := &AccountPersistence{
		metrics: newMetrics(metricFactory),
	}
	p.mu.accounts = make(map[string]*protocol.Account)
	return p
}

func (p *AccountPersistence) ReadAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mu.accounts[address.KeyForMap()].Clone(), nil
}

func (p *AccountPersistence) WriteAccounts(ctx context.Context, allocations []*protocol.Account, updates []*protocol.Account) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, account := range allocations {
		if _, exists := p.mu.accounts[account.Address.KeyForMap()]; exists {
			return adapter.ErrAccountAlreadyExists
		}
	}

	for _, account := range allocations {
		p.mu.accounts[account.Address.KeyForMap()] = account.Clone()
	}
	for _, account := range updates {
		p.mu.accounts[account.Address.KeyForMap()] = account.Clone()
	}

	p.metrics.accountCount.Update(int64(len(p.mu.accounts)))
	return nil
}

func (p *AccountPersistence) AccountCount(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.mu.accounts), nil
}
