// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrNotACounter = errors.New("account is not a counter")

func (s *service) GetAccount(parentCtx context.Context, address protocol.Address) (*protocol.Account, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.GetAccount")

	account, err := s.virtualMachine.GetAccount(ctx, address)
	if err != nil {
		s.logger.Info("get account failed", trace.LogFieldFrom(ctx), logfields.Account(address), log.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// GetCounter reads a counter account created by the configured counter program
func (s *service) GetCounter(parentCtx context.Context, address protocol.Address) (*CounterState, error) {
	start := time.Now()
	defer s.metrics.getCounterTime.RecordSince(start)

	account, err := s.GetAccount(trace.NewContext(parentCtx, "PublicApi.GetCounter"), address)
	if err != nil {
		return nil, err
	}

	if !account.Owner.Equal(s.config.ProgramId()) {
		return nil, errors.Wrapf(ErrNotACounter, "owned by %s", account.Owner)
	}

	c, ok := counter.DecodeCounter(account.Data)
	if !ok {
		return nil, errors.Wrapf(ErrNotACounter, "data is %d bytes", len(account.Data))
	}

	return &CounterState{Address: account.Address, Count: c.Count}, nil
}
