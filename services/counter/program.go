// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

const PROGRAM_NAME = "Counter"

const (
	METHOD_INITIALIZE = primitives.MethodName("initialize")
	METHOD_INCREMENT  = primitives.MethodName("increment")
	METHOD_DECREMENT  = primitives.MethodName("decrement")
)

// Account positions expected by every method: the counter first, the signing user second
const (
	ACCOUNT_INDEX_COUNTER = 0
	ACCOUNT_INDEX_USER    = 1
	ACCOUNTS_COUNT        = 2
)

func NewProgram(programId protocol.Address) *types.ProgramInfo {
	return &types.ProgramInfo{
		Name: PROGRAM_NAME,
		Id:   programId,
		Methods: map[primitives.MethodName]types.MethodInfo{
			METHOD_INITIALIZE: {Name: METHOD_INITIALIZE, Implementation: initialize},
			METHOD_INCREMENT:  {Name: METHOD_INCREMENT, Implementation: increment},
			METHOD_DECREMENT:  {Name: METHOD_DECREMENT, Implementation: decrement},
		},
	}
}

func initialize(ctx context.Context, c *types.Context) error {
	if len(c.Accounts) < ACCOUNTS_COUNT {
		return types.AccountNotEnoughKeys()
	}
	counterAccount, user := c.Accounts[ACCOUNT_INDEX_COUNTER], c.Accounts[ACCOUNT_INDEX_USER]

	// the new counter signs for its own address
	if err := validate(
		requireWritable("counter", counterAccount),
		requireSigner("counter", counterAccount),
		requireSigner("user", user),
		requireWritable("user", user),
	); err != nil {
		return err
	}

	if err := c.System.CreateAccount(ctx, user, counterAccount, CounterAccountSize, c.ProgramId); err != nil {
		return err
	}

	counter := &Counter{Count: 0}
	counter.EncodeInto(counterAccount.Data)
	c.Msg("Counter account created. Current count: %d", counter.Count)
	c.SetOutputValue(counter.Count)
	return nil
}

func increment(ctx context.Context, c *types.Context) error {
	return update(c, func(count uint64) (uint64, error) {
		if count == ^uint64(0) {
			return count, ErrOverflow
		}
		return count + 1, nil
	}, "incremented")
}

func decrement(ctx context.Context, c *types.Context) error {
	return update(c, func(count uint64) (uint64, error) {
		if count == 0 {
			return count, ErrUnderflow
		}
		return count - 1, nil
	}, "decremented")
}

func update(c *types.Context, apply func(count uint64) (uint64, error), verb string) error {
	if len(c.Accounts) < ACCOUNTS_COUNT {
		return types.AccountNotEnoughKeys()
	}
	counterAccount, user := c.Accounts[ACCOUNT_INDEX_COUNTER], c.Accounts[ACCOUNT_INDEX_USER]

	if err := validate(
		requireWritable("counter", counterAccount),
		requireOwnedByProgram("counter", counterAccount, c.ProgramId),
		requireDataSize("counter", counterAccount, CounterAccountSize),
		requireSigner("user", user),
	); err != nil {
		return err
	}

	counter, ok := DecodeCounter(counterAccount.Data)
	if !ok {
		return types.AccountDidNotDeserialize("counter")
	}

	c.Msg("Previous counter: %d", counter.Count)
	next, err := apply(counter.Count)
	if err != nil {
		return err
	}

	counter.Count = next
	counter.EncodeInto(counterAccount.Data)
	c.Msg("Counter %s. Current count: %d", verb, counter.Count)
	c.SetOutputValue(counter.Count)
	return nil
}
