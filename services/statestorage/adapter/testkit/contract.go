// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package testkit holds the behaviour every AccountPersistence implementation must share
package testkit

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

func Address(b byte) protocol.Address {
	address := make(protocol.Address, protocol.ADDRESS_SIZE_BYTES)
	address[protocol.ADDRESS_SIZE_BYTES-1] = b
	return address
}

func AccountOf(address protocol.Address, owner protocol.Address, data ...byte) *protocol.Account {
	return &protocol.Account{Address: address, Owner: owner, Data: data}
}

func RunAccountPersistenceContract(t *testing.T, newPersistence func(t *testing.T) adapter.AccountPersistence) {
	ctx := context.Background()
	owner := Address(0xff)

	t.Run("ReadMissingAccountReturnsNil", func(t *testing.T) {
		p := newPersistence(t)
		account, err := p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		require.Nil(t, account)
	})

	t.Run("AllocateThenRead", func(t *testing.T) {
		p := newPersistence(t)
		require.NoError(t, p.WriteAccounts(ctx, []*protocol.Account{AccountOf(Address(1), owner, 1, 0, 0, 0, 0, 0, 0, 0)}, nil))

		account, err := p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		require.NotNil(t, account)
		require.True(t, account.Owner.Equal(owner))
		require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, account.Data)

		count, err := p.AccountCount(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("AllocateExistingAddressFailsWholeBatch", func(t *testing.T) {
		p := newPersistence(t)
		require.NoError(t, p.WriteAccounts(ctx, []*protocol.Account{AccountOf(Address(1), owner, 1)}, nil))

		err := p.WriteAccounts(ctx,
			[]*protocol.Account{AccountOf(Address(2), owner, 2), AccountOf(Address(1), owner, 3)},
			[]*protocol.Account{AccountOf(Address(1), owner, 4)})
		require.Equal(t, adapter.ErrAccountAlreadyExists, err)

		account, err := p.ReadAccount(ctx, Address(2))
		require.NoError(t, err)
		require.Nil(t, account, "partial batch was written")

		account, err = p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		require.Equal(t, []byte{1}, account.Data)
	})

	t.Run("UpdateReplacesData", func(t *testing.T) {
		p := newPersistence(t)
		require.NoError(t, p.WriteAccounts(ctx, []*protocol.Account{AccountOf(Address(1), owner, 1)}, nil))
		require.NoError(t, p.WriteAccounts(ctx, nil, []*protocol.Account{AccountOf(Address(1), owner, 2)}))

		account, err := p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		require.Equal(t, []byte{2}, account.Data)
	})

	t.Run("ReadReturnsACopy", func(t *testing.T) {
		p := newPersistence(t)
		require.NoError(t, p.WriteAccounts(ctx, []*protocol.Account{AccountOf(Address(1), owner, 1)}, nil))

		account, err := p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		account.Data[0] = 9

		again, err := p.ReadAccount(ctx, Address(1))
		require.NoError(t, err)
		require.Equal(t, []byte{1}, again.Data)
	})
}
