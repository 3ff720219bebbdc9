// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-counter-go/protocol"
)

type MockVirtualMachine struct {
	mock.Mock
}

func (m *MockVirtualMachine) ProcessTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*protocol.TransactionReceipt, error) {
	ret := m.Called(ctx, signedTx)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.TransactionReceipt), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *MockVirtualMachine) GetAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error) {
	ret := m.Called(ctx, address)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.Account), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *MockVirtualMachine) WaitUntilShutdown(shutdownContext context.Context) {
}
