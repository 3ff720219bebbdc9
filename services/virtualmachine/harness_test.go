// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
	"github.com/orbs-network/orbs-counter-go/services/statestorage"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-go/test/builders"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/stretchr/testify/require"
	"testing"
)

var counterProgramId = builders.AddressForTests(0xc0)

type harness struct {
	t           *testing.T
	ctx         context.Context
	persistence adapter.AccountPersistence
	vm          *service
	logOutput   *log.TestOutput
}

func newHarness(t *testing.T, ctx context.Context, programs ...*types.ProgramInfo) *harness {
	return newHarnessWithPersistence(t, ctx, memory.NewAccountPersistence(metric.NewRegistry()), programs...)
}

func newHarnessWithPersistence(t *testing.T, ctx context.Context, persistence adapter.AccountPersistence, programs ...*types.ProgramInfo) *harness {
	logOutput := log.NewTestOutput(t, log.NewHumanReadableFormatter())
	logger := log.GetLogger().WithOutput(logOutput)
	registry := metric.NewRegistry()

	programs = append(programs, counter.NewProgram(counterProgramId))
	cfg := config.ForCounterTests(counterProgramId)
	storage := statestorage.NewStateStorage(persistence, logger, registry)

	return &harness{
		t:           t,
		ctx:         ctx,
		persistence: persistence,
		vm:          NewVirtualMachine(ctx, cfg, storage, logger, registry, programs...).(*service),
		logOutput:   logOutput,
	}
}

func (h *harness) process(tx *protocol.SignedTransaction) *protocol.TransactionReceipt {
	receipt, err := h.vm.ProcessTransaction(h.ctx, tx)
	require.NoError(h.t, err)
	require.NotNil(h.t, receipt)
	return receipt
}

func (h *harness) counterTx(method primitives.MethodName, counterAddress protocol.Address, user signer.TransactionSigner) *protocol.SignedTransaction {
	return builders.Transaction(counterProgramId, method).
		WithCounterAccounts(counterAddress, user).
		WithSigners(user).
		Build()
}

func (h *harness) initializeTx(counterKey signer.TransactionSigner) *protocol.SignedTransaction {
	return builders.Transaction(counterProgramId, counter.METHOD_INITIALIZE).
		WithInitializeAccounts(counterKey, builders.DefaultSigner()).
		Build()
}

func (h *harness) initialize(counterKey signer.TransactionSigner) *protocol.TransactionReceipt {
	return h.process(h.initializeTx(counterKey))
}

func (h *harness) increment(counterAddress protocol.Address) *protocol.TransactionReceipt {
	return h.process(h.counterTx(counter.METHOD_INCREMENT, counterAddress, builders.DefaultSigner()))
}

func (h *harness) decrement(counterAddress protocol.Address) *protocol.TransactionReceipt {
	return h.process(h.counterTx(counter.METHOD_DECREMENT, counterAddress, builders.DefaultSigner()))
}

func (h *harness) storeCounter(counterAddress protocol.Address, count uint64) {
	c := &counter.Counter{Count: count}
	err := h.persistence.WriteAccounts(h.ctx, []*protocol.Account{{Address: counterAddress, Owner: counterProgramId, Data: c.Encode()}}, nil)
	require.NoError(h.t, err)
}

func (h *harness) count(counterAddress protocol.Address) uint64 {
	account, err := h.vm.GetAccount(h.ctx, counterAddress)
	require.NoError(h.t, err)
	require.NotNil(h.t, account, "counter account does not exist")

	c, ok := counter.DecodeCounter(account.Data)
	require.True(h.t, ok, "counter account did not decode")
	return c.Count
}

func requireSuccess(t *testing.T, receipt *protocol.TransactionReceipt, expectedCount uint64) {
	require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, receipt.TransactionStatus, receipt.ErrorMessage)
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipt.ExecutionResult, receipt.ErrorMessage)
	require.Equal(t, expectedCount, receipt.OutputValue)
}

func requireFailure(t *testing.T, receipt *protocol.TransactionReceipt, result protocol.ExecutionResult, code uint32) {
	require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, receipt.TransactionStatus, receipt.ErrorMessage)
	require.Equal(t, result, receipt.ExecutionResult, receipt.ErrorMessage)
	require.Equal(t, code, receipt.ErrorCode, receipt.ErrorMessage)
}

func requireRejected(t *testing.T, receipt *protocol.TransactionReceipt, status protocol.TransactionStatus) {
	require.Equal(t, status, receipt.TransactionStatus, receipt.ErrorMessage)
	require.Equal(t, protocol.EXECUTION_RESULT_NOT_EXECUTED, receipt.ExecutionResult)
}
