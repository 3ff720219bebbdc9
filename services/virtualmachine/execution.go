// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) executeAndCommit(ctx context.Context, logger log.Logger, program *types.ProgramInfo, tx *protocol.Transaction, txHash primitives.Sha256) (*protocol.TransactionReceipt, error) {
	receipt := &protocol.TransactionReceipt{
		Txhash:            txHash,
		TransactionStatus: protocol.TRANSACTION_STATUS_COMMITTED,
	}

	method, found := program.Method(tx.MethodName)
	if !found {
		receipt.ExecutionResult = protocol.EXECUTION_RESULT_ERROR_INPUT
		receipt.ErrorMessage = fmt.Sprintf("method %s not found in program %s", tx.MethodName, program.Name)
		return receipt, nil
	}

	unlock, err := s.locks.lockAll(ctx, writableAccounts(tx.Accounts))
	if err != nil {
		return systemError(receipt, err), errors.Wrap(err, "failed locking accounts")
	}
	defer unlock()

	state, err := loadTransientState(ctx, s.stateStorage, program.Id, tx.Accounts)
	if err != nil {
		logger.Error("failed loading transaction accounts", log.Error(err))
		return systemError(receipt, err), err
	}

	executionContext := types.NewContext(program.Id, state.accounts, state)
	err = runMethod(ctx, method, executionContext)
	receipt.Logs = executionContext.Logs()
	for _, line := range receipt.Logs {
		logger.Info(line, logfields.ProgramLogTag, logfields.Program(program.Id))
	}

	if err != nil {
		return failed(receipt, err), nil
	}

	allocations, updates, err := state.diff()
	if err != nil {
		logger.Error("program made an illegal state change", log.Error(err))
		receipt.ExecutionResult = protocol.EXECUTION_RESULT_ERROR_UNEXPECTED
		receipt.ErrorMessage = err.Error()
		return receipt, nil
	}

	if err := s.stateStorage.CommitAccounts(ctx, allocations, updates); err == adapter.ErrAccountAlreadyExists {
		return failed(receipt, types.ErrAccountAlreadyInUse), nil
	} else if err != nil {
		return systemError(receipt, err), errors.Wrap(err, "failed committing accounts")
	}

	receipt.ExecutionResult = protocol.EXECUTION_RESULT_SUCCESS
	receipt.OutputValue = executionContext.OutputValue()
	return receipt, nil
}

func runMethod(ctx context.Context, method types.MethodInfo, c *types.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("method %s panicked: %v", method.Name, r)
		}
	}()
	return method.Implementation(ctx, c)
}

// failed fills the receipt of an instruction that returned err; the transaction stays committed but changes nothing
func failed(receipt *protocol.TransactionReceipt, err error) *protocol.TransactionReceipt {
	receipt.ErrorMessage = err.Error()

	var programError *types.ProgramError
	if errors.As(err, &programError) {
		receipt.ErrorCode = programError.Code
		if programError.IsConstraintViolation() {
			receipt.ExecutionResult = protocol.EXECUTION_RESULT_ERROR_INPUT
		} else {
			receipt.ExecutionResult = protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT
		}
		return receipt
	}

	receipt.ExecutionResult = protocol.EXECUTION_RESULT_ERROR_UNEXPECTED
	return receipt
}

func systemError(receipt *protocol.TransactionReceipt, err error) *protocol.TransactionReceipt {
	receipt.TransactionStatus = protocol.TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR
	receipt.ExecutionResult = protocol.EXECUTION_RESULT_NOT_EXECUTED
	receipt.ErrorMessage = err.Error()
	return receipt
}

func writableAccounts(metas []protocol.AccountMeta) []protocol.Address {
	addresses := make([]protocol.Address, 0, len(metas))
	for _, meta := range metas {
		if meta.IsWritable {
			addresses = append(addresses, meta.Address)
		}
	}
	return addresses
}
