// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/crypto/digest"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

func (s *service) SendTransaction(parentCtx context.Context, signedTx *protocol.SignedTransaction) (*protocol.TransactionReceipt, error) {
	ctx, cancel := context.WithTimeout(trace.NewContext(parentCtx, "PublicApi.SendTransaction"), s.config.SendTransactionTimeout())
	defer cancel()

	s.metrics.totalTransactionsFromClients.Inc()
	s.metrics.transactionsRate.Measure(1)

	if signedTx == nil || signedTx.Transaction == nil {
		err := errors.New("client request is nil")
		s.logger.Info("send transaction received missing input", log.Error(err))
		return nil, err
	}

	start := time.Now()
	txHash := digest.CalcTxHash(signedTx.Transaction)
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(txHash), log.String("flow", "checkpoint"))
	logger.Info("send transaction request received", logfields.Program(signedTx.Transaction.ProgramId), logfields.Method(signedTx.Transaction.MethodName))

	receipt, err := s.virtualMachine.ProcessTransaction(ctx, signedTx)
	if err != nil {
		logger.Info("processing transaction failed", log.Error(err))
		return receipt, err
	}

	switch {
	case receipt.TransactionStatus == protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION:
		s.metrics.totalTransactionsDuplicate.Inc()
	case receipt.TransactionStatus.IsRejected():
		s.metrics.totalTransactionsRejected.Inc()
	default:
		s.metrics.sendTransactionTime.RecordSince(start)
	}

	logger.Info("send transaction processed", log.Stringable("tx-status", receipt.TransactionStatus), log.Stringable("execution-result", receipt.ExecutionResult))
	return receipt, nil
}
