// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/crypto/digest"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
	"github.com/orbs-network/orbs-counter-go/services/statestorage"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"time"
)

var LogTag = log.Service("virtual-machine")

type VirtualMachine interface {
	govnr.ShutdownWaiter

	// ProcessTransaction always returns a receipt; the error is set only when the node itself failed
	ProcessTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*protocol.TransactionReceipt, error)
	GetAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error)
}

type Config interface {
	TransactionExpirationWindow() time.Duration
	TransactionFutureGrace() time.Duration
}

type metrics struct {
	processTime  *metric.Histogram
	committed    *metric.Rate
	rejected     *metric.Rate
	programError *metric.Gauge
	inputError   *metric.Gauge
	unexpected   *metric.Gauge
	duplicates   *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		processTime:  m.NewLatency("VirtualMachine.ProcessTransaction.Time.Millis", 10*time.Second),
		committed:    m.NewRate("VirtualMachine.CommittedTransactions.PerSecond"),
		rejected:     m.NewRate("VirtualMachine.RejectedTransactions.PerSecond"),
		programError: m.NewGauge("VirtualMachine.ExecutionResult.SmartContractError.Count"),
		inputError:   m.NewGauge("VirtualMachine.ExecutionResult.InputError.Count"),
		unexpected:   m.NewGauge("VirtualMachine.ExecutionResult.Unexpected.Count"),
		duplicates:   m.NewGauge("VirtualMachine.DuplicateTransactions.Count"),
	}
}

type service struct {
	govnr.TreeSupervisor

	config       Config
	stateStorage statestorage.StateStorage
	programs     map[string]*types.ProgramInfo
	locks        *accountLocks
	processed    *processedTransactions
	logger       log.Logger
	metrics      *metrics
	now          func() time.Time
}

func NewVirtualMachine(ctx context.Context, config Config, stateStorage statestorage.StateStorage, parent log.Logger, metricFactory metric.Factory, programs ...*types.ProgramInfo) VirtualMachine {
	logger := parent.WithTags(LogTag)

	s := &service{
		config:       config,
		stateStorage: stateStorage,
		programs:     make(map[string]*types.ProgramInfo),
		locks:        newAccountLocks(),
		processed:    newProcessedTransactions(metricFactory),
		logger:       logger,
		metrics:      newMetrics(metricFactory),
		now:          time.Now,
	}

	for _, program := range programs {
		s.programs[program.Id.KeyForMap()] = program
		logger.Info("program registered", log.String("program-name", program.Name), logfields.Program(program.Id))
	}

	s.Supervise(s.startCleaningProcess(ctx))

	return s
}

func (s *service) ProcessTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*protocol.TransactionReceipt, error) {
	start := time.Now()
	defer s.metrics.processTime.RecordSince(start)

	if signedTx == nil || signedTx.Transaction == nil {
		s.metrics.rejected.Measure(1)
		return &protocol.TransactionReceipt{TransactionStatus: protocol.TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST, ExecutionResult: protocol.EXECUTION_RESULT_NOT_EXECUTED}, nil
	}

	txHash := digest.CalcTxHash(signedTx.Transaction)
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(txHash), logfields.Method(signedTx.Transaction.MethodName))

	if rejection := s.validateTransaction(signedTx, txHash); rejection != nil {
		logger.Info("transaction rejected", log.Stringable("status", rejection.status), log.Error(rejection))
		s.metrics.rejected.Measure(1)
		return rejection.receipt(txHash), nil
	}

	program, found := s.programs[signedTx.Transaction.ProgramId.KeyForMap()]
	if !found {
		logger.Info("transaction rejected, program not deployed", logfields.Program(signedTx.Transaction.ProgramId))
		s.metrics.rejected.Measure(1)
		return rejected(protocol.TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED).receipt(txHash), nil
	}

	original, reserved := s.processed.reserve(txHash)
	if !reserved {
		logger.Info("duplicate transaction")
		s.metrics.duplicates.Inc()
		return duplicateOf(original, txHash), nil
	}

	receipt, err := s.executeAndCommit(ctx, logger, program, signedTx.Transaction, txHash)
	if err != nil || receipt.TransactionStatus != protocol.TRANSACTION_STATUS_COMMITTED {
		s.processed.release(txHash)
		s.metrics.rejected.Measure(1)
		return receipt, err
	}

	s.processed.complete(receipt, signedTx.Transaction.Timestamp)
	s.metrics.committed.Measure(1)
	s.countResult(receipt.ExecutionResult)
	logger.Info("transaction committed", log.Stringable("execution-result", receipt.ExecutionResult), log.Uint64("output-value", receipt.OutputValue))
	return receipt, nil
}

func (s *service) GetAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error) {
	return s.stateStorage.ReadAccount(ctx, address)
}

func (s *service) countResult(result protocol.ExecutionResult) {
	switch result {
	case protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT:
		s.metrics.programError.Inc()
	case protocol.EXECUTION_RESULT_ERROR_INPUT:
		s.metrics.inputError.Inc()
	case protocol.EXECUTION_RESULT_ERROR_UNEXPECTED:
		s.metrics.unexpected.Inc()
	}
}

func duplicateOf(original *protocol.TransactionReceipt, txHash primitives.Sha256) *protocol.TransactionReceipt {
	if original == nil {
		// the first copy is still executing
		return &protocol.TransactionReceipt{
			Txhash:            txHash,
			TransactionStatus: protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION,
			ExecutionResult:   protocol.EXECUTION_RESULT_NOT_EXECUTED,
		}
	}

	duplicate := *original
	duplicate.TransactionStatus = protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION
	return &duplicate
}
