// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"fmt"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type TransactionStatus uint16

const (
	TRANSACTION_STATUS_RESERVED                           TransactionStatus = 0
	TRANSACTION_STATUS_COMMITTED                          TransactionStatus = 1
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION              TransactionStatus = 2
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION       TransactionStatus = 3
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED TransactionStatus = 4
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE   TransactionStatus = 5
	TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME     TransactionStatus = 6
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH        TransactionStatus = 7
	TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE         TransactionStatus = 8
	TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED      TransactionStatus = 9
	TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR              TransactionStatus = 10
	TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST    TransactionStatus = 11
)

var transactionStatusNames = map[TransactionStatus]string{
	TRANSACTION_STATUS_RESERVED:                           "TRANSACTION_STATUS_RESERVED",
	TRANSACTION_STATUS_COMMITTED:                          "TRANSACTION_STATUS_COMMITTED",
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION:              "TRANSACTION_STATUS_DUPLICATE_TRANSACTION",
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION:       "TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED: "TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE:   "TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE",
	TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME:     "TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME",
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH:        "TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH",
	TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE:         "TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE",
	TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED:      "TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED",
	TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR:              "TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR",
	TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST:    "TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST",
}

func (s TransactionStatus) String() string {
	if name, ok := transactionStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsRejected is true for every status under which the transaction was never executed.
func (s TransactionStatus) IsRejected() bool {
	return s != TRANSACTION_STATUS_COMMITTED && s != TRANSACTION_STATUS_DUPLICATE_TRANSACTION && s != TRANSACTION_STATUS_RESERVED
}

type ExecutionResult uint16

const (
	EXECUTION_RESULT_RESERVED             ExecutionResult = 0
	EXECUTION_RESULT_SUCCESS              ExecutionResult = 1
	EXECUTION_RESULT_ERROR_SMART_CONTRACT ExecutionResult = 2
	EXECUTION_RESULT_ERROR_INPUT          ExecutionResult = 3
	EXECUTION_RESULT_ERROR_UNEXPECTED     ExecutionResult = 4
	EXECUTION_RESULT_NOT_EXECUTED         ExecutionResult = 5
)

func (r ExecutionResult) String() string {
	switch r {
	case EXECUTION_RESULT_RESERVED:
		return "EXECUTION_RESULT_RESERVED"
	case EXECUTION_RESULT_SUCCESS:
		return "EXECUTION_RESULT_SUCCESS"
	case EXECUTION_RESULT_ERROR_SMART_CONTRACT:
		return "EXECUTION_RESULT_ERROR_SMART_CONTRACT"
	case EXECUTION_RESULT_ERROR_INPUT:
		return "EXECUTION_RESULT_ERROR_INPUT"
	case EXECUTION_RESULT_ERROR_UNEXPECTED:
		return "EXECUTION_RESULT_ERROR_UNEXPECTED"
	case EXECUTION_RESULT_NOT_EXECUTED:
		return "EXECUTION_RESULT_NOT_EXECUTED"
	}
	return "UNKNOWN"
}

type TransactionReceipt struct {
	Txhash            primitives.Sha256
	TransactionStatus TransactionStatus
	ExecutionResult   ExecutionResult
	ErrorCode         uint32
	ErrorMessage      string
	Logs              []string
	OutputValue       uint64
}

func (r *TransactionReceipt) String() string {
	return fmt.Sprintf("{Txhash:%s,TransactionStatus:%s,ExecutionResult:%s,ErrorCode:%d,OutputValue:%d}",
		r.Txhash, r.TransactionStatus, r.ExecutionResult, r.ErrorCode, r.OutputValue)
}

// Account is a persisted record together with the host metadata kept beside its data.
type Account struct {
	Address Address
	Owner   Address
	Data    []byte
}

func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return &Account{
		Address: append(Address{}, a.Address...),
		Owner:   append(Address{}, a.Owner...),
		Data:    data,
	}
}
