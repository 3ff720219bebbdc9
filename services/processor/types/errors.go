// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"fmt"
)

// Program error numbering: host constraint violations live below ERROR_CODE_CUSTOM_OFFSET,
// errors declared by a program start at it.
const (
	ERROR_CODE_ACCOUNT_ALREADY_IN_USE = 1

	ERROR_CODE_CONSTRAINT_MUT    = 2000
	ERROR_CODE_CONSTRAINT_SIGNER = 2002

	ERROR_CODE_ACCOUNT_DID_NOT_DESERIALIZE    = 3003
	ERROR_CODE_ACCOUNT_NOT_ENOUGH_KEYS        = 3005
	ERROR_CODE_ACCOUNT_OWNED_BY_WRONG_PROGRAM = 3007
	ERROR_CODE_ACCOUNT_NOT_INITIALIZED        = 3012
	ERROR_CODE_ACCOUNT_DATA_SIZE_MISMATCH     = 3014

	ERROR_CODE_CUSTOM_OFFSET = 6000
)

type ProgramError struct {
	Code    uint32
	Name    string
	Message string
	Account string
}

func (e *ProgramError) Error() string {
	if e.Account != "" {
		return fmt.Sprintf("Error Code: %s. Error Number: %d. Error Message: %s. Account: %s.", e.Name, e.Code, e.Message, e.Account)
	}
	return fmt.Sprintf("Error Code: %s. Error Number: %d. Error Message: %s.", e.Name, e.Code, e.Message)
}

// IsConstraintViolation is true for errors raised while validating the accounts passed to an
// instruction, as opposed to errors raised by the instruction logic itself
func (e *ProgramError) IsConstraintViolation() bool {
	return e.Code < ERROR_CODE_CUSTOM_OFFSET
}

// NewCustomError declares a program specific error; index is the position in the program's error list
func NewCustomError(index uint32, name string, message string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_CUSTOM_OFFSET + index, Name: name, Message: message}
}

var ErrAccountAlreadyInUse = &ProgramError{Code: ERROR_CODE_ACCOUNT_ALREADY_IN_USE, Name: "AccountAlreadyInUse", Message: "An account with this address already exists"}

func ConstraintMut(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_CONSTRAINT_MUT, Name: "ConstraintMut", Message: "A mut constraint was violated", Account: account}
}

func ConstraintSigner(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_CONSTRAINT_SIGNER, Name: "ConstraintSigner", Message: "A signer constraint was violated", Account: account}
}

func AccountDidNotDeserialize(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_ACCOUNT_DID_NOT_DESERIALIZE, Name: "AccountDidNotDeserialize", Message: "Failed to deserialize the account", Account: account}
}

func AccountNotEnoughKeys() *ProgramError {
	return &ProgramError{Code: ERROR_CODE_ACCOUNT_NOT_ENOUGH_KEYS, Name: "AccountNotEnoughKeys", Message: "Not enough account keys given to the instruction"}
}

func AccountOwnedByWrongProgram(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_ACCOUNT_OWNED_BY_WRONG_PROGRAM, Name: "AccountOwnedByWrongProgram", Message: "The given account is owned by a different program than expected", Account: account}
}

func AccountNotInitialized(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_ACCOUNT_NOT_INITIALIZED, Name: "AccountNotInitialized", Message: "The program expected this account to be already initialized", Account: account}
}

func AccountDataSizeMismatch(account string) *ProgramError {
	return &ProgramError{Code: ERROR_CODE_ACCOUNT_DATA_SIZE_MISMATCH, Name: "AccountDataSizeMismatch", Message: "The account data is not of the expected size", Account: account}
}
