// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// ProgramInfo is what a program registers with the virtual machine
type ProgramInfo struct {
	Name    string
	Id      protocol.Address
	Methods map[primitives.MethodName]MethodInfo
}

type MethodImplementation func(ctx context.Context, c *Context) error

type MethodInfo struct {
	Name           primitives.MethodName
	Implementation MethodImplementation
}

func (p *ProgramInfo) Method(name primitives.MethodName) (MethodInfo, bool) {
	method, found := p.Methods[name]
	return method, found
}

// AccountInfo is the view a program gets of one account listed in the transaction.
// Owner is empty while the account was never allocated.
type AccountInfo struct {
	Address    protocol.Address
	Owner      protocol.Address
	Data       []byte
	IsSigner   bool
	IsWritable bool
}

func (a *AccountInfo) IsInitialized() bool {
	return len(a.Owner) > 0
}

type SystemSdk interface {
	// CreateAccount allocates space zeroed bytes at account's address and assigns them to owner.
	// Both payer and account must have signed the transaction.
	// It fails with ErrAccountAlreadyInUse if the address already holds an account.
	CreateAccount(ctx context.Context, payer *AccountInfo, account *AccountInfo, space int, owner protocol.Address) error
}
