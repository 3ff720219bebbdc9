// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/pkg/errors"
)

var ErrAccountAlreadyExists = errors.New("account already exists")

type AccountPersistence interface {
	// ReadAccount returns nil when nothing is stored at address
	ReadAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error)

	// WriteAccounts applies all allocations and updates or none of them; an allocation of an address
	// already stored fails the whole batch with ErrAccountAlreadyExists
	WriteAccounts(ctx context.Context, allocations []*protocol.Account, updates []*protocol.Account) error

	AccountCount(ctx context.Context) (int, error)
}
