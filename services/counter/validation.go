// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
)

type accountCheck func() error

// validate runs every check and reports all violations together, nil if there are none.
// The first violation decides the error code in the receipt.
func validate(checks ...accountCheck) error {
	var result *multierror.Error
	for _, check := range checks {
		if err := check(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		result.ErrorFormat = singleLine
	}
	return result.ErrorOrNil()
}

// singleLine keeps receipt error messages on one line
func singleLine(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return strings.Join(messages, " ")
}

func requireSigner(name string, account *types.AccountInfo) accountCheck {
	return func() error {
		if !account.IsSigner {
			return types.ConstraintSigner(name)
		}
		return nil
	}
}

func requireWritable(name string, account *types.AccountInfo) accountCheck {
	return func() error {
		if !account.IsWritable {
			return types.ConstraintMut(name)
		}
		return nil
	}
}

func requireOwnedByProgram(name string, account *types.AccountInfo, programId protocol.Address) accountCheck {
	return func() error {
		if !account.IsInitialized() {
			return types.AccountNotInitialized(name)
		}
		if !account.Owner.Equal(programId) {
			return types.AccountOwnedByWrongProgram(name)
		}
		return nil
	}
}

func requireDataSize(name string, account *types.AccountInfo, size int) accountCheck {
	return func() error {
		if account.IsInitialized() && len(account.Data) != size {
			return types.AccountDataSizeMismatch(name)
		}
		return nil
	}
}
