// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import "github.com/orbs-network/orbs-counter-go/services/processor/types"

var (
	ErrOverflow  = types.NewCustomError(0, "Overflow", "The count has overflowed.")
	ErrUnderflow = types.NewCustomError(1, "Underflow", "The count has underflowed.")
)
