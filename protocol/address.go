// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"bytes"
	"encoding/hex"
)

const ADDRESS_SIZE_BYTES = 32

// Address identifies an account (a counter record, a signer or a program).
type Address []byte

func (a Address) String() string {
	return hex.EncodeToString(a)
}

func (a Address) KeyForMap() string {
	return string(a)
}

func (a Address) Equal(other Address) bool {
	return bytes.Equal(a, other)
}

func (a Address) IsValid() bool {
	return len(a) == ADDRESS_SIZE_BYTES
}
