// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"github.com/orbs-network/membuffers/go"
)

const CounterAccountSize = 8

// Counter is the record kept in a counter account: a single little endian uint64
type Counter struct {
	Count uint64
}

func DecodeCounter(data []byte) (*Counter, bool) {
	if len(data) != CounterAccountSize {
		return nil, false
	}
	return &Counter{Count: membuffers.GetUint64(data)}, true
}

func (c *Counter) EncodeInto(data []byte) {
	membuffers.WriteUint64(data, c.Count)
}

func (c *Counter) Encode() []byte {
	data := make([]byte, CounterAccountSize)
	c.EncodeInto(data)
	return data
}
