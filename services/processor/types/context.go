// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-go/protocol"
)

// Context is handed to a method implementation for the duration of a single instruction
type Context struct {
	ProgramId protocol.Address
	Accounts  []*AccountInfo
	System    SystemSdk

	logs        []string
	outputValue uint64
}

func NewContext(programId protocol.Address, accounts []*AccountInfo, system SystemSdk) *Context {
	return &Context{
		ProgramId: programId,
		Accounts:  accounts,
		System:    system,
	}
}

// Msg appends a line to the program log returned in the transaction receipt
func (c *Context) Msg(format string, args ...interface{}) {
	c.logs = append(c.logs, fmt.Sprintf(format, args...))
}

func (c *Context) Logs() []string {
	return c.logs
}

func (c *Context) SetOutputValue(value uint64) {
	c.outputValue = value
}

func (c *Context) OutputValue() uint64 {
	return c.outputValue
}
