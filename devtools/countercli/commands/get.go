// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"flag"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/protocol"
)

type GetCommand struct {
	Ui cli.Ui
}

func (c *GetCommand) Synopsis() string {
	return "Read the current value of a counter"
}

func (c *GetCommand) Help() string {
	return strings.TrimSpace(`
Usage: counter-cli get -program-id 0x... -counter 0x... [-endpoint url]
`)
}

func (c *GetCommand) Run(args []string) int {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	connection := addConnectionFlags(flags)
	counterHex := flags.String("counter", "", "hex encoded counter address")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := connection.client()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	counterAddress, err := encoding.DecodeHexOfSize(*counterHex, protocol.ADDRESS_SIZE_BYTES)
	if err != nil {
		c.Ui.Error("-counter is required and must be a hex encoded address")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *connection.timeout)
	defer cancel()

	out, err := client.GetCounter(ctx, counterAddress)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	if err := output(c.Ui, out); err != nil {
		return 1
	}
	return 0
}
