// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"os"

	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/devtools/countercli/commands"
)

func main() {
	ui := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("counter-cli", config.GetVersion().Semantic)
	c.Args = os.Args[1:]
	c.Commands = commands.Factories(ui)

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	os.Exit(exitStatus)
}
