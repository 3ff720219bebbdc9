// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/services/counter"
)

func Factories(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"keygen": func() (cli.Command, error) {
			return &KeygenCommand{Ui: ui}, nil
		},
		"initialize": func() (cli.Command, error) {
			return &TransactionCommand{Ui: ui, Method: counter.METHOD_INITIALIZE}, nil
		},
		"increment": func() (cli.Command, error) {
			return &TransactionCommand{Ui: ui, Method: counter.METHOD_INCREMENT}, nil
		},
		"decrement": func() (cli.Command, error) {
			return &TransactionCommand{Ui: ui, Method: counter.METHOD_DECREMENT}, nil
		},
		"get": func() (cli.Command, error) {
			return &GetCommand{Ui: ui}, nil
		},
	}
}
