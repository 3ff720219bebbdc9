// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"flag"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
)

type KeygenCommand struct {
	Ui cli.Ui
}

func (c *KeygenCommand) Synopsis() string {
	return "Generate a signing key pair and store it in a key file"
}

func (c *KeygenCommand) Help() string {
	return strings.TrimSpace(`
Usage: counter-cli keygen [-scheme eddsa|ecdsa-secp256k1] [-keys path]

  Generates a new key pair. The address printed is the account the key signs for.
`)
}

func (c *KeygenCommand) Run(args []string) int {
	flags := flag.NewFlagSet("keygen", flag.ContinueOnError)
	scheme := flags.String("scheme", jsonapi.SIGNER_SCHEME_EDDSA, "signer scheme")
	keysPath := flags.String("keys", DEFAULT_KEY_FILE, "path of the key file to write")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	keyFile, err := writeKeyFile(*keysPath, *scheme)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	c.Ui.Output("wrote " + *keysPath)
	c.Ui.Output("address: " + keyFile.Address)
	return 0
}
