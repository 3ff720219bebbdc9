// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const DEFAULT_ENDPOINT = "http://localhost:8080"

type connectionFlags struct {
	endpoint  *string
	programId *string
	timeout   *time.Duration
}

func addConnectionFlags(flags *flag.FlagSet) *connectionFlags {
	return &connectionFlags{
		endpoint:  flags.String("endpoint", DEFAULT_ENDPOINT, "http endpoint of the counter node"),
		programId: flags.String("program-id", "", "hex encoded id of the counter program"),
		timeout:   flags.Duration("timeout", 30*time.Second, "request timeout"),
	}
}

func (f *connectionFlags) client() (*jsonapi.Client, error) {
	programId, err := encoding.DecodeHexOfSize(*f.programId, protocol.ADDRESS_SIZE_BYTES)
	if err != nil {
		return nil, errors.Wrap(err, "-program-id is required and must be a hex encoded address")
	}
	return jsonapi.NewClient(*f.endpoint, programId, *f.timeout), nil
}

// TransactionCommand sends one counter method. Initialize is co-signed by the key of the new counter,
// a fresh one unless -counter-keys names a key file.
type TransactionCommand struct {
	Ui     cli.Ui
	Method primitives.MethodName
}

func (c *TransactionCommand) Synopsis() string {
	switch c.Method {
	case counter.METHOD_INITIALIZE:
		return "Create a counter account set to zero"
	case counter.METHOD_INCREMENT:
		return "Add one to a counter"
	case counter.METHOD_DECREMENT:
		return "Subtract one from a counter"
	}
	return fmt.Sprintf("Send %s to a counter", c.Method)
}

func (c *TransactionCommand) Help() string {
	usage := "-counter 0x..."
	if c.Method == counter.METHOD_INITIALIZE {
		usage = "[-counter-keys path]"
	}
	return strings.TrimSpace(fmt.Sprintf(`
Usage: counter-cli %s -program-id 0x... %s [-keys path] [-endpoint url]

  %s. The transaction is signed with the key in the key file and the receipt is printed.
`, c.Method, usage, c.Synopsis()))
}

func (c *TransactionCommand) Run(args []string) int {
	flags := flag.NewFlagSet(string(c.Method), flag.ContinueOnError)
	connection := addConnectionFlags(flags)
	counterHex := flags.String("counter", "", "hex encoded counter address")
	counterKeysPath := flags.String("counter-keys", "", "key file of the counter to create, a fresh key is generated when empty")
	keysPath := flags.String("keys", DEFAULT_KEY_FILE, "path of the key file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := connection.client()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	user, err := readSigner(*keysPath)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *connection.timeout)
	defer cancel()

	counterAddress, receipt, err := c.send(ctx, client, user, *counterHex, *counterKeysPath)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	c.Ui.Output("counter: " + encoding.EncodeHex(counterAddress))
	if err := output(c.Ui, receipt); err != nil {
		return 1
	}

	if receipt.TransactionStatus != protocol.TRANSACTION_STATUS_COMMITTED.String() || receipt.ExecutionResult != protocol.EXECUTION_RESULT_SUCCESS.String() {
		return 2
	}
	return 0
}

func (c *TransactionCommand) send(ctx context.Context, client *jsonapi.Client, user signer.TransactionSigner, counterHex string, counterKeysPath string) (protocol.Address, *jsonapi.TransactionReceipt, error) {
	if c.Method == counter.METHOD_INITIALIZE {
		if counterHex != "" {
			return nil, nil, errors.New("initialize takes the counter address from its key, use -counter-keys")
		}
		counterKey, err := counterSigner(counterKeysPath)
		if err != nil {
			return nil, nil, err
		}
		counterAddress, err := signer.Address(counterKey)
		if err != nil {
			return nil, nil, err
		}
		receipt, err := client.Initialize(ctx, counterKey, user)
		return counterAddress, receipt, err
	}

	if counterHex == "" {
		return nil, nil, errors.New("-counter is required")
	}
	counterAddress, err := encoding.DecodeHexOfSize(counterHex, protocol.ADDRESS_SIZE_BYTES)
	if err != nil {
		return nil, nil, errors.Wrap(err, "-counter must be a hex encoded address")
	}

	var receipt *jsonapi.TransactionReceipt
	switch c.Method {
	case counter.METHOD_INCREMENT:
		receipt, err = client.Increment(ctx, counterAddress, user)
	case counter.METHOD_DECREMENT:
		receipt, err = client.Decrement(ctx, counterAddress, user)
	default:
		err = errors.Errorf("unknown method %s", c.Method)
	}
	return counterAddress, receipt, err
}

// counterSigner reads the counter key file, or generates a throwaway key since later calls only need the address
func counterSigner(path string) (signer.TransactionSigner, error) {
	if path != "" {
		return readSigner(path)
	}
	counterKey, _, err := generateSigner(jsonapi.SIGNER_SCHEME_EDDSA)
	return counterKey, err
}

func output(ui cli.Ui, value interface{}) error {
	bytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		ui.Error(err.Error())
		return err
	}
	ui.Output(string(bytes))
	return nil
}
