// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/cli"
	"github.com/orbs-network/orbs-counter-go/bootstrap"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/orbs-counter-go/test/builders"
	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
)

var programId = builders.AddressForTests(0xc0)

func tempKeysPath(t *testing.T) string {
	dir, err := ioutil.TempDir("", "countercli")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "keys.json")
}

func TestKeygenWritesReadableKeyFile(t *testing.T) {
	for _, scheme := range []string{jsonapi.SIGNER_SCHEME_EDDSA, jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1} {
		t.Run(scheme, func(t *testing.T) {
			keysPath := tempKeysPath(t)
			ui := cli.NewMockUi()

			require.Equal(t, 0, (&KeygenCommand{Ui: ui}).Run([]string{"-scheme", scheme, "-keys", keysPath}))

			s, err := readSigner(keysPath)
			require.NoError(t, err)
			address, err := signer.Address(s)
			require.NoError(t, err)
			require.Contains(t, ui.OutputWriter.String(), encoding.EncodeHex(address))
		})
	}
}

func TestKeygenRejectsUnknownScheme(t *testing.T) {
	ui := cli.NewMockUi()
	require.Equal(t, 1, (&KeygenCommand{Ui: ui}).Run([]string{"-scheme", "rsa", "-keys", tempKeysPath(t)}))
	require.Contains(t, ui.ErrorWriter.String(), "unknown signer scheme")
}

func TestTransactionCommandRequiresProgramIdAndCounter(t *testing.T) {
	ui := cli.NewMockUi()
	require.Equal(t, 1, (&TransactionCommand{Ui: ui, Method: counter.METHOD_INCREMENT}).Run([]string{}))
	require.Contains(t, ui.ErrorWriter.String(), "-program-id")

	keysPath := tempKeysPath(t)
	require.Equal(t, 0, (&KeygenCommand{Ui: cli.NewMockUi()}).Run([]string{"-keys", keysPath}))

	ui = cli.NewMockUi()
	require.Equal(t, 1, (&TransactionCommand{Ui: ui, Method: counter.METHOD_INCREMENT}).Run([]string{"-program-id", encoding.EncodeHex(programId), "-keys", keysPath}))
	require.Contains(t, ui.ErrorWriter.String(), "-counter is required")
}

func TestCommandsDriveCounterOnNode(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		parent.AllowErrorsMatching("failed to retrieve")
		node, err := bootstrap.NewNode(config.ForCounterTests(programId), parent.Logger)
		require.NoError(t, err)
		defer synchronization.ShutdownGracefully(node, 5*time.Second)

		keysPath := tempKeysPath(t)
		require.Equal(t, 0, (&KeygenCommand{Ui: cli.NewMockUi()}).Run([]string{"-keys", keysPath}))

		counterKeysPath := tempKeysPath(t)
		require.Equal(t, 0, (&KeygenCommand{Ui: cli.NewMockUi()}).Run([]string{"-scheme", jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1, "-keys", counterKeysPath}))
		counterKey, err := readSigner(counterKeysPath)
		require.NoError(t, err)
		counterAddress, err := signer.Address(counterKey)
		require.NoError(t, err)

		commonArgs := []string{"-endpoint", fmt.Sprintf("http://127.0.0.1:%d", node.HttpPort()), "-program-id", encoding.EncodeHex(programId)}
		counterArgs := append(append([]string{}, commonArgs...), "-counter", encoding.EncodeHex(counterAddress))
		run := func(c cli.Command, args ...string) (int, *cli.MockUi) {
			ui := cli.NewMockUi()
			switch command := c.(type) {
			case *TransactionCommand:
				command.Ui = ui
			case *GetCommand:
				command.Ui = ui
			}
			return c.Run(args), ui
		}

		status, ui := run(&TransactionCommand{Method: counter.METHOD_INITIALIZE}, append(counterArgs, "-keys", keysPath)...)
		require.Equal(t, 1, status)
		require.Contains(t, ui.ErrorWriter.String(), "-counter-keys")

		status, ui = run(&TransactionCommand{Method: counter.METHOD_INITIALIZE}, append(append([]string{}, commonArgs...), "-keys", keysPath, "-counter-keys", counterKeysPath)...)
		require.Equal(t, 0, status)
		require.Contains(t, ui.OutputWriter.String(), "counter: "+encoding.EncodeHex(counterAddress))

		status, ui = run(&TransactionCommand{Method: counter.METHOD_INITIALIZE}, append(append([]string{}, commonArgs...), "-keys", keysPath)...)
		require.Equal(t, 0, status, "initialize without -counter-keys creates a counter with a fresh key")
		require.Contains(t, ui.OutputWriter.String(), protocol.EXECUTION_RESULT_SUCCESS.String())

		status, _ = run(&TransactionCommand{Method: counter.METHOD_INCREMENT}, append(counterArgs, "-keys", keysPath)...)
		require.Equal(t, 0, status)

		status, ui = run(&GetCommand{}, counterArgs...)
		require.Equal(t, 0, status)
		require.Contains(t, ui.OutputWriter.String(), `"Count": "1"`)

		status, _ = run(&TransactionCommand{Method: counter.METHOD_DECREMENT}, append(counterArgs, "-keys", keysPath)...)
		require.Equal(t, 0, status)

		status, ui = run(&TransactionCommand{Method: counter.METHOD_DECREMENT}, append(counterArgs, "-keys", keysPath)...)
		require.Equal(t, 2, status, "underflow is reported through the exit status")
		require.Contains(t, ui.OutputWriter.String(), "The count has underflowed.")
	})
}
