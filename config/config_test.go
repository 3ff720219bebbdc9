// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const someProgramIdHex = "0x000102030405060708090a0B0C0d0E0F101112131415161718191A1B1C1d1e1F"

func TestForProductionIsValidOnceProgramIdIsSet(t *testing.T) {
	programId, err := encoding.DecodeHex(someProgramIdHex)
	require.NoError(t, err)

	cfg := ForProduction(programId)
	require.NoError(t, ValidateNodeConfig(cfg))
	require.Equal(t, STORAGE_BACKEND_MEMORY, cfg.StorageBackend())
	require.Equal(t, 30*time.Minute, cfg.TransactionExpirationWindow())
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := ForProduction(nil)
	cfg.SetString(STORAGE_BACKEND, STORAGE_BACKEND_POSTGRES)
	cfg.SetDuration(SEND_TRANSACTION_TIMEOUT, 0)

	err := ValidateNodeConfig(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "program-id")
	require.Contains(t, err.Error(), "postgres-dsn")
	require.Contains(t, err.Error(), "send-transaction-timeout")
}

func TestValidateRejectsUnknownStorageBackend(t *testing.T) {
	cfg := ForCounterTests(make([]byte, 32))
	cfg.SetString(STORAGE_BACKEND, "leveldb")

	require.Error(t, ValidateNodeConfig(cfg))
}

func TestModifyFromJson(t *testing.T) {
	cfg := ForProduction(nil)
	err := modifyFromJson(cfg, `{
		"program-id": "` + someProgramIdHex + `",
		"storage-backend": "postgres",
		"postgres-dsn": "postgres://localhost/counter",
		"postgres-max-connections": 4,
		"transaction-expiration-window": "10m",
		"profiling": true,
		"logger-bulk-size": "50"
	}`)
	require.NoError(t, err)

	require.Len(t, cfg.ProgramId(), 32)
	require.Equal(t, STORAGE_BACKEND_POSTGRES, cfg.StorageBackend())
	require.Equal(t, "postgres://localhost/counter", cfg.PostgresDsn())
	require.EqualValues(t, 4, cfg.PostgresMaxConnections())
	require.Equal(t, 10*time.Minute, cfg.TransactionExpirationWindow())
	require.True(t, cfg.Profiling())
	require.EqualValues(t, 50, cfg.LoggerBulkSize())
}

func TestModifyFromJsonReportsUnknownAndMalformedKeys(t *testing.T) {
	cfg := ForProduction(nil)
	err := modifyFromJson(cfg, `{"no-such-key": 1, "profiling": "maybe", "program-id": "0x1234"}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-key")
	require.Contains(t, err.Error(), "profiling")
	require.Contains(t, err.Error(), "program-id")
}

func TestModifyFromJsonRejectsBadJson(t *testing.T) {
	require.Error(t, modifyFromJson(ForProduction(nil), "{"))
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := ForCounterTests(make([]byte, 32))
	cloned := cfg.Clone()
	cloned.SetString(HTTP_ADDRESS, ":9999")
	cloned.ProgramId()[0] = 7

	require.Equal(t, "127.0.0.1:0", cfg.HttpAddress())
	require.EqualValues(t, 0, cfg.ProgramId()[0])
}

func TestGetNodeConfigFromFilesMergesInOrder(t *testing.T) {
	dir, err := ioutil.TempDir("", "counter-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte(`{"program-id": "` + someProgramIdHex + `", "http-address": ":1"}`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"http-address": ":2", "logger-full-log": true}`), 0644))

	cfg, err := GetNodeConfigFromFiles(FilesPaths{first, second}, "")
	require.NoError(t, err)
	require.Equal(t, ":2", cfg.HttpAddress())
	require.True(t, cfg.LoggerFullLog())
	require.Len(t, cfg.ProgramId(), 32)

	cfg, err = GetNodeConfigFromFiles(FilesPaths{first}, ":3")
	require.NoError(t, err)
	require.Equal(t, ":3", cfg.HttpAddress())
}

func TestGetNodeConfigFromFilesFailsOnMissingFile(t *testing.T) {
	_, err := GetNodeConfigFromFiles(FilesPaths{"/no/such/file.json"}, "")
	require.Error(t, err)
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	require.NoError(t, os.Setenv("COUNTER_SEND_TRANSACTION_TIMEOUT", "7s"))
	require.NoError(t, os.Setenv("COUNTER_STORAGE_BACKEND", "postgres"))
	defer os.Unsetenv("COUNTER_SEND_TRANSACTION_TIMEOUT")
	defer os.Unsetenv("COUNTER_STORAGE_BACKEND")

	cfg, err := GetNodeConfigFromFiles(nil, "")
	require.NoError(t, err)
	require.Equal(t, 7*time.Second, cfg.SendTransactionTimeout())
	require.Equal(t, STORAGE_BACKEND_POSTGRES, cfg.StorageBackend())
}

func TestFilesPathsFlag(t *testing.T) {
	var paths FilesPaths
	require.NoError(t, paths.Set("a.json"))
	require.NoError(t, paths.Set("b.json"))
	require.Equal(t, "a.json,b.json", paths.String())
}
