// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/orbs-counter-go/protocol"
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	// how long a signed transaction stays valid, and how far ahead of the node clock it may be stamped
	cfg.SetDuration(TRANSACTION_EXPIRATION_WINDOW, 30*time.Minute)
	cfg.SetDuration(TRANSACTION_FUTURE_GRACE, 3*time.Minute)

	cfg.SetString(STORAGE_BACKEND, STORAGE_BACKEND_MEMORY)
	cfg.SetUint32(POSTGRES_MAX_CONNECTIONS, 10)

	cfg.SetDuration(SEND_TRANSACTION_TIMEOUT, 30*time.Second)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetBool(PROFILING, false)

	cfg.SetBool(LOGGER_FULL_LOG, false)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetUint32(LOGGER_BULK_SIZE, 100)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForProduction(programId protocol.Address) mutableNodeConfig {
	cfg := defaultProductionConfig()
	cfg.SetProgramId(programId)
	return cfg
}

// ForCounterTests keeps everything in memory and logs everything
func ForCounterTests(programId protocol.Address) mutableNodeConfig {
	cfg := defaultProductionConfig()
	cfg.SetProgramId(programId)

	cfg.SetDuration(SEND_TRANSACTION_TIMEOUT, 5*time.Second)
	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, time.Second)

	return cfg
}
