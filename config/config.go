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

type NodeConfig interface {
	// program
	ProgramId() protocol.Address

	// virtual machine
	TransactionExpirationWindow() time.Duration
	TransactionFutureGrace() time.Duration

	// state storage
	StorageBackend() string
	PostgresDsn() string
	PostgresMaxConnections() uint32

	// public api
	SendTransactionTimeout() time.Duration

	// http server
	HttpAddress() string
	Profiling() bool

	// logger
	LoggerFullLog() bool
	LoggerFileTruncationInterval() time.Duration
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32

	// metrics
	MetricsReportInterval() time.Duration
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	SetProgramId(programId protocol.Address) mutableNodeConfig
	Clone() mutableNodeConfig
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}
