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

const (
	PROGRAM_ID = "PROGRAM_ID"

	TRANSACTION_EXPIRATION_WINDOW = "TRANSACTION_EXPIRATION_WINDOW"
	TRANSACTION_FUTURE_GRACE      = "TRANSACTION_FUTURE_GRACE"

	STORAGE_BACKEND          = "STORAGE_BACKEND"
	POSTGRES_DSN             = "POSTGRES_DSN"
	POSTGRES_MAX_CONNECTIONS = "POSTGRES_MAX_CONNECTIONS"

	SEND_TRANSACTION_TIMEOUT = "SEND_TRANSACTION_TIMEOUT"

	HTTP_ADDRESS = "HTTP_ADDRESS"
	PROFILING    = "PROFILING"

	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
	LOGGER_HTTP_ENDPOINT            = "LOGGER_HTTP_ENDPOINT"
	LOGGER_BULK_SIZE                = "LOGGER_BULK_SIZE"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
)

const (
	STORAGE_BACKEND_MEMORY   = "memory"
	STORAGE_BACKEND_POSTGRES = "postgres"
)

type valueKind int

const (
	kindString valueKind = iota
	kindUint32
	kindDuration
	kindBool
	kindProgramId
)

var knownKeys = map[string]valueKind{
	PROGRAM_ID:                      kindProgramId,
	TRANSACTION_EXPIRATION_WINDOW:   kindDuration,
	TRANSACTION_FUTURE_GRACE:        kindDuration,
	STORAGE_BACKEND:                 kindString,
	POSTGRES_DSN:                    kindString,
	POSTGRES_MAX_CONNECTIONS:        kindUint32,
	SEND_TRANSACTION_TIMEOUT:        kindDuration,
	HTTP_ADDRESS:                    kindString,
	PROFILING:                       kindBool,
	LOGGER_FULL_LOG:                 kindBool,
	LOGGER_FILE_TRUNCATION_INTERVAL: kindDuration,
	LOGGER_HTTP_ENDPOINT:            kindString,
	LOGGER_BULK_SIZE:                kindUint32,
	METRICS_REPORT_INTERVAL:         kindDuration,
}

type config struct {
	kv        map[string]NodeConfigValue
	programId protocol.Address
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) SetProgramId(programId protocol.Address) mutableNodeConfig {
	c.programId = programId
	return c
}

func (c *config) Clone() mutableNodeConfig {
	cloned := &config{
		kv:        make(map[string]NodeConfigValue),
		programId: append(protocol.Address{}, c.programId...),
	}
	for key, value := range c.kv {
		cloned.kv[key] = value
	}
	return cloned
}

func (c *config) ProgramId() protocol.Address {
	return c.programId
}

func (c *config) TransactionExpirationWindow() time.Duration {
	return c.kv[TRANSACTION_EXPIRATION_WINDOW].DurationValue
}

func (c *config) TransactionFutureGrace() time.Duration {
	return c.kv[TRANSACTION_FUTURE_GRACE].DurationValue
}

func (c *config) StorageBackend() string {
	return c.kv[STORAGE_BACKEND].StringValue
}

func (c *config) PostgresDsn() string {
	return c.kv[POSTGRES_DSN].StringValue
}

func (c *config) PostgresMaxConnections() uint32 {
	return c.kv[POSTGRES_MAX_CONNECTIONS].Uint32Value
}

func (c *config) SendTransactionTimeout() time.Duration {
	return c.kv[SEND_TRANSACTION_TIMEOUT].DurationValue
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) Profiling() bool {
	return c.kv[PROFILING].BoolValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) LoggerHttpEndpoint() string {
	return c.kv[LOGGER_HTTP_ENDPOINT].StringValue
}

func (c *config) LoggerBulkSize() uint32 {
	return c.kv[LOGGER_BULK_SIZE].Uint32Value
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}
