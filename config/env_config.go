// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
)

type environmentConfig struct {
	ProgramId                    string `env:"COUNTER_PROGRAM_ID"`
	TransactionExpirationWindow  string `env:"COUNTER_TRANSACTION_EXPIRATION_WINDOW"`
	TransactionFutureGrace       string `env:"COUNTER_TRANSACTION_FUTURE_GRACE"`
	StorageBackend               string `env:"COUNTER_STORAGE_BACKEND"`
	PostgresDsn                  string `env:"COUNTER_POSTGRES_DSN"`
	PostgresMaxConnections       string `env:"COUNTER_POSTGRES_MAX_CONNECTIONS"`
	SendTransactionTimeout       string `env:"COUNTER_SEND_TRANSACTION_TIMEOUT"`
	HttpAddress                  string `env:"COUNTER_HTTP_ADDRESS"`
	Profiling                    string `env:"COUNTER_PROFILING"`
	LoggerFullLog                string `env:"COUNTER_LOGGER_FULL_LOG"`
	LoggerFileTruncationInterval string `env:"COUNTER_LOGGER_FILE_TRUNCATION_INTERVAL"`
	LoggerHttpEndpoint           string `env:"COUNTER_LOGGER_HTTP_ENDPOINT"`
	LoggerBulkSize               string `env:"COUNTER_LOGGER_BULK_SIZE"`
	MetricsReportInterval        string `env:"COUNTER_METRICS_REPORT_INTERVAL"`
}

func (e *environmentConfig) values() map[string]interface{} {
	all := map[string]string{
		PROGRAM_ID:                      e.ProgramId,
		TRANSACTION_EXPIRATION_WINDOW:   e.TransactionExpirationWindow,
		TRANSACTION_FUTURE_GRACE:        e.TransactionFutureGrace,
		STORAGE_BACKEND:                 e.StorageBackend,
		POSTGRES_DSN:                    e.PostgresDsn,
		POSTGRES_MAX_CONNECTIONS:        e.PostgresMaxConnections,
		SEND_TRANSACTION_TIMEOUT:        e.SendTransactionTimeout,
		HTTP_ADDRESS:                    e.HttpAddress,
		PROFILING:                       e.Profiling,
		LOGGER_FULL_LOG:                 e.LoggerFullLog,
		LOGGER_FILE_TRUNCATION_INTERVAL: e.LoggerFileTruncationInterval,
		LOGGER_HTTP_ENDPOINT:            e.LoggerHttpEndpoint,
		LOGGER_BULK_SIZE:                e.LoggerBulkSize,
		METRICS_REPORT_INTERVAL:         e.MetricsReportInterval,
	}

	set := make(map[string]interface{})
	for key, value := range all {
		if value != "" {
			set[key] = value
		}
	}
	return set
}

func modifyFromEnvironment(cfg mutableNodeConfig) error {
	e := &environmentConfig{}
	if err := env.Parse(e); err != nil {
		return errors.Wrap(err, "failed reading environment variables")
	}

	if err := populateConfig(cfg, e.values()); err != nil {
		return errors.Wrap(err, "failed applying environment variables")
	}
	return nil
}
