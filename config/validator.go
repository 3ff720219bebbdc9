// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/pkg/errors"
)

// ValidateNodeConfig reports every problem in cfg at once
func ValidateNodeConfig(cfg NodeConfig) error {
	var errs *multierror.Error

	if !cfg.ProgramId().IsValid() {
		errs = multierror.Append(errs, errors.Errorf("program-id must be a %d byte hex address", protocol.ADDRESS_SIZE_BYTES))
	}

	switch cfg.StorageBackend() {
	case STORAGE_BACKEND_MEMORY:
	case STORAGE_BACKEND_POSTGRES:
		if cfg.PostgresDsn() == "" {
			errs = multierror.Append(errs, errors.New("postgres-dsn is required when storage-backend is postgres"))
		}
		if cfg.PostgresMaxConnections() == 0 {
			errs = multierror.Append(errs, errors.New("postgres-max-connections must be positive"))
		}
	default:
		errs = multierror.Append(errs, errors.Errorf("unknown storage-backend %q", cfg.StorageBackend()))
	}

	if cfg.HttpAddress() == "" {
		errs = multierror.Append(errs, errors.New("http-address must be set"))
	}

	if cfg.TransactionExpirationWindow() <= 0 {
		errs = multierror.Append(errs, errors.New("transaction-expiration-window must be positive"))
	}

	if cfg.TransactionFutureGrace() < 0 {
		errs = multierror.Append(errs, errors.New("transaction-future-grace must not be negative"))
	}

	if cfg.SendTransactionTimeout() <= 0 {
		errs = multierror.Append(errs, errors.New("send-transaction-timeout must be positive"))
	}

	if cfg.MetricsReportInterval() <= 0 {
		errs = multierror.Append(errs, errors.New("metrics-report-interval must be positive"))
	}

	return errs.ErrorOrNil()
}
