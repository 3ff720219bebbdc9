// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package postgres

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter/testkit"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

type dsnConfig string

func (c dsnConfig) PostgresDsn() string {
	return string(c)
}

func (c dsnConfig) PostgresMaxConnections() uint32 {
	return 2
}

func TestPostgresAccountPersistence(t *testing.T) {
	dsn := os.Getenv("COUNTER_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("COUNTER_TEST_POSTGRES_DSN is not set")
	}

	testkit.RunAccountPersistenceContract(t, func(t *testing.T) adapter.AccountPersistence {
		ctx := context.Background()
		p, err := NewAccountPersistence(ctx, dsnConfig(dsn), log.DefaultTestingLogger(t), metric.NewRegistry())
		require.NoError(t, err)
		require.NoError(t, p.Truncate(ctx))
		t.Cleanup(p.Close)
		return p
	})
}

func TestPostgresAccountPersistenceRejectsInvalidDsn(t *testing.T) {
	_, err := NewAccountPersistence(context.Background(), dsnConfig("not a dsn ::"), log.DefaultTestingLogger(t), metric.NewRegistry())
	require.Error(t, err)
}
