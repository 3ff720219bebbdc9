// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package postgres

import (
	"context"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

const createAccountsTable = `CREATE TABLE IF NOT EXISTS counter_accounts (
	address BYTEA PRIMARY KEY,
	owner   BYTEA NOT NULL,
	data    BYTEA NOT NULL
)`

const selectAccount = `SELECT owner, data FROM counter_accounts WHERE address = $1`

const insertAccount = `INSERT INTO counter_accounts (address, owner, data) VALUES ($1, $2, $3) ON CONFLICT (address) DO NOTHING`

const updateAccount = `INSERT INTO counter_accounts (address, owner, data) VALUES ($1, $2, $3)
ON CONFLICT (address) DO UPDATE SET owner = EXCLUDED.owner, data = EXCLUDED.data`

const countAccounts = `SELECT COUNT(*) FROM counter_accounts`

type Config interface {
	PostgresDsn() string
	PostgresMaxConnections() uint32
}

type metrics struct {
	readTime  *metric.Histogram
	writeTime *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		readTime:  m.NewLatency("StateStorage.PostgresAccountPersistence.Read.Time.Millis", 5*time.Second),
		writeTime: m.NewLatency("StateStorage.PostgresAccountPersistence.Write.Time.Millis", 5*time.Second),
	}
}

type AccountPersistence struct {
	pool    *pgxpool.Pool
	logger  log.Logger
	metrics *metrics
}

func NewAccountPersistence(ctx context.Context, config Config, parent log.Logger, metricFactory metric.Factory) (*AccountPersistence, error) {
	poolConfig, err := pgxpool.ParseConfig(config.PostgresDsn())
	if err != nil {
		return nil, errors.Wrap(err, "invalid postgres dsn")
	}
	if config.PostgresMaxConnections() > 0 {
		poolConfig.MaxConns = int32(config.PostgresMaxConnections())
	}

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed connecting to postgres")
	}

	if _, err := pool.Exec(ctx, createAccountsTable); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed creating accounts table")
	}

	logger := parent.WithTags(log.String("adapter", "postgres-account-persistence"))
	logger.Info("connected to postgres", log.Int("max-connections", int(poolConfig.MaxConns)))

	return &AccountPersistence{
		pool:    pool,
		logger:  logger,
		metrics: newMetrics(metricFactory),
	}, nil
}

func (p *AccountPersistence) ReadAccount(ctx context.Context, address protocol.Address) (*protocol.Account, error) {
	start := time.Now()
	defer p.metrics.readTime.RecordSince(start)

	account := &protocol.Account{Address: append(protocol.Address{}, address...)}
	var owner []byte
	err := p.pool.QueryRow(ctx, selectAccount, []byte(address)).Scan(&owner, &account.Data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading account %s", address)
	}

	account.Owner = owner
	return account, nil
}

func (p *AccountPersistence) WriteAccounts(ctx context.Context, allocations []*protocol.Account, updates []*protocol.Account) error {
	start := time.Now()
	defer p.metrics.writeTime.RecordSince(start)

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed opening postgres transaction")
	}
	defer tx.Rollback(ctx) // no-op once committed

	for _, account := range allocations {
		tag, err := tx.Exec(ctx, insertAccount, []byte(account.Address), []byte(account.Owner), account.Data)
		if err != nil {
			return errors.Wrapf(err, "failed allocating account %s", account.Address)
		}
		if tag.RowsAffected() == 0 {
			return adapter.ErrAccountAlreadyExists
		}
	}

	for _, account := range updates {
		if _, err := tx.Exec(ctx, updateAccount, []byte(account.Address), []byte(account.Owner), account.Data); err != nil {
			return errors.Wrapf(err, "failed updating account %s", account.Address)
		}
	}

	return errors.Wrap(tx.Commit(ctx), "failed committing postgres transaction")
}

func (p *AccountPersistence) AccountCount(ctx context.Context) (int, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, countAccounts).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed counting accounts")
	}
	return int(count), nil
}

// Truncate removes every account, for tests sharing one database
func (p *AccountPersistence) Truncate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, "TRUNCATE counter_accounts")
	return err
}

func (p *AccountPersistence) Close() {
	p.pool.Close()
}
