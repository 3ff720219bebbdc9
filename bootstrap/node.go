// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/bootstrap/httpserver"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	stateStorageAdapter "github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-go/services/statestorage/adapter/postgres"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type Node struct {
	govnr.TreeSupervisor
	httpServer       *httpserver.HttpServer
	logic            NodeLogic
	logger           log.Logger
	closePersistence func()
	ctxCancel        context.CancelFunc
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	ctx, ctxCancel := context.WithCancel(context.Background())

	nodeLogger := logger.WithTags(log.Stringable("program-id", nodeConfig.ProgramId()))
	metricRegistry := metric.NewRegistry().WithLabel("program", nodeConfig.ProgramId().String())

	accountPersistence, closePersistence, err := newAccountPersistence(ctx, nodeConfig, nodeLogger, metricRegistry)
	if err != nil {
		ctxCancel()
		return nil, err
	}

	nodeLogic := NewNodeLogic(ctx, accountPersistence, nodeLogger, metricRegistry, nodeConfig)

	httpServer, err := httpserver.NewHttpServer(nodeConfig, nodeLogger, nodeLogic.PublicApi(), metricRegistry)
	if err != nil {
		ctxCancel()
		closePersistence()
		return nil, err
	}

	n := &Node{
		httpServer:       httpServer,
		logic:            nodeLogic,
		logger:           nodeLogger,
		closePersistence: closePersistence,
		ctxCancel:        ctxCancel,
	}
	n.Supervise(nodeLogic)

	return n, nil
}

func newAccountPersistence(ctx context.Context, nodeConfig config.NodeConfig, logger log.Logger, metricRegistry metric.Registry) (stateStorageAdapter.AccountPersistence, func(), error) {
	switch nodeConfig.StorageBackend() {
	case config.STORAGE_BACKEND_MEMORY:
		return memory.NewAccountPersistence(metricRegistry), func() {}, nil
	case config.STORAGE_BACKEND_POSTGRES:
		persistence, err := postgres.NewAccountPersistence(ctx, nodeConfig, logger, metricRegistry)
		if err != nil {
			return nil, nil, err
		}
		return persistence, persistence.Close, nil
	}
	return nil, nil, errors.Errorf("unknown storage backend %q", nodeConfig.StorageBackend())
}

func (n *Node) HttpPort() int {
	return n.httpServer.Port()
}

// GracefulShutdown stops accepting requests, then stops background work, then releases storage
func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down")
	n.httpServer.GracefulShutdown(shutdownContext)
	n.ctxCancel()
	n.logic.WaitUntilShutdown(shutdownContext)
	n.closePersistence()
}
