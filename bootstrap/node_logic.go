// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-counter-go/services/publicapi"
	"github.com/orbs-network/orbs-counter-go/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/orbs-counter-go/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-go/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
)

type NodeLogic interface {
	govnr.ShutdownWaiter
	PublicApi() publicapi.PublicApi
}

type nodeLogic struct {
	govnr.TreeSupervisor
	publicApi publicapi.PublicApi
}

func NewNodeLogic(
	ctx context.Context,
	accountPersistence stateStorageAdapter.AccountPersistence,
	logger log.Logger,
	metricRegistry metric.Registry,
	nodeConfig config.NodeConfig,
) NodeLogic {

	stateStorageService := statestorage.NewStateStorage(accountPersistence, logger, metricRegistry)
	virtualMachineService := virtualmachine.NewVirtualMachine(ctx, nodeConfig, stateStorageService, logger, metricRegistry, counter.NewProgram(nodeConfig.ProgramId()))
	publicApiService := publicapi.NewPublicApi(nodeConfig, virtualMachineService, logger, metricRegistry)

	n := &nodeLogic{
		publicApi: publicApiService,
	}

	n.Supervise(virtualMachineService)
	n.Supervise(metric.NewRuntimeReporter(ctx, metricRegistry, logger))
	n.Supervise(metric.NewSystemReporter(ctx, metricRegistry, logger))
	n.Supervise(metricRegistry.ReportEvery(ctx, nodeConfig.MetricsReportInterval(), logger))

	logger.Info("counter program registered", log.String("program", counter.PROGRAM_NAME), log.Stringable("program-id", nodeConfig.ProgramId()))

	return n
}

func (n *nodeLogic) PublicApi() publicapi.PublicApi {
	return n.publicApi
}
