// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"os"
	"time"
)

const defaultBulkSize = 100

func GetBootstrapCrashLogger() log.Logger {
	path := "./counter-node-bootstrap.log"

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}

	fileWriter := log.NewTruncatingFileWriter(logFile)
	outputs := []log.Output{
		log.NewFormattingOutput(fileWriter, log.NewHumanReadableFormatter()),
		log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()),
		log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()),
	}

	return log.GetLogger().WithOutput(outputs...)
}

type LoggerConfig interface {
	LoggerFullLog() bool
	LoggerFileTruncationInterval() time.Duration
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32
}

func GetLogger(path string, silent bool, cfg LoggerConfig) log.Logger {
	outputs := make([]log.Output, 0, 3)

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(os.Stdout, log.NewJsonFormatter()))
	}

	if cfg.LoggerHttpEndpoint() != "" {
		customJSONFormatter := log.NewJsonFormatter().WithTimestampColumn("@timestamp")
		bulkSize := int(cfg.LoggerBulkSize())
		if bulkSize == 0 {
			bulkSize = defaultBulkSize
		}

		outputs = append(outputs, log.NewBulkOutput(log.NewHttpWriter(cfg.LoggerHttpEndpoint()), customJSONFormatter, bulkSize))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}

		fileWriter := log.NewTruncatingFileWriter(logFile, cfg.LoggerFileTruncationInterval())
		outputs = append(outputs, log.NewFormattingOutput(fileWriter, log.NewJsonFormatter()))
	}

	logger := log.GetLogger().WithOutput(outputs...)

	conditionalFilter := log.NewConditionalFilter(false, nil)

	if !cfg.LoggerFullLog() {
		conditionalFilter = log.NewConditionalFilter(true, log.Or(log.OnlyErrors(), log.MatchField(logfields.ProgramLogTag)))
	}

	return logger.WithFilters(conditionalFilter)
}
