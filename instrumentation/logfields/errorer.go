// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

type govnrErrorer struct {
	logger Errorer
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err))
}

// GovnrErrorer adapts a logger so that panics recovered by govnr supervised goroutines are logged
func GovnrErrorer(logger Errorer) govnr.Errorer {
	return &govnrErrorer{logger}
}
