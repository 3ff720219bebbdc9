// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type recordingErrorer struct {
	messages []string
	fields   [][]*log.Field
}

func (r *recordingErrorer) Error(message string, fields ...*log.Field) {
	r.messages = append(r.messages, message)
	r.fields = append(r.fields, fields)
}

func TestGovnrErrorerLogsRecoveredError(t *testing.T) {
	recorder := &recordingErrorer{}
	GovnrErrorer(recorder).Error(errors.New("boom"))

	require.Equal(t, []string{"recovered panic"}, recorder.messages)
	require.Len(t, recorder.fields[0], 1)
	require.Equal(t, "error", recorder.fields[0][0].Key)
}
