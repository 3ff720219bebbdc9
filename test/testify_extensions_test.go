// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"fmt"
	"testing"

	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/stretchr/testify/require"
)

type recordingT struct {
	errors []string
	failed bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
}

func TestAssertCmpEqualPassesOnEqualValues(t *testing.T) {
	expected := &protocol.Account{Address: protocol.Address{1, 2}, Owner: protocol.Address{3}, Data: []byte{0, 0}}

	r := &recordingT{}
	require.True(t, AssertCmpEqual(r, expected, expected.Clone()))
	require.Empty(t, r.errors)
}

func TestRequireCmpEqualReportsFieldDiff(t *testing.T) {
	expected := &protocol.Account{Address: protocol.Address{1, 2}, Data: []byte{0, 1}}
	actual := &protocol.Account{Address: protocol.Address{1, 2}, Data: []byte{0, 2}}

	r := &recordingT{}
	RequireCmpEqual(r, expected, actual)

	require.True(t, r.failed)
	require.Len(t, r.errors, 1)
	require.Contains(t, r.errors[0], "Data")
}
