// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/test/builders"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestLockAllBlocksUntilReleased(t *testing.T) {
	locks := newAccountLocks()
	a, b := builders.AddressForTests(1), builders.AddressForTests(2)

	unlock, err := locks.lockAll(context.Background(), []protocol.Address{a, b})
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		unlockAgain, err := locks.lockAll(context.Background(), []protocol.Address{b})
		if err == nil {
			close(acquired)
			unlockAgain()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("lock was acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock was not acquired after release")
	}

	require.Eventually(t, func() bool { return locks.size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestLockAllGivesUpWhenContextEnds(t *testing.T) {
	locks := newAccountLocks()
	a, b := builders.AddressForTests(1), builders.AddressForTests(2)

	unlock, err := locks.lockAll(context.Background(), []protocol.Address{b})
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locks.lockAll(ctx, []protocol.Address{a, b})
	require.Equal(t, context.DeadlineExceeded, err)
	require.Equal(t, 1, locks.size(), "the partially acquired lock was not released")
}

func TestLockAllOfNothing(t *testing.T) {
	unlock, err := newAccountLocks().lockAll(context.Background(), nil)
	require.NoError(t, err)
	unlock()
}
