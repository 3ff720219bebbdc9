// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"sort"
	"sync"
)

type accountLock struct {
	held chan struct{}
	refs int
}

// accountLocks grants one transaction at a time exclusive use of an account address
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*accountLock)}
}

// lockAll acquires every address in sorted order so two transactions sharing accounts cannot deadlock.
// The returned function releases whatever was acquired.
func (l *accountLocks) lockAll(ctx context.Context, addresses []protocol.Address) (func(), error) {
	keys := make([]string, 0, len(addresses))
	for _, address := range addresses {
		keys = append(keys, address.KeyForMap())
	}
	sort.Strings(keys)

	acquired := make([]string, 0, len(keys))
	unlock := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			l.release(acquired[i])
		}
	}

	for _, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			unlock()
			return nil, err
		}
		acquired = append(acquired, key)
	}

	return unlock, nil
}

func (l *accountLocks) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	lock, exists := l.locks[key]
	if !exists {
		lock = &accountLock{held: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.held <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.drop(key, lock)
		return ctx.Err()
	}
}

func (l *accountLocks) release(key string) {
	l.mu.Lock()
	lock := l.locks[key]
	l.mu.Unlock()

	<-lock.held
	l.drop(key, lock)
}

func (l *accountLocks) drop(key string, lock *accountLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *accountLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
