// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"bytes"
	"context"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/processor/types"
	"github.com/orbs-network/orbs-counter-go/services/statestorage"
	"github.com/pkg/errors"
)

// transientState holds the accounts of one transaction while its instruction runs. Nothing reaches
// state storage until diff is committed.
type transientState struct {
	programId protocol.Address
	accounts  []*types.AccountInfo
	originals []*protocol.Account
	allocated map[string]bool
}

func loadTransientState(ctx context.Context, stateStorage statestorage.StateStorage, programId protocol.Address, metas []protocol.AccountMeta) (*transientState, error) {
	state := &transientState{
		programId: programId,
		accounts:  make([]*types.AccountInfo, 0, len(metas)),
		originals: make([]*protocol.Account, 0, len(metas)),
		allocated: make(map[string]bool),
	}

	for _, meta := range metas {
		stored, err := stateStorage.ReadAccount(ctx, meta.Address)
		if err != nil {
			return nil, errors.Wrapf(err, "failed loading account %s", meta.Address)
		}

		info := &types.AccountInfo{
			Address:    append(protocol.Address{}, meta.Address...),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
		if stored != nil {
			copied := stored.Clone()
			info.Owner = copied.Owner
			info.Data = copied.Data
		}

		state.accounts = append(state.accounts, info)
		state.originals = append(state.originals, stored)
	}

	return state, nil
}

func (t *transientState) CreateAccount(ctx context.Context, payer *types.AccountInfo, account *types.AccountInfo, space int, owner protocol.Address) error {
	if !payer.IsSigner {
		return types.ConstraintSigner("payer")
	}
	if !payer.IsWritable {
		return types.ConstraintMut("payer")
	}
	if !account.IsWritable {
		return types.ConstraintMut("account")
	}
	if !account.IsSigner {
		return types.ConstraintSigner("account")
	}
	if account.IsInitialized() || t.allocated[account.Address.KeyForMap()] {
		return types.ErrAccountAlreadyInUse
	}
	if !owner.Equal(t.programId) {
		return errors.Errorf("program %s cannot allocate accounts owned by %s", t.programId, owner)
	}
	if space <= 0 {
		return errors.Errorf("cannot allocate %d bytes", space)
	}

	account.Owner = append(protocol.Address{}, owner...)
	account.Data = make([]byte, space)
	t.allocated[account.Address.KeyForMap()] = true
	return nil
}

// diff splits the changed accounts into fresh allocations and updates of existing accounts, refusing any change
// the executing program was not entitled to make
func (t *transientState) diff() (allocations []*protocol.Account, updates []*protocol.Account, err error) {
	for i, info := range t.accounts {
		original := t.originals[i]
		current := &protocol.Account{Address: info.Address, Owner: info.Owner, Data: info.Data}

		if original == nil {
			if !info.IsInitialized() {
				continue
			}
			if !t.allocated[info.Address.KeyForMap()] {
				return nil, nil, errors.Errorf("account %s was assigned an owner without being allocated", info.Address)
			}
			allocations = append(allocations, current)
			continue
		}

		if !info.Owner.Equal(original.Owner) {
			return nil, nil, errors.Errorf("owner of account %s was modified", info.Address)
		}
		if bytes.Equal(info.Data, original.Data) {
			continue
		}
		if len(info.Data) != len(original.Data) {
			return nil, nil, errors.Errorf("data size of account %s was modified", info.Address)
		}
		if !info.IsWritable {
			return nil, nil, errors.Errorf("read only account %s was modified", info.Address)
		}
		if !original.Owner.Equal(t.programId) {
			return nil, nil, errors.Errorf("account %s is not owned by the executing program", info.Address)
		}
		updates = append(updates, current)
	}

	return allocations, updates, nil
}
