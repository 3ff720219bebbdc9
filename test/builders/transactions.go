// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/test/crypto/keys"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"time"
)

// protocol.SignedTransaction

type transaction struct {
	tx      *protocol.Transaction
	signers []signer.TransactionSigner
	corrupt bool
}

// Transaction starts from a current, well formed transaction signed by the first ed25519 test key
func Transaction(programId protocol.Address, method primitives.MethodName) *transaction {
	return &transaction{
		tx: &protocol.Transaction{
			ProtocolVersion: protocol.CURRENT_PROTOCOL_VERSION,
			ProgramId:       programId,
			MethodName:      method,
			Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
		},
		signers: []signer.TransactionSigner{DefaultSigner()},
	}
}

func DefaultSigner() signer.TransactionSigner {
	return Ed25519Signer(1)
}

func Ed25519Signer(setIndex int) signer.TransactionSigner {
	return signer.NewEd25519Signer(keys.Ed25519KeyPairForTests(setIndex))
}

func EcdsaSecp256K1Signer(setIndex int) signer.TransactionSigner {
	return signer.NewEcdsaSecp256K1Signer(keys.EcdsaSecp256K1KeyPairForTests(setIndex))
}

func AddressOf(s signer.TransactionSigner) protocol.Address {
	address, err := signer.Address(s)
	if err != nil {
		panic(err)
	}
	return address
}

// CounterSigner holds the key of a test counter account, its key sets never overlap the user keys
func CounterSigner(setIndex int) signer.TransactionSigner {
	return Ed25519Signer(1000 + setIndex)
}

// AddressForTests is a stable valid address that no test key controls
func AddressForTests(b byte) protocol.Address {
	address := make(protocol.Address, protocol.ADDRESS_SIZE_BYTES)
	address[0] = 0xaa
	address[protocol.ADDRESS_SIZE_BYTES-1] = b
	return address
}

func (t *transaction) WithAccount(address protocol.Address, isSigner bool, isWritable bool) *transaction {
	t.tx.Accounts = append(t.tx.Accounts, protocol.AccountMeta{Address: address, IsSigner: isSigner, IsWritable: isWritable})
	return t
}

// WithCounterAccounts lists the counter followed by the signer's own address as a writable signer
func (t *transaction) WithCounterAccounts(counter protocol.Address, user signer.TransactionSigner) *transaction {
	return t.WithAccount(counter, false, true).WithAccount(AddressOf(user), true, true)
}

// WithInitializeAccounts lists the new counter and the paying user, both as writable signers, and signs with both keys
func (t *transaction) WithInitializeAccounts(counter signer.TransactionSigner, user signer.TransactionSigner) *transaction {
	t.signers = []signer.TransactionSigner{user, counter}
	return t.WithAccount(AddressOf(counter), true, true).WithAccount(AddressOf(user), true, true)
}

func (t *transaction) WithSigners(signers ...signer.TransactionSigner) *transaction {
	t.signers = signers
	return t
}

func (t *transaction) WithTimestamp(ts time.Time) *transaction {
	t.tx.Timestamp = primitives.TimestampNano(ts.UnixNano())
	return t
}

func (t *transaction) WithProtocolVersion(version primitives.ProtocolVersion) *transaction {
	t.tx.ProtocolVersion = version
	return t
}

// WithCorruptSignature flips a bit in every signature after signing
func (t *transaction) WithCorruptSignature() *transaction {
	t.corrupt = true
	return t
}

func (t *transaction) Build() *protocol.SignedTransaction {
	signed, err := signer.SignTransaction(t.tx, t.signers...)
	if err != nil {
		panic(err)
	}
	if t.corrupt {
		for _, sig := range signed.Signatures {
			sig.Signature[0] ^= 0x01
		}
	}
	return signed
}
