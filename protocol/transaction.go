// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"fmt"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

const CURRENT_PROTOCOL_VERSION = primitives.ProtocolVersion(1)

type SignerScheme uint16

const (
	SIGNER_SCHEME_RESERVED        SignerScheme = 0
	SIGNER_SCHEME_EDDSA           SignerScheme = 1
	SIGNER_SCHEME_ECDSA_SECP256K1 SignerScheme = 2
)

func (s SignerScheme) String() string {
	switch s {
	case SIGNER_SCHEME_RESERVED:
		return "SIGNER_SCHEME_RESERVED"
	case SIGNER_SCHEME_EDDSA:
		return "SIGNER_SCHEME_EDDSA"
	case SIGNER_SCHEME_ECDSA_SECP256K1:
		return "SIGNER_SCHEME_ECDSA_SECP256K1"
	}
	return "UNKNOWN"
}

type Signer struct {
	Scheme    SignerScheme
	PublicKey []byte
}

type AccountMeta struct {
	Address    Address
	IsSigner   bool
	IsWritable bool
}

type Transaction struct {
	ProtocolVersion primitives.ProtocolVersion
	ProgramId       Address
	MethodName      primitives.MethodName
	Accounts        []AccountMeta
	Timestamp       primitives.TimestampNano
}

func (t *Transaction) String() string {
	return fmt.Sprintf("{ProtocolVersion:%d,ProgramId:%s,MethodName:%s,Accounts:%d,Timestamp:%d}",
		t.ProtocolVersion, t.ProgramId, t.MethodName, len(t.Accounts), t.Timestamp)
}

// Raw returns the canonical encoding which is hashed and signed. Every field is written
// in declaration order; variable sized fields are prefixed with their uint32 length.
func (t *Transaction) Raw() []byte {
	w := &rawWriter{}
	w.writeUint32(uint32(t.ProtocolVersion))
	w.writeBytes(t.ProgramId)
	w.writeBytes([]byte(t.MethodName))
	w.writeUint32(uint32(len(t.Accounts)))
	for _, account := range t.Accounts {
		w.writeBytes(account.Address)
		w.writeUint32(account.flags())
	}
	w.writeUint64(uint64(t.Timestamp))
	return w.buf
}

const (
	accountFlagSigner   = 1 << 0
	accountFlagWritable = 1 << 1
)

func (a AccountMeta) flags() uint32 {
	var f uint32
	if a.IsSigner {
		f |= accountFlagSigner
	}
	if a.IsWritable {
		f |= accountFlagWritable
	}
	return f
}

type TransactionSignature struct {
	Signer    Signer
	Signature []byte
}

type SignedTransaction struct {
	Transaction *Transaction
	Signatures  []TransactionSignature
}
