// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

// Byte values travel as checksummed hex strings

const (
	SIGNER_SCHEME_EDDSA           = "eddsa"
	SIGNER_SCHEME_ECDSA_SECP256K1 = "ecdsa-secp256k1"
)

type AccountMeta struct {
	Address    string
	IsSigner   bool
	IsWritable bool
}

type Transaction struct {
	ProtocolVersion uint32
	ProgramId       string
	MethodName      string
	Accounts        []AccountMeta
	Timestamp       uint64 `json:",string"`
}

type Signature struct {
	Scheme    string
	PublicKey string
	Signature string
}

type SignedTransaction struct {
	Transaction Transaction
	Signatures  []Signature
}

type TransactionReceipt struct {
	TxHash            string
	TransactionStatus string
	ExecutionResult   string
	ErrorCode         uint32 `json:",omitempty"`
	ErrorMessage      string `json:",omitempty"`
	Logs              []string
	OutputValue       uint64 `json:",string"`
}

type Account struct {
	Address string
	Owner   string
	Data    string
}

type Counter struct {
	Address string
	Count   uint64 `json:",string"`
}

type ErrorOutput struct {
	Error string
}

func FromSignedTransaction(signedTx *protocol.SignedTransaction) *SignedTransaction {
	tx := signedTx.Transaction
	out := &SignedTransaction{
		Transaction: Transaction{
			ProtocolVersion: uint32(tx.ProtocolVersion),
			ProgramId:       encoding.EncodeHex(tx.ProgramId),
			MethodName:      string(tx.MethodName),
			Timestamp:       uint64(tx.Timestamp),
		},
	}

	for _, account := range tx.Accounts {
		out.Transaction.Accounts = append(out.Transaction.Accounts, AccountMeta{
			Address:    encoding.EncodeHex(account.Address),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		})
	}

	for _, sig := range signedTx.Signatures {
		out.Signatures = append(out.Signatures, Signature{
			Scheme:    schemeName(sig.Signer.Scheme),
			PublicKey: encoding.EncodeHex(sig.Signer.PublicKey),
			Signature: encoding.EncodeHex(sig.Signature),
		})
	}

	return out
}

// ToSignedTransaction validates the encoding only; signatures are verified by the node
func ToSignedTransaction(in *SignedTransaction) (*protocol.SignedTransaction, error) {
	programId, err := encoding.DecodeHexOfSize(in.Transaction.ProgramId, protocol.ADDRESS_SIZE_BYTES)
	if err != nil {
		return nil, errors.Wrap(err, "invalid program id")
	}

	tx := &protocol.Transaction{
		ProtocolVersion: primitives.ProtocolVersion(in.Transaction.ProtocolVersion),
		ProgramId:       programId,
		MethodName:      primitives.MethodName(in.Transaction.MethodName),
		Timestamp:       primitives.TimestampNano(in.Transaction.Timestamp),
	}

	for i, account := range in.Transaction.Accounts {
		address, err := encoding.DecodeHexOfSize(account.Address, protocol.ADDRESS_SIZE_BYTES)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid address of account %d", i)
		}
		tx.Accounts = append(tx.Accounts, protocol.AccountMeta{Address: address, IsSigner: account.IsSigner, IsWritable: account.IsWritable})
	}

	out := &protocol.SignedTransaction{Transaction: tx}
	for i, sig := range in.Signatures {
		publicKey, err := encoding.DecodeHex(sig.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid public key of signature %d", i)
		}
		signature, err := encoding.DecodeHex(sig.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid signature %d", i)
		}
		out.Signatures = append(out.Signatures, protocol.TransactionSignature{
			Signer:    protocol.Signer{Scheme: schemeFromName(sig.Scheme), PublicKey: publicKey},
			Signature: signature,
		})
	}

	return out, nil
}

func FromReceipt(receipt *protocol.TransactionReceipt) *TransactionReceipt {
	logs := receipt.Logs
	if logs == nil {
		logs = []string{}
	}
	return &TransactionReceipt{
		TxHash:            encoding.EncodeHex(receipt.Txhash),
		TransactionStatus: receipt.TransactionStatus.String(),
		ExecutionResult:   receipt.ExecutionResult.String(),
		ErrorCode:         receipt.ErrorCode,
		ErrorMessage:      receipt.ErrorMessage,
		Logs:              logs,
		OutputValue:       receipt.OutputValue,
	}
}

func FromAccount(account *protocol.Account) *Account {
	return &Account{
		Address: encoding.EncodeHex(account.Address),
		Owner:   encoding.EncodeHex(account.Owner),
		Data:    encoding.EncodeHex(account.Data),
	}
}

func schemeName(scheme protocol.SignerScheme) string {
	switch scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		return SIGNER_SCHEME_EDDSA
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		return SIGNER_SCHEME_ECDSA_SECP256K1
	}
	return scheme.String()
}

// unknown names map to the reserved scheme, which the node rejects
func schemeFromName(name string) protocol.SignerScheme {
	switch name {
	case SIGNER_SCHEME_EDDSA:
		return protocol.SIGNER_SCHEME_EDDSA
	case SIGNER_SCHEME_ECDSA_SECP256K1:
		return protocol.SIGNER_SCHEME_ECDSA_SECP256K1
	}
	return protocol.SIGNER_SCHEME_RESERVED
}
