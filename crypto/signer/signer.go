// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package signer

import (
	"github.com/orbs-network/orbs-counter-go/crypto/digest"
	"github.com/orbs-network/orbs-counter-go/crypto/keys"
	"github.com/orbs-network/orbs-counter-go/crypto/signature"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

type TransactionSigner interface {
	Signer() protocol.Signer
	Sign(txHash primitives.Sha256) ([]byte, error)
}

type Ed25519Signer struct {
	keyPair *keys.Ed25519KeyPair
}

func NewEd25519Signer(keyPair *keys.Ed25519KeyPair) *Ed25519Signer {
	return &Ed25519Signer{keyPair: keyPair}
}

func (s *Ed25519Signer) Signer() protocol.Signer {
	return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_EDDSA, PublicKey: s.keyPair.PublicKey()}
}

func (s *Ed25519Signer) Sign(txHash primitives.Sha256) ([]byte, error) {
	return signature.SignEd25519(s.keyPair.PrivateKey(), txHash)
}

type EcdsaSecp256K1Signer struct {
	keyPair *keys.EcdsaSecp256K1KeyPair
}

func NewEcdsaSecp256K1Signer(keyPair *keys.EcdsaSecp256K1KeyPair) *EcdsaSecp256K1Signer {
	return &EcdsaSecp256K1Signer{keyPair: keyPair}
}

func (s *EcdsaSecp256K1Signer) Signer() protocol.Signer {
	return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_ECDSA_SECP256K1, PublicKey: s.keyPair.PublicKey()}
}

func (s *EcdsaSecp256K1Signer) Sign(txHash primitives.Sha256) ([]byte, error) {
	return signature.SignEcdsaSecp256K1(s.keyPair.PrivateKey(), txHash)
}

// Address of the account the signer controls
func Address(s TransactionSigner) (protocol.Address, error) {
	return digest.CalcSignerAddress(s.Signer())
}

// SignTransaction signs the transaction hash once per signer, in order
func SignTransaction(tx *protocol.Transaction, signers ...TransactionSigner) (*protocol.SignedTransaction, error) {
	txHash := digest.CalcTxHash(tx)
	signed := &protocol.SignedTransaction{Transaction: tx}

	for _, s := range signers {
		sig, err := s.Sign(txHash)
		if err != nil {
			return nil, errors.Wrap(err, "failed signing transaction")
		}
		signed.Signatures = append(signed.Signatures, protocol.TransactionSignature{Signer: s.Signer(), Signature: sig})
	}

	return signed, nil
}
