// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"crypto/ecdsa"
	"encoding/hex"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const (
	ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES  = 64
	ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES = 32
)

type EcdsaSecp256K1KeyPair struct {
	publicKey  primitives.EcdsaSecp256K1PublicKey
	privateKey primitives.EcdsaSecp256K1PrivateKey
}

func NewEcdsaSecp256K1KeyPair(publicKey primitives.EcdsaSecp256K1PublicKey, privateKey primitives.EcdsaSecp256K1PrivateKey) *EcdsaSecp256K1KeyPair {
	return &EcdsaSecp256K1KeyPair{publicKey, privateKey}
}

func (k *EcdsaSecp256K1KeyPair) PublicKey() primitives.EcdsaSecp256K1PublicKey {
	return k.publicKey
}

func (k *EcdsaSecp256K1KeyPair) PrivateKey() primitives.EcdsaSecp256K1PrivateKey {
	return k.privateKey
}

func (k *EcdsaSecp256K1KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.publicKey)
}

func (k *EcdsaSecp256K1KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.privateKey)
}

func GenerateEcdsaSecp256K1Key() (*EcdsaSecp256K1KeyPair, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new secp256k1 key")
	}
	return newEcdsaSecp256K1KeyPairFromECDSA(key), nil
}

func EcdsaSecp256K1KeyPairFromPrivateKey(privateKey []byte) (*EcdsaSecp256K1KeyPair, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid secp256k1 private key")
	}
	return newEcdsaSecp256K1KeyPairFromECDSA(key), nil
}

// public keys are kept without the 0x04 uncompressed point prefix
func newEcdsaSecp256K1KeyPairFromECDSA(key *ecdsa.PrivateKey) *EcdsaSecp256K1KeyPair {
	return NewEcdsaSecp256K1KeyPair(crypto.FromECDSAPub(&key.PublicKey)[1:], crypto.FromECDSA(key))
}
