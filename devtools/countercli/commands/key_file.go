// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"encoding/json"
	"io/ioutil"

	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/crypto/keys"
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/pkg/errors"
)

const DEFAULT_KEY_FILE = "./.counterKeys.json"

type KeyFile struct {
	Scheme     string
	PublicKey  string
	PrivateKey string
	Address    string
}

func generateSigner(scheme string) (signer.TransactionSigner, []byte, error) {
	switch scheme {
	case jsonapi.SIGNER_SCHEME_EDDSA:
		keyPair, err := keys.GenerateEd25519Key()
		if err != nil {
			return nil, nil, err
		}
		return signer.NewEd25519Signer(keyPair), keyPair.PrivateKey(), nil
	case jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1:
		keyPair, err := keys.GenerateEcdsaSecp256K1Key()
		if err != nil {
			return nil, nil, err
		}
		return signer.NewEcdsaSecp256K1Signer(keyPair), keyPair.PrivateKey(), nil
	}
	return nil, nil, errors.Errorf("unknown signer scheme %q, expected %s or %s", scheme, jsonapi.SIGNER_SCHEME_EDDSA, jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1)
}

func writeKeyFile(path string, scheme string) (*KeyFile, error) {
	s, privateKey, err := generateSigner(scheme)
	if err != nil {
		return nil, err
	}

	address, err := signer.Address(s)
	if err != nil {
		return nil, err
	}

	keyFile := &KeyFile{
		Scheme:     scheme,
		PublicKey:  encoding.EncodeHex(s.Signer().PublicKey),
		PrivateKey: encoding.EncodeHex(privateKey),
		Address:    encoding.EncodeHex(address),
	}

	bytes, err := json.MarshalIndent(keyFile, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := ioutil.WriteFile(path, bytes, 0600); err != nil {
		return nil, errors.Wrapf(err, "could not write key file %s", path)
	}
	return keyFile, nil
}

func readSigner(path string) (signer.TransactionSigner, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read key file %s, run keygen first", path)
	}

	keyFile := &KeyFile{}
	if err := json.Unmarshal(bytes, keyFile); err != nil {
		return nil, errors.Wrapf(err, "key file %s is not valid json", path)
	}

	privateKey, err := encoding.DecodeHex(keyFile.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode private key")
	}

	switch keyFile.Scheme {
	case jsonapi.SIGNER_SCHEME_EDDSA:
		keyPair, err := keys.Ed25519KeyPairFromPrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return signer.NewEd25519Signer(keyPair), nil
	case jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1:
		keyPair, err := keys.EcdsaSecp256K1KeyPairFromPrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return signer.NewEcdsaSecp256K1Signer(keyPair), nil
	}
	return nil, errors.Errorf("key file %s has unknown signer scheme %q", path, keyFile.Scheme)
}
