// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/orbs-counter-go/crypto/hash"
	"github.com/orbs-network/orbs-counter-go/crypto/keys"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/pkg/errors"
)

var ErrUnknownSignerScheme = errors.New("unknown signer scheme")

// CalcSignerAddress returns the account address controlled by the signer's key.
func CalcSignerAddress(signer protocol.Signer) (protocol.Address, error) {
	switch signer.Scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		if len(signer.PublicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
			return nil, errors.Errorf("ed25519 public key length expected to be %d but was %d", keys.ED25519_PUBLIC_KEY_SIZE_BYTES, len(signer.PublicKey))
		}
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		if len(signer.PublicKey) != keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES {
			return nil, errors.Errorf("secp256k1 public key length expected to be %d but was %d", keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES, len(signer.PublicKey))
		}
	default:
		return nil, errors.Wrapf(ErrUnknownSignerScheme, "scheme %d", signer.Scheme)
	}

	scheme := make([]byte, 4)
	membuffers.WriteUint32(scheme, uint32(signer.Scheme))
	return protocol.Address(hash.CalcSha256(scheme, signer.PublicKey)), nil
}
