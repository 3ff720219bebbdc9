// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-go/crypto/hash"
	"github.com/orbs-network/orbs-counter-go/crypto/keys"
	"golang.org/x/crypto/ed25519"
)

// Ed25519KeyPairForTests returns a key pair derived from a fixed seed so tests are reproducible.
func Ed25519KeyPairForTests(setIndex int) *keys.Ed25519KeyPair {
	seed := hash.CalcSha256([]byte(fmt.Sprintf("ed25519-test-key-%d", setIndex)))
	pri := ed25519.NewKeyFromSeed(seed)
	kp, err := keys.Ed25519KeyPairFromPrivateKey(pri)
	if err != nil {
		panic(err)
	}
	return kp
}
