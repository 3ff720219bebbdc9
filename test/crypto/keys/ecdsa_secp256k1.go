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
)

func EcdsaSecp256K1KeyPairForTests(setIndex int) *keys.EcdsaSecp256K1KeyPair {
	pri := hash.CalcSha256([]byte(fmt.Sprintf("secp256k1-test-key-%d", setIndex)))
	kp, err := keys.EcdsaSecp256K1KeyPairFromPrivateKey(pri)
	if err != nil {
		panic(err)
	}
	return kp
}
