// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// Verify - check a signature made by KeyPair.Sign
func Verify(publicKey transaction.PublicKey, message []byte, signature transaction.Signature) error {
	if err := publicKey.Validate(); nil != err {
		return err
	}

	switch publicKey.Type {
	case transaction.EcdsaSecp256k1:
		digest := sha3.Sum256(message)
		recovered, compressed, err := btcec.RecoverCompact(btcec.S256(), signature, digest[:])
		if nil != err || !compressed {
			return fault.ErrInvalidSignature
		}
		if !bytes.Equal(recovered.SerializeCompressed(), publicKey.Bytes) {
			return fault.ErrInvalidSignature
		}

	case transaction.Ed25519:
		if ed25519.SignatureSize != len(signature) {
			return fault.ErrInvalidSignature
		}
		if !ed25519.Verify(ed25519.PublicKey(publicKey.Bytes), message, signature) {
			return fault.ErrInvalidSignature
		}

	default:
		return fault.ErrInvalidKeyType
	}
	return nil
}
