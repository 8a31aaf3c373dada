// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/pte-client/fault"
)

// KeyType - signature scheme of a key
type KeyType uint8

// enumeration of supported key algorithms
const (
	NoKey          = KeyType(iota) // zero value, never valid
	EcdsaSecp256k1 = KeyType(iota)
	Ed25519        = KeyType(iota)
	// end of list (one greater than last item)
	keyTypeLimit = KeyType(iota)
)

// key sizes
const (
	EcdsaPublicKeySize   = 33 // compressed point
	Ed25519PublicKeySize = 32
)

// PublicKey - public half of a signing key
type PublicKey struct {
	Type  KeyType
	Bytes []byte
}

// Signature - raw signature bytes
type Signature []byte

// SignaturePair - a public key and the signature it made
type SignaturePair struct {
	PublicKey PublicKey
	Signature Signature
}

// Signer - capability to sign on behalf of one key
type Signer interface {
	PublicKey() PublicKey
	Sign(message []byte) (Signature, error)
}

// Validate - check type and length
func (key PublicKey) Validate() error {
	switch key.Type {
	case EcdsaSecp256k1:
		if EcdsaPublicKeySize != len(key.Bytes) {
			return fault.ErrKeyLength
		}
		if 0x02 != key.Bytes[0] && 0x03 != key.Bytes[0] {
			return fault.ErrInvalidPublicKey
		}
	case Ed25519:
		if Ed25519PublicKeySize != len(key.Bytes) {
			return fault.ErrKeyLength
		}
	default:
		return fault.ErrInvalidKeyType
	}
	return nil
}

// Equal - same type and bytes
func (key PublicKey) Equal(other PublicKey) bool {
	return key.Type == other.Type && bytes.Equal(key.Bytes, other.Bytes)
}

// String - canonical hex encoding
func (key PublicKey) String() string {
	return hex.EncodeToString(key.Bytes)
}

// String - canonical hex encoding
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// String - for the fmt package
func (t KeyType) String() string {
	switch t {
	case EcdsaSecp256k1:
		return "ecdsa"
	case Ed25519:
		return "ed25519"
	default:
		return "none"
	}
}

// KeyTypeFromString - inverse of KeyType.String
func KeyTypeFromString(s string) (KeyType, error) {
	for t := EcdsaSecp256k1; t < keyTypeLimit; t += 1 {
		if t.String() == s {
			return t, nil
		}
	}
	return NoKey, fault.ErrInvalidKeyType
}
