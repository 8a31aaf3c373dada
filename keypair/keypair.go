// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// PrivateKeySize - raw private key (or ed25519 seed) length
const PrivateKeySize = 32

// KeyPair - structure to hold a signing key and the seed that was
// used to generate it
//
// implements transaction.Signer
type KeyPair struct {
	Seed       string
	PrivateKey []byte

	publicKey  transaction.PublicKey
	ecdsaKey   *btcec.PrivateKey
	ed25519Key ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Type       string `json:"type"`
	Seed       string `json:"seed"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(keyType transaction.KeyType) (*RawKeyPair, *KeyPair, error) {
	seed, err := NewSeed(keyType, rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {
	keyPair, err := FromSeed(seed)
	if nil != err {
		return nil, nil, err
	}

	rawKeyPair := RawKeyPair{
		Type:       keyPair.publicKey.Type.String(),
		Seed:       seed,
		PublicKey:  keyPair.publicKey.String(),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
	return &rawKeyPair, keyPair, nil
}

// FromHex - key pair from a hexadecimal private key (no seed)
func FromHex(keyType transaction.KeyType, privateKey string) (*KeyPair, error) {
	k, err := hex.DecodeString(privateKey)
	if nil != err {
		return nil, err
	}
	return FromPrivateKey(keyType, k)
}

// FromPrivateKey - key pair from raw private key bytes (no seed)
func FromPrivateKey(keyType transaction.KeyType, privateKey []byte) (*KeyPair, error) {
	if PrivateKeySize != len(privateKey) {
		return nil, fault.ErrKeyLength
	}

	keyPair := &KeyPair{
		PrivateKey: make([]byte, PrivateKeySize),
	}
	copy(keyPair.PrivateKey, privateKey)

	switch keyType {
	case transaction.EcdsaSecp256k1:
		k := new(big.Int).SetBytes(privateKey)
		if 0 == k.Sign() || k.Cmp(btcec.S256().N) >= 0 {
			return nil, fault.ErrInvalidSeed
		}
		private, public := btcec.PrivKeyFromBytes(btcec.S256(), keyPair.PrivateKey)
		keyPair.ecdsaKey = private
		keyPair.publicKey = transaction.PublicKey{
			Type:  keyType,
			Bytes: public.SerializeCompressed(),
		}

	case transaction.Ed25519:
		private := ed25519.NewKeyFromSeed(keyPair.PrivateKey)
		keyPair.ed25519Key = private
		keyPair.publicKey = transaction.PublicKey{
			Type:  keyType,
			Bytes: []byte(private.Public().(ed25519.PublicKey)),
		}

	default:
		return nil, fault.ErrInvalidKeyType
	}

	return keyPair, nil
}

// PublicKey - the public half
func (keyPair *KeyPair) PublicKey() transaction.PublicKey {
	return keyPair.publicKey
}

// Sign - sign a message
//
// ECDSA signs SHA3-256(message) producing a 65 byte compact
// (recoverable) signature, ed25519 signs the message itself
func (keyPair *KeyPair) Sign(message []byte) (transaction.Signature, error) {
	switch keyPair.publicKey.Type {
	case transaction.EcdsaSecp256k1:
		digest := sha3.Sum256(message)
		signature, err := btcec.SignCompact(btcec.S256(), keyPair.ecdsaKey, digest[:], true)
		if nil != err {
			return nil, err
		}
		return transaction.Signature(signature), nil

	case transaction.Ed25519:
		return transaction.Signature(ed25519.Sign(keyPair.ed25519Key, message)), nil

	default:
		return nil, fault.ErrNilKeyPair
	}
}
