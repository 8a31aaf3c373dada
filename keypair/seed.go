// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// seed layout: magic(3) key-type(1) core(32) checksum(4)
const (
	checksumLength = 4
	seedLength     = len(seedMagic) + 1 + PrivateKeySize + checksumLength
)

var seedMagic = [...]byte{0x5a, 0xfe, 0x02}

// NewSeed - create a new seed from random data
func NewSeed(keyType transaction.KeyType, random io.Reader) (string, error) {
	if transaction.EcdsaSecp256k1 != keyType && transaction.Ed25519 != keyType {
		return "", fault.ErrInvalidKeyType
	}

	// an ECDSA scalar out of range is retried with fresh data
	for {
		seedCore := make([]byte, PrivateKeySize)
		n, err := io.ReadFull(random, seedCore)
		if nil != err {
			return "", err
		}
		if PrivateKeySize != n {
			return "", fault.ErrNotEnoughRandomBytes
		}
		if _, err := FromPrivateKey(keyType, seedCore); fault.ErrInvalidSeed == err {
			continue
		}

		packedSeed := make([]byte, 0, seedLength)
		packedSeed = append(packedSeed, seedMagic[:]...)
		packedSeed = append(packedSeed, byte(keyType))
		packedSeed = append(packedSeed, seedCore...)
		checksum := sha3.Sum256(packedSeed)
		packedSeed = append(packedSeed, checksum[:checksumLength]...)

		return base58.Encode(packedSeed), nil
	}
}

// FromSeed - decode and validate a seed then generate its keys
func FromSeed(seed string) (*KeyPair, error) {
	packedSeed, err := base58.Decode(seed)
	if nil != err {
		return nil, fault.ErrInvalidSeed
	}
	if seedLength != len(packedSeed) {
		return nil, fault.ErrSeedLength
	}
	if !bytes.Equal(seedMagic[:], packedSeed[:len(seedMagic)]) {
		return nil, fault.ErrInvalidSeed
	}

	checksumStart := seedLength - checksumLength
	checksum := sha3.Sum256(packedSeed[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], packedSeed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	keyType := transaction.KeyType(packedSeed[len(seedMagic)])
	core := packedSeed[len(seedMagic)+1 : checksumStart]

	keyPair, err := FromPrivateKey(keyType, core)
	if nil != err {
		return nil, err
	}
	keyPair.Seed = seed
	return keyPair, nil
}
