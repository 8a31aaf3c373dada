// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/keypair"
	"github.com/bitmark-inc/pte-client/transaction"
)

// the sample key used by the test network documentation
const samplePrivateKey = "7c9fa136d4413fa6173637e883b6998d32e1d675f88cddff9dcbcf331820f4b8"

type deterministicReader struct{ b byte }

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

func TestEcdsaFromHex(t *testing.T) {
	k, err := keypair.FromHex(transaction.EcdsaSecp256k1, samplePrivateKey)
	assert.Nil(t, err, "key pair")

	publicKey := k.PublicKey()
	assert.Equal(t, transaction.EcdsaSecp256k1, publicKey.Type, "wrong key type")
	assert.Equal(t, "026a9d1b479d56f35483fdec1144fe1a9e90c4c074d29bde0baa91fef8a7c9de17", publicKey.String(), "wrong public key")
	assert.Nil(t, publicKey.Validate(), "invalid public key")
}

func TestEd25519FromHex(t *testing.T) {
	// RFC 8032 test 1
	k, err := keypair.FromHex(transaction.Ed25519, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	assert.Nil(t, err, "key pair")
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", k.PublicKey().String(), "wrong public key")

	signature, err := k.Sign([]byte{})
	assert.Nil(t, err, "sign")
	assert.Equal(t, "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b", signature.String(), "wrong signature")
}

func TestSignVerify(t *testing.T) {
	message := []byte("transaction intent hash")

	for _, keyType := range []transaction.KeyType{transaction.EcdsaSecp256k1, transaction.Ed25519} {
		k, err := keypair.FromHex(keyType, samplePrivateKey)
		assert.Nil(t, err, "%s: key pair", keyType)

		signature, err := k.Sign(message)
		assert.Nil(t, err, "%s: sign", keyType)

		err = keypair.Verify(k.PublicKey(), message, signature)
		assert.Nil(t, err, "%s: verify", keyType)

		err = keypair.Verify(k.PublicKey(), []byte("something else"), signature)
		assert.Equal(t, fault.ErrInvalidSignature, err, "%s: verified wrong message", keyType)

		tampered := append(transaction.Signature{}, signature...)
		tampered[len(tampered)-1] ^= 0x01
		err = keypair.Verify(k.PublicKey(), message, tampered)
		assert.Equal(t, fault.ErrInvalidSignature, err, "%s: verified tampered signature", keyType)
	}
}

func TestEcdsaSignatureSize(t *testing.T) {
	k, err := keypair.FromHex(transaction.EcdsaSecp256k1, samplePrivateKey)
	assert.Nil(t, err, "key pair")

	signature, err := k.Sign([]byte("hello"))
	assert.Nil(t, err, "sign")
	assert.Equal(t, 65, len(signature), "wrong signature size")
}

func TestInvalidPrivateKeys(t *testing.T) {
	items := []struct {
		keyType transaction.KeyType
		key     string
		err     error
	}{
		{transaction.EcdsaSecp256k1, "00", fault.ErrKeyLength},
		{transaction.EcdsaSecp256k1, "0000000000000000000000000000000000000000000000000000000000000000", fault.ErrInvalidSeed},
		{transaction.EcdsaSecp256k1, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", fault.ErrInvalidSeed},
		{transaction.NoKey, samplePrivateKey, fault.ErrInvalidKeyType},
	}

	for i, item := range items {
		_, err := keypair.FromHex(item.keyType, item.key)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestNewSeed(t *testing.T) {
	items := []struct {
		keyType transaction.KeyType
		seed    string
	}{
		{transaction.EcdsaSecp256k1, "5XEEMShGivP27BSG1fPpg9r1vQwhY3XGxHciy4gahpFyutLe8YvgjPD"},
		{transaction.Ed25519, "5XEEMUe1u9q3xc7V9UyXajU1sjYUTA8zbzTbkhkgwxwsuYM2dE5KdKv"},
	}

	for _, item := range items {
		seed, err := keypair.NewSeed(item.keyType, &deterministicReader{})
		assert.Nil(t, err, "%s: new seed", item.keyType)
		assert.Equal(t, item.seed, seed, "%s: wrong seed", item.keyType)

		raw, k, err := keypair.MakeRawKeyPairFromSeed(seed)
		assert.Nil(t, err, "%s: from seed", item.keyType)
		assert.Equal(t, seed, k.Seed, "%s: seed not kept", item.keyType)
		assert.Equal(t, item.keyType.String(), raw.Type, "%s: wrong raw type", item.keyType)
		assert.Equal(t, hex.EncodeToString(k.PrivateKey), raw.PrivateKey, "%s: wrong raw private key", item.keyType)
		assert.Equal(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", raw.PrivateKey, "%s: wrong core", item.keyType)
	}
}

func TestInvalidSeeds(t *testing.T) {
	items := []struct {
		seed string
		err  error
	}{
		{"0OIl", fault.ErrInvalidSeed},
		{"5XEEMShGivP27BSG1fPpg9r1vQwhY3XGxHciy4gahpFyutLe8Yvg", fault.ErrSeedLength},
		{"5XEEMShGivP27BSG1fPpg9r1vQwhY3XGxHciy4gahpFyutLe8YvgjPE", fault.ErrChecksumMismatch},
	}

	for i, item := range items {
		_, err := keypair.FromSeed(item.seed)
		assert.Equal(t, item.err, err, "%d: wrong error for %q", i, item.seed)
	}
}

func TestSeedLayout(t *testing.T) {
	for _, keyType := range []transaction.KeyType{transaction.EcdsaSecp256k1, transaction.Ed25519} {
		seed, err := keypair.NewSeed(keyType, &deterministicReader{b: 7})
		assert.Nil(t, err, "%s: new seed", keyType)

		packed, err := base58.Decode(seed)
		assert.Nil(t, err, "%s: decode", keyType)
		assert.Equal(t, 3+1+keypair.PrivateKeySize+4, len(packed), "%s: packed length", keyType)
		assert.Equal(t, []byte{0x5a, 0xfe, 0x02}, packed[:3], "%s: magic", keyType)
		assert.Equal(t, byte(keyType), packed[3], "%s: key type", keyType)

		// same length with the magic cleared
		packed[0] = 0
		_, err = keypair.FromSeed(base58.Encode(packed))
		assert.Equal(t, fault.ErrInvalidSeed, err, "%s: bad magic accepted", keyType)
	}
}

func TestMakeRawKeyPair(t *testing.T) {
	raw, k, err := keypair.MakeRawKeyPair(transaction.Ed25519)
	assert.Nil(t, err, "make key pair")
	assert.Equal(t, "ed25519", raw.Type, "wrong type")
	assert.Equal(t, k.PublicKey().String(), raw.PublicKey, "wrong public key")

	_, _, err = keypair.MakeRawKeyPair(transaction.NoKey)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "invalid key type accepted")
}
