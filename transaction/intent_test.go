// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/keypair"
	"github.com/bitmark-inc/pte-client/transaction"
)

const (
	notaryKey = "7c9fa136d4413fa6173637e883b6998d32e1d675f88cddff9dcbcf331820f4b8"
	otherKey  = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
)

func makeKeyPair(t *testing.T, keyType transaction.KeyType, privateKey string) *keypair.KeyPair {
	k, err := keypair.FromHex(keyType, privateKey)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return k
}

func makeHeader(notary transaction.Signer, nonce uint64) transaction.Header {
	return transaction.Header{
		Version:             transaction.HeaderVersion,
		NetworkID:           0xf2,
		StartEpochInclusive: 0,
		EndEpochExclusive:   100,
		Nonce:               nonce,
		NotaryPublicKey:     notary.PublicKey(),
		NotaryAsSignatory:   true,
		CostUnitLimit:       10000000,
		TipPercentage:       0,
	}
}

func makeManifest() transaction.Manifest {
	return transaction.NewManifestBuilder().
		CallMethod(address.SystemComponent, "free_xrd").
		Build()
}

func TestPackDeterministic(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)

	a := transaction.Intent{Header: makeHeader(notary, 42), Manifest: makeManifest()}
	b := transaction.Intent{Header: makeHeader(notary, 42), Manifest: makeManifest()}
	c := transaction.Intent{Header: makeHeader(notary, 43), Manifest: makeManifest()}

	packedA, err := a.Pack()
	assert.Nil(t, err, "pack a")
	packedB, err := b.Pack()
	assert.Nil(t, err, "pack b")
	assert.Equal(t, packedA, packedB, "same intent packed differently")

	hashA, err := a.Hash()
	assert.Nil(t, err, "hash a")
	hashC, err := c.Hash()
	assert.Nil(t, err, "hash c")
	assert.NotEqual(t, hashA, hashC, "nonce not covered by hash")
}

func TestPackUnknown(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)

	intent := transaction.Intent{
		Header:   makeHeader(notary, 1),
		Manifest: transaction.Manifest{nil},
	}
	_, err := intent.Pack()
	assert.Equal(t, fault.ErrUnknownInstruction, err, "nil instruction")

	intent.Manifest = transaction.Manifest{
		transaction.CallMethod{
			Component: address.SystemComponent,
			Method:    "free_xrd",
			Args:      []transaction.Value{3.14},
		},
	}
	_, err = intent.Pack()
	assert.Equal(t, fault.ErrUnknownValue, err, "float argument")
}

func TestSignErrors(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)

	intent := transaction.Intent{Header: makeHeader(notary, 1)}
	_, err := transaction.Sign(intent)
	assert.Equal(t, fault.ErrEmptyManifest, err, "empty manifest")

	intent.Manifest = makeManifest()
	intent.Header.EndEpochExclusive = intent.Header.StartEpochInclusive
	_, err = transaction.Sign(intent)
	assert.Equal(t, fault.ErrInvalidEpochWindow, err, "epoch window")

	intent.Header = makeHeader(notary, 1)
	intent.Header.NotaryPublicKey = transaction.PublicKey{}
	_, err = transaction.Sign(intent)
	assert.Equal(t, fault.ErrMissingNotary, err, "missing notary")

	intent.Header = makeHeader(notary, 1)
	_, err = transaction.Sign(intent, notary, notary)
	assert.Equal(t, fault.ErrDuplicateSigner, err, "duplicate signer")
}

func TestNotarizeMismatch(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)
	other := makeKeyPair(t, transaction.Ed25519, otherKey)

	signed, err := transaction.Sign(transaction.Intent{Header: makeHeader(notary, 1), Manifest: makeManifest()})
	assert.Nil(t, err, "sign")

	_, err = transaction.Notarize(signed, other)
	assert.Equal(t, fault.ErrNotaryKeyMismatch, err, "wrong notary")

	_, err = transaction.Notarize(signed, nil)
	assert.Equal(t, fault.ErrMissingNotary, err, "nil notary")
}

func TestNotaryOnly(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)

	tx, err := transaction.Build(makeHeader(notary, 42), makeManifest(), notary)
	assert.Nil(t, err, "build")

	assert.Equal(t, uint64(42), tx.Header().Nonce, "nonce")
	assert.Equal(t, 1, len(tx.Manifest()), "manifest")

	pairs := tx.Signatures()
	assert.Equal(t, 1, len(pairs), "signature count")
	assert.Equal(t, notary.PublicKey(), pairs[0].PublicKey, "notary key")

	hash, err := tx.Signed.Hash()
	assert.Nil(t, err, "signed hash")
	assert.Nil(t, keypair.Verify(pairs[0].PublicKey, hash[:], pairs[0].Signature), "notary signature")
}

func TestSignaturesOrder(t *testing.T) {
	notary := makeKeyPair(t, transaction.EcdsaSecp256k1, notaryKey)
	first := makeKeyPair(t, transaction.Ed25519, otherKey)
	second := makeKeyPair(t, transaction.Ed25519, notaryKey)

	header := makeHeader(notary, 7)
	header.NotaryAsSignatory = false

	tx, err := transaction.Build(header, makeManifest(), notary, first, second)
	assert.Nil(t, err, "build")

	pairs := tx.Signatures()
	assert.Equal(t, 3, len(pairs), "signature count")
	assert.Equal(t, first.PublicKey(), pairs[0].PublicKey, "first signer")
	assert.Equal(t, second.PublicKey(), pairs[1].PublicKey, "second signer")
	assert.Equal(t, notary.PublicKey(), pairs[2].PublicKey, "notary last")

	intentHash, err := tx.Signed.Intent.Hash()
	assert.Nil(t, err, "intent hash")
	for i, pair := range pairs[:2] {
		assert.Nil(t, keypair.Verify(pair.PublicKey, intentHash[:], pair.Signature), "%d: intent signature", i)
	}

	// the accessor must not alias the signed intent
	pairs[0].Signature = nil
	assert.NotNil(t, tx.Signed.Signatures[0].Signature, "signatures aliased")
}

func TestNotarizedHashChanges(t *testing.T) {
	notary := makeKeyPair(t, transaction.Ed25519, otherKey)

	a, err := transaction.Build(makeHeader(notary, 1), makeManifest(), notary)
	assert.Nil(t, err, "build a")
	b, err := transaction.Build(makeHeader(notary, 2), makeManifest(), notary)
	assert.Nil(t, err, "build b")

	hashA, err := a.Hash()
	assert.Nil(t, err, "hash a")
	hashB, err := b.Hash()
	assert.Nil(t, err, "hash b")
	assert.NotEqual(t, hashA, hashB, "different transactions share an identifier")
}
