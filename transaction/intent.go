// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pte-client/fault"
)

// Digest - SHA3-256 of a packed record
type Digest [32]byte

// Intent - what the transaction will do, before any signature
type Intent struct {
	Header   Header
	Manifest Manifest
}

// Signed - intent plus the signatures of its signatories
type Signed struct {
	Intent     Intent
	Signatures []SignaturePair
}

// Notarized - signed intent wrapped by the notary signature
type Notarized struct {
	Signed          Signed
	NotarySignature Signature
}

// Pack - Varint64(tag), header, manifest
func (intent *Intent) Pack() (Packed, error) {
	buffer := appendUint64(nil, intentTag)
	buffer = intent.Header.pack(buffer)
	return intent.Manifest.pack(buffer)
}

// Hash - the message each signatory signs
func (intent *Intent) Hash() (Digest, error) {
	packed, err := intent.Pack()
	if nil != err {
		return Digest{}, err
	}
	return sha3.Sum256(packed), nil
}

// Pack - Varint64(tag), packed intent, signatures
func (signed *Signed) Pack() (Packed, error) {
	packedIntent, err := signed.Intent.Pack()
	if nil != err {
		return nil, err
	}
	buffer := appendUint64(nil, signedTag)
	buffer = appendBytes(buffer, packedIntent)
	return appendSignatures(buffer, signed.Signatures), nil
}

// Hash - the message the notary signs
func (signed *Signed) Hash() (Digest, error) {
	packed, err := signed.Pack()
	if nil != err {
		return Digest{}, err
	}
	return sha3.Sum256(packed), nil
}

// Pack - Varint64(tag), packed signed intent, notary signature last
func (notarized *Notarized) Pack() (Packed, error) {
	packedSigned, err := notarized.Signed.Pack()
	if nil != err {
		return nil, err
	}
	buffer := appendUint64(nil, notarizedTag)
	buffer = appendBytes(buffer, packedSigned)
	return appendBytes(buffer, notarized.NotarySignature), nil
}

// Hash - transaction identifier
func (notarized *Notarized) Hash() (Digest, error) {
	packed, err := notarized.Pack()
	if nil != err {
		return Digest{}, err
	}
	return sha3.Sum256(packed), nil
}

// Header - shortcut to the intent header
func (notarized *Notarized) Header() *Header {
	return &notarized.Signed.Intent.Header
}

// Manifest - shortcut to the intent instructions
func (notarized *Notarized) Manifest() Manifest {
	return notarized.Signed.Intent.Manifest
}

// Signatures - all signatures in order, intent signatures first and
// the notary signature last
func (notarized *Notarized) Signatures() []SignaturePair {
	n := len(notarized.Signed.Signatures)
	pairs := make([]SignaturePair, n, n+1)
	copy(pairs, notarized.Signed.Signatures)
	return append(pairs, SignaturePair{
		PublicKey: notarized.Signed.Intent.Header.NotaryPublicKey,
		Signature: notarized.NotarySignature,
	})
}

// Sign - every signer signs the intent hash, in the order given
func Sign(intent Intent, signers ...Signer) (*Signed, error) {
	if err := intent.Header.Validate(); nil != err {
		return nil, err
	}
	if 0 == len(intent.Manifest) {
		return nil, fault.ErrEmptyManifest
	}

	hash, err := intent.Hash()
	if nil != err {
		return nil, err
	}

	signatures := make([]SignaturePair, 0, len(signers))
	for _, signer := range signers {
		key := signer.PublicKey()
		for _, s := range signatures {
			if s.PublicKey.Equal(key) {
				return nil, fault.ErrDuplicateSigner
			}
		}
		signature, err := signer.Sign(hash[:])
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, SignaturePair{
			PublicKey: key,
			Signature: signature,
		})
	}

	return &Signed{
		Intent:     intent,
		Signatures: signatures,
	}, nil
}

// Notarize - notary signs the signed intent
//
// the notary must hold the key named in the header
func Notarize(signed *Signed, notary Signer) (*Notarized, error) {
	if nil == notary {
		return nil, fault.ErrMissingNotary
	}
	if !notary.PublicKey().Equal(signed.Intent.Header.NotaryPublicKey) {
		return nil, fault.ErrNotaryKeyMismatch
	}

	hash, err := signed.Hash()
	if nil != err {
		return nil, err
	}

	signature, err := notary.Sign(hash[:])
	if nil != err {
		return nil, err
	}

	return &Notarized{
		Signed:          *signed,
		NotarySignature: signature,
	}, nil
}

// Build - sign with the signers then notarize
func Build(header Header, manifest Manifest, notary Signer, signers ...Signer) (*Notarized, error) {
	signed, err := Sign(Intent{Header: header, Manifest: manifest}, signers...)
	if nil != err {
		return nil, err
	}
	return Notarize(signed, notary)
}
