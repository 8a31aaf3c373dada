// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"github.com/bitmark-inc/pte-client/manifest"
	"github.com/bitmark-inc/pte-client/transaction"
)

// Nonce - wrapped as an object on the wire
type Nonce struct {
	Value uint64 `json:"value"`
}

// Signature - hex encoded key and signature
type Signature struct {
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

// TransactionBody - the JSON envelope accepted by POST /transaction
type TransactionBody struct {
	Manifest   string      `json:"manifest"`
	Nonce      Nonce       `json:"nonce"`
	Signatures []Signature `json:"signatures"`
}

// NewTransactionBody - build the envelope for a notarized transaction
//
// the nonce is taken from the header; signatures are in signing order
// with the notary last. Only a decompile error can be returned.
func NewTransactionBody(tx *transaction.Notarized) (*TransactionBody, error) {
	text, err := manifest.Decompile(tx.Manifest())
	if nil != err {
		return nil, err
	}

	pairs := tx.Signatures()
	signatures := make([]Signature, len(pairs))
	for i, pair := range pairs {
		signatures[i] = Signature{
			PublicKey: pair.PublicKey.String(),
			Signature: pair.Signature.String(),
		}
	}

	return &TransactionBody{
		Manifest: text,
		Nonce: Nonce{
			Value: tx.Header().Nonce,
		},
		Signatures: signatures,
	}, nil
}
