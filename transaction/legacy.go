// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/pte-client/fault"
)

// LegacyNonce - find the single Nonce instruction of an older
// instruction stream
func LegacyNonce(instructions []Instruction) (uint64, error) {
	found := false
	nonce := uint64(0)
	for _, instruction := range instructions {
		n, ok := instruction.(Nonce)
		if !ok {
			continue
		}
		if found {
			return 0, fault.ErrMultipleNonceFound
		}
		found = true
		nonce = n.Value
	}
	if !found {
		return 0, fault.ErrNoNonceFound
	}
	return nonce, nil
}

// FromLegacy - convert an older instruction stream into an intent
//
// the nonce instruction is removed and its value replaces the nonce
// of the supplied header
func FromLegacy(instructions []Instruction, header Header) (*Intent, error) {
	nonce, err := LegacyNonce(instructions)
	if nil != err {
		return nil, err
	}

	manifest := make(Manifest, 0, len(instructions)-1)
	for _, instruction := range instructions {
		if _, ok := instruction.(Nonce); ok {
			continue
		}
		manifest = append(manifest, instruction)
	}

	header.Nonce = nonce
	return &Intent{
		Header:   header,
		Manifest: manifest,
	}, nil
}
