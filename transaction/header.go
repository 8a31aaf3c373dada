// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/pte-client/fault"
)

// current header version
const HeaderVersion = 1

// Header - validity window, replay nonce and notary of a transaction
type Header struct {
	Version             uint8
	NetworkID           uint8
	StartEpochInclusive uint64
	EndEpochExclusive   uint64
	Nonce               uint64 // caller supplied, not checked locally
	NotaryPublicKey     PublicKey
	NotaryAsSignatory   bool
	CostUnitLimit       uint32
	TipPercentage       uint32
}

// Validate - local shape checks only, the network is the real verifier
func (header *Header) Validate() error {
	if header.EndEpochExclusive <= header.StartEpochInclusive {
		return fault.ErrInvalidEpochWindow
	}
	if 0 == len(header.NotaryPublicKey.Bytes) {
		return fault.ErrMissingNotary
	}
	return header.NotaryPublicKey.Validate()
}
