// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
)

// NonFungibleID - the key of a single non-fungible unit
type NonFungibleID []byte

// NonFungibleAddress - a single non-fungible unit of a resource
type NonFungibleAddress struct {
	Resource ResourceAddress
	ID       NonFungibleID
}

// String - hex of the id
func (id NonFungibleID) String() string {
	return hex.EncodeToString(id)
}

// String - hex of the resource address followed by the id
func (n NonFungibleAddress) String() string {
	return n.Resource.String() + n.ID.String()
}

// NewNonFungibleAddress - badge address derived from a public key
//
// signature virtual badges use the raw public key bytes as the id
func NewNonFungibleAddress(resource ResourceAddress, id []byte) NonFungibleAddress {
	n := NonFungibleAddress{
		Resource: resource,
		ID:       make(NonFungibleID, len(id)),
	}
	copy(n.ID, id)
	return n
}
