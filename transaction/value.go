// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/pte-client/address"
)

// Value - an argument to a function or method call
//
// supported kinds:
//   String, U32, U64, Bool, Decimal, Bucket, AccessRule,
//   address.PackageAddress, address.ComponentAddress, address.ResourceAddress
//
// any other type is rejected when packing or decompiling
type Value interface{}

// String - text argument
type String string

// U32 - unsigned 32 bit argument
type U32 uint32

// U64 - unsigned 64 bit argument
type U64 uint64

// Bool - boolean argument
type Bool bool

// Bucket - identifies resources taken from the worktop
type Bucket uint32

// first bucket number allocated by the builder
const firstBucket = Bucket(512)

// AccessRuleKind - the form of an access rule
type AccessRuleKind uint8

// the supported rule forms
const (
	AllowAll           = AccessRuleKind(iota)
	DenyAll            = AccessRuleKind(iota)
	RequireNonFungible = AccessRuleKind(iota)
)

// AccessRule - authorisation rule, e.g. for withdrawing from an account
type AccessRule struct {
	Kind  AccessRuleKind
	Badge address.NonFungibleAddress
}

// Require - rule satisfied by presenting a proof of the badge
func Require(badge address.NonFungibleAddress) AccessRule {
	return AccessRule{
		Kind:  RequireNonFungible,
		Badge: badge,
	}
}
