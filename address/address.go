// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/bitmark-inc/pte-client/fault"
)

// Length - byte size of every address
const Length = 27

// EntityType - first byte of an address
type EntityType byte

// the known entity types
const (
	PackageEntity   = EntityType(0x01)
	ComponentEntity = EntityType(0x02)
	ResourceEntity  = EntityType(0x03)
)

// PackageAddress - address of a published package
type PackageAddress [Length]byte

// ComponentAddress - address of an instantiated component (including accounts)
type ComponentAddress [Length]byte

// ResourceAddress - address of a fungible or non-fungible resource
type ResourceAddress [Length]byte

// well known addresses on the test network
var (
	SystemComponent = ComponentAddress{0: byte(ComponentEntity), Length - 1: 0x02}
	AccountPackage  = PackageAddress{0: byte(PackageEntity), Length - 1: 0x03}
	RadixToken      = ResourceAddress{0: byte(ResourceEntity), Length - 1: 0x04}
	EcdsaToken      = ResourceAddress{0: byte(ResourceEntity), Length - 1: 0x05}
)

// PackageAddressFromString - parse and validate hex text
func PackageAddressFromString(s string) (PackageAddress, error) {
	var a PackageAddress
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// ComponentAddressFromString - parse and validate hex text
func ComponentAddressFromString(s string) (ComponentAddress, error) {
	var a ComponentAddress
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// ResourceAddressFromString - parse and validate hex text
func ResourceAddressFromString(s string) (ResourceAddress, error) {
	var a ResourceAddress
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// String - hex for the fmt package (for %s)
func (a PackageAddress) String() string { return hex.EncodeToString(a[:]) }

// String - hex for the fmt package (for %s)
func (a ComponentAddress) String() string { return hex.EncodeToString(a[:]) }

// String - hex for the fmt package (for %s)
func (a ResourceAddress) String() string { return hex.EncodeToString(a[:]) }

// GoString - for the fmt package (for %#v)
func (a PackageAddress) GoString() string { return "<package:" + a.String() + ">" }

// GoString - for the fmt package (for %#v)
func (a ComponentAddress) GoString() string { return "<component:" + a.String() + ">" }

// GoString - for the fmt package (for %#v)
func (a ResourceAddress) GoString() string { return "<resource:" + a.String() + ">" }

// MarshalText - convert address to hex text
func (a PackageAddress) MarshalText() ([]byte, error) { return marshal(a[:]), nil }

// MarshalText - convert address to hex text
func (a ComponentAddress) MarshalText() ([]byte, error) { return marshal(a[:]), nil }

// MarshalText - convert address to hex text
func (a ResourceAddress) MarshalText() ([]byte, error) { return marshal(a[:]), nil }

// UnmarshalText - convert hex text into an address
func (a *PackageAddress) UnmarshalText(s []byte) error {
	return unmarshal(a[:], s, PackageEntity)
}

// UnmarshalText - convert hex text into an address
func (a *ComponentAddress) UnmarshalText(s []byte) error {
	return unmarshal(a[:], s, ComponentEntity)
}

// UnmarshalText - convert hex text into an address
func (a *ResourceAddress) UnmarshalText(s []byte) error {
	return unmarshal(a[:], s, ResourceEntity)
}

// Entity - the entity type byte of the hex text, without full validation
func Entity(s string) (EntityType, error) {
	if len(s) < 2 {
		return 0, fault.ErrAddressLength
	}
	b, err := hex.DecodeString(s[:2])
	if nil != err {
		return 0, fault.ErrInvalidAddress
	}
	return EntityType(b[0]), nil
}

func marshal(a []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(a)))
	hex.Encode(buffer, a)
	return buffer
}

// decode into a temporary so that a failed parse leaves the target unchanged
func unmarshal(a []byte, s []byte, entity EntityType) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrAddressLength
	}
	var buffer [Length]byte
	byteCount, err := hex.Decode(buffer[:], s)
	if nil != err {
		return fault.ErrInvalidAddress
	}
	if Length != byteCount {
		return fault.ErrAddressLength
	}
	if EntityType(buffer[0]) != entity {
		return fault.ErrWrongEntityType
	}
	copy(a, buffer[:])
	return nil
}
