// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// record tags, each packed record starts with one of these
const (
	intentTag    = uint64(0x31)
	signedTag    = uint64(0x32)
	notarizedTag = uint64(0x33)
)

// value tags
const (
	stringValue = uint64(iota + 1)
	u32Value
	u64Value
	boolValue
	decimalValue
	bucketValue
	accessRuleValue
	packageValue
	componentValue
	resourceValue
)

// pack the header
//
// Varint64 fields in struct order with the notary key as a
// Varint64(length) prefixed byte string
func (header *Header) pack(buffer Packed) Packed {
	buffer = appendUint64(buffer, uint64(header.Version))
	buffer = appendUint64(buffer, uint64(header.NetworkID))
	buffer = appendUint64(buffer, header.StartEpochInclusive)
	buffer = appendUint64(buffer, header.EndEpochExclusive)
	buffer = appendUint64(buffer, header.Nonce)
	buffer = appendKey(buffer, header.NotaryPublicKey)
	buffer = appendBool(buffer, header.NotaryAsSignatory)
	buffer = appendUint64(buffer, uint64(header.CostUnitLimit))
	buffer = appendUint64(buffer, uint64(header.TipPercentage))
	return buffer
}

// pack the manifest
//
// Varint64(count) followed by each instruction as Varint64(opcode)
// and its fields
func (manifest Manifest) pack(buffer Packed) (Packed, error) {
	buffer = appendUint64(buffer, uint64(len(manifest)))

	for _, instruction := range manifest {
		if nil == instruction {
			return nil, fault.ErrUnknownInstruction
		}
		buffer = appendUint64(buffer, uint64(instruction.Opcode()))

		switch i := instruction.(type) {
		case TakeFromWorktop:
			buffer = appendBytes(buffer, i.Resource[:])
			buffer = appendUint64(buffer, uint64(i.Bucket))

		case TakeFromWorktopByAmount:
			buffer = appendString(buffer, i.Amount.String())
			buffer = appendBytes(buffer, i.Resource[:])
			buffer = appendUint64(buffer, uint64(i.Bucket))

		case ReturnToWorktop:
			buffer = appendUint64(buffer, uint64(i.Bucket))

		case AssertWorktopContains:
			buffer = appendBytes(buffer, i.Resource[:])

		case CallFunction:
			buffer = appendBytes(buffer, i.Package[:])
			buffer = appendString(buffer, i.Blueprint)
			buffer = appendString(buffer, i.Function)
			b, err := appendValues(buffer, i.Args)
			if nil != err {
				return nil, err
			}
			buffer = b

		case CallMethod:
			buffer = appendBytes(buffer, i.Component[:])
			buffer = appendString(buffer, i.Method)
			b, err := appendValues(buffer, i.Args)
			if nil != err {
				return nil, err
			}
			buffer = b

		case CallMethodWithAllResources:
			buffer = appendBytes(buffer, i.Component[:])
			buffer = appendString(buffer, i.Method)

		case Nonce:
			buffer = appendUint64(buffer, i.Value)

		default:
			return nil, fault.ErrUnknownInstruction
		}
	}
	return buffer, nil
}

// append call arguments, Varint64(count) then tagged values
func appendValues(buffer Packed, values []Value) (Packed, error) {
	buffer = appendUint64(buffer, uint64(len(values)))

	for _, value := range values {
		switch v := value.(type) {
		case String:
			buffer = appendUint64(buffer, stringValue)
			buffer = appendString(buffer, string(v))
		case U32:
			buffer = appendUint64(buffer, u32Value)
			buffer = appendUint64(buffer, uint64(v))
		case U64:
			buffer = appendUint64(buffer, u64Value)
			buffer = appendUint64(buffer, uint64(v))
		case Bool:
			buffer = appendUint64(buffer, boolValue)
			buffer = appendBool(buffer, bool(v))
		case Decimal:
			buffer = appendUint64(buffer, decimalValue)
			buffer = appendString(buffer, v.String())
		case Bucket:
			buffer = appendUint64(buffer, bucketValue)
			buffer = appendUint64(buffer, uint64(v))
		case AccessRule:
			buffer = appendUint64(buffer, accessRuleValue)
			buffer = appendUint64(buffer, uint64(v.Kind))
			if RequireNonFungible == v.Kind {
				buffer = appendBytes(buffer, v.Badge.Resource[:])
				buffer = appendBytes(buffer, v.Badge.ID)
			}
		case address.PackageAddress:
			buffer = appendUint64(buffer, packageValue)
			buffer = appendBytes(buffer, v[:])
		case address.ComponentAddress:
			buffer = appendUint64(buffer, componentValue)
			buffer = appendBytes(buffer, v[:])
		case address.ResourceAddress:
			buffer = appendUint64(buffer, resourceValue)
			buffer = appendBytes(buffer, v[:])
		default:
			return nil, fault.ErrUnknownValue
		}
	}
	return buffer, nil
}

// append signatures, Varint64(count) then key/signature pairs
func appendSignatures(buffer Packed, signatures []SignaturePair) Packed {
	buffer = appendUint64(buffer, uint64(len(signatures)))
	for _, s := range signatures {
		buffer = appendKey(buffer, s.PublicKey)
		buffer = appendBytes(buffer, s.Signature)
	}
	return buffer
}

// append a key as Varint64(type) and length prefixed bytes
func appendKey(buffer Packed, key PublicKey) Packed {
	buffer = appendUint64(buffer, uint64(key.Type))
	return appendBytes(buffer, key.Bytes)
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = appendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a boolean as a single byte
func appendBool(buffer Packed, b bool) Packed {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	var valueBytes [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(valueBytes[:], value)
	return append(buffer, valueBytes[:n]...)
}
