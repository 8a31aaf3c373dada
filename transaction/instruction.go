// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/pte-client/address"
)

// Opcode - type code for instructions
// this is encoded as a Varint64 at the start of each packed instruction
type Opcode uint64

// enumerate the instruction types
const (
	// null marks beginning of list - not used as an instruction
	NullOp = Opcode(iota)

	TakeFromWorktopOp            = Opcode(iota)
	TakeFromWorktopByAmountOp    = Opcode(iota)
	ReturnToWorktopOp            = Opcode(iota)
	AssertWorktopContainsOp      = Opcode(iota)
	CallFunctionOp               = Opcode(iota)
	CallMethodOp                 = Opcode(iota)
	CallMethodWithAllResourcesOp = Opcode(iota)
	NonceOp                      = Opcode(iota) // OBSOLETE: only in legacy instruction streams

	// this item must be last
	InvalidOp = Opcode(iota)
)

// Instruction - a single step of a manifest
type Instruction interface {
	Opcode() Opcode
}

// Manifest - ordered instruction sequence executed by the ledger
type Manifest []Instruction

// TakeFromWorktop - move all of a resource from the worktop into a new bucket
type TakeFromWorktop struct {
	Resource address.ResourceAddress
	Bucket   Bucket
}

// TakeFromWorktopByAmount - move an amount of a resource into a new bucket
type TakeFromWorktopByAmount struct {
	Amount   Decimal
	Resource address.ResourceAddress
	Bucket   Bucket
}

// ReturnToWorktop - put a bucket's contents back on the worktop
type ReturnToWorktop struct {
	Bucket Bucket
}

// AssertWorktopContains - abort unless the worktop holds the resource
type AssertWorktopContains struct {
	Resource address.ResourceAddress
}

// CallFunction - call a blueprint function of a package
type CallFunction struct {
	Package   address.PackageAddress
	Blueprint string
	Function  string
	Args      []Value
}

// CallMethod - call a method on a component
type CallMethod struct {
	Component address.ComponentAddress
	Method    string
	Args      []Value
}

// CallMethodWithAllResources - call a method passing everything on the worktop
type CallMethodWithAllResources struct {
	Component address.ComponentAddress
	Method    string
}

// Nonce - the nonce as carried by older instruction streams,
// current transactions carry it in the Header
type Nonce struct {
	Value uint64
}

func (TakeFromWorktop) Opcode() Opcode            { return TakeFromWorktopOp }
func (TakeFromWorktopByAmount) Opcode() Opcode    { return TakeFromWorktopByAmountOp }
func (ReturnToWorktop) Opcode() Opcode            { return ReturnToWorktopOp }
func (AssertWorktopContains) Opcode() Opcode      { return AssertWorktopContainsOp }
func (CallFunction) Opcode() Opcode               { return CallFunctionOp }
func (CallMethod) Opcode() Opcode                 { return CallMethodOp }
func (CallMethodWithAllResources) Opcode() Opcode { return CallMethodWithAllResourcesOp }
func (Nonce) Opcode() Opcode                      { return NonceOp }
