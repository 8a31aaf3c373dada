// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/pte-client/address"
)

// names of account blueprint functions and methods
const (
	accountBlueprint        = "Account"
	accountNewWithResource  = "new_with_resource"
	accountWithdrawByAmount = "withdraw_by_amount"
)

// ManifestBuilder - accumulates instructions and allocates buckets
type ManifestBuilder struct {
	instructions Manifest
	nextBucket   Bucket
}

// NewManifestBuilder - empty builder
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		instructions: make(Manifest, 0, 8),
		nextBucket:   firstBucket,
	}
}

// Add - append a raw instruction
func (b *ManifestBuilder) Add(instruction Instruction) *ManifestBuilder {
	b.instructions = append(b.instructions, instruction)
	return b
}

// TakeFromWorktop - take all of a resource into a new bucket and hand
// the bucket to the continuation
func (b *ManifestBuilder) TakeFromWorktop(resource address.ResourceAddress, then func(*ManifestBuilder, Bucket) *ManifestBuilder) *ManifestBuilder {
	bucket := b.allocate()
	b.Add(TakeFromWorktop{
		Resource: resource,
		Bucket:   bucket,
	})
	return then(b, bucket)
}

// TakeFromWorktopByAmount - take an amount of a resource into a new
// bucket and hand the bucket to the continuation
func (b *ManifestBuilder) TakeFromWorktopByAmount(amount Decimal, resource address.ResourceAddress, then func(*ManifestBuilder, Bucket) *ManifestBuilder) *ManifestBuilder {
	bucket := b.allocate()
	b.Add(TakeFromWorktopByAmount{
		Amount:   amount,
		Resource: resource,
		Bucket:   bucket,
	})
	return then(b, bucket)
}

// ReturnToWorktop - give a bucket back to the worktop
func (b *ManifestBuilder) ReturnToWorktop(bucket Bucket) *ManifestBuilder {
	return b.Add(ReturnToWorktop{Bucket: bucket})
}

// AssertWorktopContains - require a resource to be on the worktop
func (b *ManifestBuilder) AssertWorktopContains(resource address.ResourceAddress) *ManifestBuilder {
	return b.Add(AssertWorktopContains{Resource: resource})
}

// CallFunction - call a blueprint function
func (b *ManifestBuilder) CallFunction(pkg address.PackageAddress, blueprint string, function string, args ...Value) *ManifestBuilder {
	return b.Add(CallFunction{
		Package:   pkg,
		Blueprint: blueprint,
		Function:  function,
		Args:      args,
	})
}

// CallMethod - call a component method
func (b *ManifestBuilder) CallMethod(component address.ComponentAddress, method string, args ...Value) *ManifestBuilder {
	return b.Add(CallMethod{
		Component: component,
		Method:    method,
		Args:      args,
	})
}

// CallMethodWithAllResources - call a component method with the whole worktop
func (b *ManifestBuilder) CallMethodWithAllResources(component address.ComponentAddress, method string) *ManifestBuilder {
	return b.Add(CallMethodWithAllResources{
		Component: component,
		Method:    method,
	})
}

// NewAccountWithResource - create an account protected by the rule
// and deposit the bucket into it
func (b *ManifestBuilder) NewAccountWithResource(withdrawRule AccessRule, bucket Bucket) *ManifestBuilder {
	return b.CallFunction(address.AccountPackage, accountBlueprint, accountNewWithResource, withdrawRule, bucket)
}

// WithdrawFromAccountByAmount - withdraw an amount of a resource from
// an account onto the worktop
func (b *ManifestBuilder) WithdrawFromAccountByAmount(amount Decimal, resource address.ResourceAddress, account address.ComponentAddress) *ManifestBuilder {
	return b.CallMethod(account, accountWithdrawByAmount, amount, resource)
}

// Build - the finished manifest
//
// the builder may continue to be used, later additions do not affect
// manifests already built
func (b *ManifestBuilder) Build() Manifest {
	m := make(Manifest, len(b.instructions))
	copy(m, b.instructions)
	return m
}

func (b *ManifestBuilder) allocate() Bucket {
	bucket := b.nextBucket
	b.nextBucket += 1
	return bucket
}
