// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package manifest - render instructions as manifest text
package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// DecompileError - failure at a specific instruction
type DecompileError struct {
	Index int
	Err   error
}

func (e *DecompileError) Error() string {
	return fmt.Sprintf("decompile instruction %d: %s", e.Index, e.Err)
}

// Unwrap - the underlying cause
func (e *DecompileError) Unwrap() error {
	return e.Err
}

// bucket names, allocated in order of creation
type buckets struct {
	names    map[transaction.Bucket]string
	consumed map[transaction.Bucket]bool
}

// Decompile - convert a manifest to text, one instruction per line
func Decompile(m transaction.Manifest) (string, error) {
	b := buckets{
		names:    make(map[transaction.Bucket]string),
		consumed: make(map[transaction.Bucket]bool),
	}

	var text strings.Builder
	for i, instruction := range m {
		line, err := b.instruction(instruction)
		if nil != err {
			return "", &DecompileError{Index: i, Err: err}
		}
		text.WriteString(line)
		text.WriteString(";\n")
	}
	return text.String(), nil
}

func (b *buckets) instruction(instruction transaction.Instruction) (string, error) {
	switch i := instruction.(type) {
	case transaction.TakeFromWorktop:
		name, err := b.create(i.Bucket)
		if nil != err {
			return "", err
		}
		return join("TAKE_FROM_WORKTOP", resource(i.Resource), bucketText(name)), nil

	case transaction.TakeFromWorktopByAmount:
		name, err := b.create(i.Bucket)
		if nil != err {
			return "", err
		}
		return join("TAKE_FROM_WORKTOP_BY_AMOUNT", decimal(i.Amount), resource(i.Resource), bucketText(name)), nil

	case transaction.ReturnToWorktop:
		name, err := b.consume(i.Bucket)
		if nil != err {
			return "", err
		}
		return join("RETURN_TO_WORKTOP", bucketText(name)), nil

	case transaction.AssertWorktopContains:
		return join("ASSERT_WORKTOP_CONTAINS", resource(i.Resource)), nil

	case transaction.CallFunction:
		args, err := b.values(i.Args)
		if nil != err {
			return "", err
		}
		fields := []string{"CALL_FUNCTION", pkg(i.Package), strconv.Quote(i.Blueprint), strconv.Quote(i.Function)}
		return join(append(fields, args...)...), nil

	case transaction.CallMethod:
		args, err := b.values(i.Args)
		if nil != err {
			return "", err
		}
		fields := []string{"CALL_METHOD", component(i.Component), strconv.Quote(i.Method)}
		return join(append(fields, args...)...), nil

	case transaction.CallMethodWithAllResources:
		return join("CALL_METHOD_WITH_ALL_RESOURCES", component(i.Component), strconv.Quote(i.Method)), nil

	default:
		// includes the obsolete Nonce instruction, which has no text form
		return "", fault.ErrUnknownInstruction
	}
}

func (b *buckets) values(values []transaction.Value) ([]string, error) {
	result := make([]string, 0, len(values))
	for _, value := range values {
		s, err := b.value(value)
		if nil != err {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (b *buckets) value(value transaction.Value) (string, error) {
	switch v := value.(type) {
	case transaction.String:
		return strconv.Quote(string(v)), nil
	case transaction.U32:
		return strconv.FormatUint(uint64(v), 10) + "u32", nil
	case transaction.U64:
		return strconv.FormatUint(uint64(v), 10) + "u64", nil
	case transaction.Bool:
		return strconv.FormatBool(bool(v)), nil
	case transaction.Decimal:
		return decimal(v), nil
	case transaction.Bucket:
		name, err := b.consume(v)
		if nil != err {
			return "", err
		}
		return bucketText(name), nil
	case transaction.AccessRule:
		return accessRule(v)
	case address.PackageAddress:
		return pkg(v), nil
	case address.ComponentAddress:
		return component(v), nil
	case address.ResourceAddress:
		return resource(v), nil
	default:
		return "", fault.ErrUnknownValue
	}
}

func (b *buckets) create(bucket transaction.Bucket) (string, error) {
	if _, ok := b.names[bucket]; ok {
		return "", fault.ErrBucketAlreadyUsed
	}
	name := "bucket" + strconv.Itoa(len(b.names)+1)
	b.names[bucket] = name
	return name, nil
}

// a bucket can be passed on exactly once
func (b *buckets) consume(bucket transaction.Bucket) (string, error) {
	name, ok := b.names[bucket]
	if !ok {
		return "", fault.ErrBucketNotFound
	}
	if b.consumed[bucket] {
		return "", fault.ErrBucketAlreadyUsed
	}
	b.consumed[bucket] = true
	return name, nil
}

func accessRule(rule transaction.AccessRule) (string, error) {
	switch rule.Kind {
	case transaction.AllowAll:
		return `Enum("AllowAll")`, nil
	case transaction.DenyAll:
		return `Enum("DenyAll")`, nil
	case transaction.RequireNonFungible:
		badge := `NonFungibleAddress("` + rule.Badge.String() + `")`
		return `Enum("Protected", Enum("ProofRule", Enum("Require", Enum("StaticNonFungible", ` + badge + `))))`, nil
	default:
		return "", fault.ErrUnknownValue
	}
}

func join(fields ...string) string {
	return strings.Join(fields, " ")
}

func bucketText(name string) string {
	return `Bucket("` + name + `")`
}

func decimal(d transaction.Decimal) string {
	return `Decimal("` + d.String() + `")`
}

func pkg(a address.PackageAddress) string {
	return `PackageAddress("` + a.String() + `")`
}

func component(a address.ComponentAddress) string {
	return `ComponentAddress("` + a.String() + `")`
}

func resource(a address.ResourceAddress) string {
	return `ResourceAddress("` + a.String() + `")`
}
