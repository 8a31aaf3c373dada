// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"fmt"

	"github.com/bitmark-inc/pte-client/address"
)

// Receipt - the test network's report of an executed transaction
//
// new entity identifiers are kept as sent and only parsed by the
// accessors below
type Receipt struct {
	TransactionHash string   `json:"transaction_hash"`
	Status          string   `json:"status"`
	Outputs         []string `json:"outputs"`
	Logs            []string `json:"logs"`
	NewPackages     []string `json:"new_packages"`
	NewComponents   []string `json:"new_components"`
	NewResources    []string `json:"new_resources"`
}

// AddressError - an identifier in a receipt list could not be parsed
type AddressError struct {
	Field string
	Index int
	Value string
	Err   error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s[%d]: %q: %s", e.Field, e.Index, e.Value, e.Err)
}

// Unwrap - the parse error
func (e *AddressError) Unwrap() error {
	return e.Err
}

// PackageAddresses - parse the created package addresses, in order
func (receipt *Receipt) PackageAddresses() ([]address.PackageAddress, error) {
	result := make([]address.PackageAddress, len(receipt.NewPackages))
	for i, s := range receipt.NewPackages {
		a, err := address.PackageAddressFromString(s)
		if nil != err {
			return nil, &AddressError{Field: "new_packages", Index: i, Value: s, Err: err}
		}
		result[i] = a
	}
	return result, nil
}

// ComponentAddresses - parse the created component addresses, in order
func (receipt *Receipt) ComponentAddresses() ([]address.ComponentAddress, error) {
	result := make([]address.ComponentAddress, len(receipt.NewComponents))
	for i, s := range receipt.NewComponents {
		a, err := address.ComponentAddressFromString(s)
		if nil != err {
			return nil, &AddressError{Field: "new_components", Index: i, Value: s, Err: err}
		}
		result[i] = a
	}
	return result, nil
}

// ResourceAddresses - parse the created resource addresses, in order
func (receipt *Receipt) ResourceAddresses() ([]address.ResourceAddress, error) {
	result := make([]address.ResourceAddress, len(receipt.NewResources))
	for i, s := range receipt.NewResources {
		a, err := address.ResourceAddressFromString(s)
		if nil != err {
			return nil, &AddressError{Field: "new_resources", Index: i, Value: s, Err: err}
		}
		result[i] = a
	}
	return result, nil
}
