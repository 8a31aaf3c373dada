// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/pte"
	"github.com/bitmark-inc/pte-client/pte/fixtures"
)

func TestReceiptComponents(t *testing.T) {
	var receipt pte.Receipt
	err := json.Unmarshal([]byte(fixtures.ReceiptJSON), &receipt)
	assert.Nil(t, err, "unmarshal")

	expected, err := address.ComponentAddressFromString(fixtures.Component)
	assert.Nil(t, err, "parse")

	components, err := receipt.ComponentAddresses()
	assert.Nil(t, err, "components")
	assert.Equal(t, []address.ComponentAddress{expected}, components, "components")

	packages, err := receipt.PackageAddresses()
	assert.Nil(t, err, "packages")
	assert.Equal(t, 0, len(packages), "packages")
}

func TestReceiptRawListsAndAddresses(t *testing.T) {
	reply := `{
  "transaction_hash": "00",
  "status": "Success",
  "outputs": [],
  "logs": [],
  "new_packages": ["010000000000000000000000000000000000000000000000000003"],
  "new_components": ["` + fixtures.Component + `"],
  "new_resources": ["030000000000000000000000000000000000000000000000000004"]
}`

	var receipt pte.Receipt
	err := json.Unmarshal([]byte(reply), &receipt)
	assert.Nil(t, err, "unmarshal")

	assert.Equal(t, []string{"010000000000000000000000000000000000000000000000000003"}, receipt.NewPackages, "raw packages")
	assert.Equal(t, []string{fixtures.Component}, receipt.NewComponents, "raw components")
	assert.Equal(t, []string{"030000000000000000000000000000000000000000000000000004"}, receipt.NewResources, "raw resources")

	packages, err := receipt.PackageAddresses()
	assert.Nil(t, err, "packages")
	assert.Equal(t, 1, len(packages), "package count")
	assert.Equal(t, receipt.NewPackages[0], packages[0].String(), "package")

	components, err := receipt.ComponentAddresses()
	assert.Nil(t, err, "components")
	assert.Equal(t, receipt.NewComponents[0], components[0].String(), "component")

	resources, err := receipt.ResourceAddresses()
	assert.Nil(t, err, "resources")
	assert.Equal(t, receipt.NewResources[0], resources[0].String(), "resource")
}

func TestReceiptOrder(t *testing.T) {
	receipt := pte.Receipt{
		NewPackages: []string{
			"010000000000000000000000000000000000000000000000000003",
			"01ffffffffffffffffffffffffffffffffffffffffffffffffff01",
		},
		NewComponents: []string{
			"020000000000000000000000000000000000000000000000000003",
			"020000000000000000000000000000000000000000000000000001",
			"020000000000000000000000000000000000000000000000000002",
		},
		NewResources: []string{
			"030000000000000000000000000000000000000000000000000004",
		},
	}

	packages, err := receipt.PackageAddresses()
	assert.Nil(t, err, "packages")
	assert.Equal(t, len(receipt.NewPackages), len(packages), "package count")
	for i, p := range packages {
		assert.Equal(t, receipt.NewPackages[i], p.String(), "%d: package", i)
	}

	components, err := receipt.ComponentAddresses()
	assert.Nil(t, err, "components")
	assert.Equal(t, len(receipt.NewComponents), len(components), "component count")
	for i, c := range components {
		assert.Equal(t, receipt.NewComponents[i], c.String(), "%d: component", i)
	}

	resources, err := receipt.ResourceAddresses()
	assert.Nil(t, err, "resources")
	assert.Equal(t, []address.ResourceAddress{address.RadixToken}, resources, "resources")
}

func TestReceiptMalformed(t *testing.T) {
	receipt := pte.Receipt{
		NewPackages:   []string{"010000000000000000000000000000000000000000000000000003", "zz"},
		NewComponents: []string{fixtures.Component, "030000000000000000000000000000000000000000000000000004"},
		NewResources:  []string{"03"},
	}

	_, err := receipt.PackageAddresses()
	var addressErr *pte.AddressError
	if !errors.As(err, &addressErr) {
		t.Fatalf("expected address error, got: %v", err)
	}
	assert.Equal(t, "new_packages", addressErr.Field, "field")
	assert.Equal(t, 1, addressErr.Index, "index")
	assert.Equal(t, "zz", addressErr.Value, "value")

	_, err = receipt.ComponentAddresses()
	assert.True(t, errors.Is(err, fault.ErrWrongEntityType), "component with resource entity: %v", err)

	_, err = receipt.ResourceAddresses()
	assert.True(t, errors.Is(err, fault.ErrAddressLength), "short resource: %v", err)
}
