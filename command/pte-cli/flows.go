// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/configuration"
	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/pte"
	"github.com/bitmark-inc/pte-client/transaction"
)

const (
	freeMethod    = "free_xrd"
	depositMethod = "deposit"
)

// take free XRD from the system component and put it in a new account
// that only the owner of the ECDSA key can withdraw from
func createAccountManifest(owner transaction.PublicKey) (transaction.Manifest, error) {
	if transaction.EcdsaSecp256k1 != owner.Type {
		return nil, fault.ErrInvalidKeyType
	}
	badge := address.NewNonFungibleAddress(address.EcdsaToken, owner.Bytes)

	return transaction.NewManifestBuilder().
		CallMethod(address.SystemComponent, freeMethod).
		TakeFromWorktop(address.RadixToken, func(b *transaction.ManifestBuilder, bucket transaction.Bucket) *transaction.ManifestBuilder {
			return b.NewAccountWithResource(transaction.Require(badge), bucket)
		}).
		Build(), nil
}

// withdraw an amount of a resource then deposit all of it to receiver
func transferManifest(account address.ComponentAddress, receiver address.ComponentAddress, amount transaction.Decimal, resource address.ResourceAddress) transaction.Manifest {
	return transaction.NewManifestBuilder().
		WithdrawFromAccountByAmount(amount, resource, account).
		TakeFromWorktop(resource, func(b *transaction.ManifestBuilder, bucket transaction.Bucket) *transaction.ManifestBuilder {
			return b.CallMethod(receiver, depositMethod, bucket)
		}).
		Build()
}

// sign with the owner as notary and submit
func submit(client *pte.Client, conf *configuration.Configuration, m transaction.Manifest, owner transaction.Signer, nonce uint64) (*pte.Receipt, error) {
	header := conf.Header(nonce, owner.PublicKey())
	tx, err := transaction.Build(header, m, owner)
	if nil != err {
		return nil, err
	}
	return client.Submit(tx)
}

// submit the account creation and return the new account address
func createAccount(client *pte.Client, conf *configuration.Configuration, owner transaction.Signer, nonce uint64) (address.ComponentAddress, *pte.Receipt, error) {
	m, err := createAccountManifest(owner.PublicKey())
	if nil != err {
		return address.ComponentAddress{}, nil, err
	}

	receipt, err := submit(client, conf, m, owner, nonce)
	if nil != err {
		return address.ComponentAddress{}, nil, err
	}

	components, err := receipt.ComponentAddresses()
	if nil != err {
		return address.ComponentAddress{}, receipt, err
	}
	if 0 == len(components) {
		return address.ComponentAddress{}, receipt, fault.ErrNoAccountCreated
	}
	return components[0], receipt, nil
}
