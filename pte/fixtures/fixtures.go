// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/keypair"
	"github.com/bitmark-inc/pte-client/transaction"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// sample notary key and its compressed public key
const (
	PrivateKey = "7c9fa136d4413fa6173637e883b6998d32e1d675f88cddff9dcbcf331820f4b8"
	PublicKey  = "026a9d1b479d56f35483fdec1144fe1a9e90c4c074d29bde0baa91fef8a7c9de17"
)

// Component - a component address as returned by the test network
const Component = "02c1d7add487dbcbb8c81da378aa8d4924d9844874d1cc3829a173"

// ReceiptJSON - a successful reply creating one component
const ReceiptJSON = `{
  "transaction_hash": "1c2d6a8c5f3e0b7a9d4e6f1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e",
  "status": "Success",
  "outputs": ["()", "()"],
  "logs": [],
  "new_packages": [],
  "new_components": ["` + Component + `"],
  "new_resources": []
}`

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Notary - key pair for PrivateKey
func Notary() *keypair.KeyPair {
	k, err := keypair.FromHex(transaction.EcdsaSecp256k1, PrivateKey)
	if nil != err {
		panic(err)
	}
	return k
}

// Header - a valid header notarized by Notary
func Header(nonce uint64) transaction.Header {
	return transaction.Header{
		Version:             transaction.HeaderVersion,
		NetworkID:           1,
		StartEpochInclusive: 0,
		EndEpochExclusive:   100,
		Nonce:               nonce,
		NotaryPublicKey:     Notary().PublicKey(),
		NotaryAsSignatory:   true,
		CostUnitLimit:       1000000,
	}
}

// Transaction - a free_xrd call notarized by Notary only
func Transaction(nonce uint64) *transaction.Notarized {
	m := transaction.NewManifestBuilder().
		CallMethod(address.SystemComponent, "free_xrd").
		Build()

	tx, err := transaction.Build(Header(nonce), m, Notary())
	if nil != err {
		panic(err)
	}
	return tx
}
