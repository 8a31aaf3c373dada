// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/pte-client/keypair"
	"github.com/bitmark-inc/pte-client/transaction"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyType, err := transaction.KeyTypeFromString(c.String("type"))
	if nil != err {
		return err
	}

	rawKeyPair, _, err := keypair.MakeRawKeyPair(keyType)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", rawKeyPair)
	}

	return printJson(m.w, rawKeyPair)
}
