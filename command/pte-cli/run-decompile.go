// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/manifest"
	"github.com/bitmark-inc/pte-client/transaction"
)

// stands in for the account the create step would return
var placeholderAccount = address.ComponentAddress{0: byte(address.ComponentEntity)}

func runDecompile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := loadKey(m.config)
	if nil != err {
		return err
	}

	account := placeholderAccount
	if s := c.String("account"); "" != s {
		account, err = address.ComponentAddressFromString(s)
		if nil != err {
			return fmt.Errorf("account: %q  error: %s", s, err)
		}
	}

	receiver, err := address.ComponentAddressFromString(c.String("receiver"))
	if nil != err {
		return fmt.Errorf("receiver: %q  error: %s", c.String("receiver"), err)
	}

	create, err := createAccountManifest(owner.PublicKey())
	if nil != err {
		return err
	}
	transfer := transferManifest(account, receiver, transaction.MustDecimal(defaultAmount), address.RadixToken)

	for _, item := range []transaction.Manifest{create, transfer} {
		text, err := manifest.Decompile(item)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s\n", text)
	}
	return nil
}
