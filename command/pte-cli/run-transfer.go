// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/pte-client/address"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, err := address.ComponentAddressFromString(c.String("account"))
	if nil != err {
		return fmt.Errorf("account: %q  error: %s", c.String("account"), err)
	}

	receiver, err := address.ComponentAddressFromString(c.String("receiver"))
	if nil != err {
		return fmt.Errorf("receiver: %q  error: %s", c.String("receiver"), err)
	}

	amount, err := parseAmount(c.String("amount"))
	if nil != err {
		return fmt.Errorf("amount: %q  error: %s", c.String("amount"), err)
	}

	resource := address.RadixToken
	if s := c.String("resource"); "" != s {
		resource, err = address.ResourceAddressFromString(s)
		if nil != err {
			return fmt.Errorf("resource: %q  error: %s", s, err)
		}
	}

	owner, err := loadKey(m.config)
	if nil != err {
		return err
	}

	nonce, err := getNonce(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transfer: %s %s from: %s to: %s\n", amount, resource, account, receiver)
	}

	receipt, err := submit(newClient(m), m.config, transferManifest(account, receiver, amount, resource), owner, nonce)
	if nil != err {
		m.log.Errorf("transfer error: %s", err)
		return err
	}

	return printReceipt(m, "Transfer Receipt", receipt)
}
