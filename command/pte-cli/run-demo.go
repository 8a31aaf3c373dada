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

func runDemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := address.ComponentAddressFromString(c.String("receiver"))
	if nil != err {
		return fmt.Errorf("receiver: %q  error: %s", c.String("receiver"), err)
	}

	amount, err := parseAmount(c.String("amount"))
	if nil != err {
		return fmt.Errorf("amount: %q  error: %s", c.String("amount"), err)
	}

	owner, err := loadKey(m.config)
	if nil != err {
		return err
	}

	client := newClient(m)

	nonce, err := getNonce(c)
	if nil != err {
		return err
	}
	account, receipt, err := createAccount(client, m.config, owner, nonce)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.e, "account %s was created\n", account)
	if err := printReceipt(m, "Account Creation Receipt", receipt); nil != err {
		m.log.Warnf("print receipt error: %s", err)
	}

	nonce, err = getNonce(c)
	if nil != err {
		return err
	}
	receipt, err = submit(client, m.config, transferManifest(account, receiver, amount, address.RadixToken), owner, nonce)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.e, "%s XRD has been transferred to %s\n", amount, receiver)
	return printReceipt(m, "Transfer Receipt", receipt)
}
