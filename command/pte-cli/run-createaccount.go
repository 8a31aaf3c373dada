// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreateAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := loadKey(m.config)
	if nil != err {
		return err
	}

	nonce, err := getNonce(c)
	if nil != err {
		return err
	}

	account, receipt, err := createAccount(newClient(m), m.config, owner, nonce)
	if nil != receipt {
		if err := printReceipt(m, "Account Creation Receipt", receipt); nil != err {
			m.log.Warnf("print receipt error: %s", err)
		}
	}
	if nil != err {
		m.log.Errorf("create account error: %s", err)
		return err
	}

	m.log.Infof("account: %s", account)
	fmt.Fprintf(m.e, "account: %s\n", account)
	return nil
}
