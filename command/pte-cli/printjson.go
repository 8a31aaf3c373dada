// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/bitmark-inc/pte-client/pte"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}

// JSON on the output, and in verbose mode the parsed receipt on the
// error stream
func printReceipt(m *metadata, title string, receipt *pte.Receipt) error {
	if m.verbose {
		fmt.Fprintf(m.e, "%s:\n", title)
		spew.Fdump(m.e, receipt)
	}
	return printJson(m.w, receipt)
}
