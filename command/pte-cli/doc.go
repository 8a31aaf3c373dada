// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Submit sample transactions to the public test environment
//
// e.g. create an account for the configured key then move tokens out
// of it (add -v to see the JSON requests and replies):
//
//   pte-cli -c pte-cli.conf -v demo
//
// keys are base58 seeds as printed by the generate command
package main
