// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pte - submit notarized transactions to the public test
// environment and decode the returned receipts
//
// the client performs exactly one POST per submission and never
// retries; the HTTP layer is injected so that tests can replace it
package pte
