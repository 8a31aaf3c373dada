// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - build, sign and notarize ledger transactions
//
// A transaction is an Intent (a Header plus a Manifest of
// instructions), signed by zero or more signers and finally notarized
// by the notary named in the header.
//
//   manifest := transaction.NewManifestBuilder().
//           CallMethod(address.SystemComponent, "free_xrd").
//           TakeFromWorktop(address.RadixToken, func(b *transaction.ManifestBuilder, bucket transaction.Bucket) *transaction.ManifestBuilder {
//                   return b.NewAccountWithResource(rule, bucket)
//           }).
//           Build()
//   notarized, err := transaction.Build(header, manifest, notary)
package transaction
