// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - typed ledger entity addresses
//
// Every address is 27 bytes, the first byte selects the entity type
// and the text form is 54 lower case hexadecimal digits
package address
