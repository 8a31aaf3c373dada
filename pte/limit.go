// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/pte-client/fault"
)

// delay a single request, a nil limiter never delays
func limit(limiter *rate.Limiter) error {
	if nil == limiter {
		return nil
	}
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
