// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"net/http"
	"time"
)

// Transport - the single blocking call made by a submission
//
// *http.Client satisfies this
type Transport interface {
	Do(request *http.Request) (*http.Response, error)
}

// NewHTTPTransport - an HTTP client with the given timeout, zero
// meaning no timeout
func NewHTTPTransport(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
