// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"fmt"
)

// Kind - which stage of a submission failed
type Kind int

// submission failure kinds
const (
	KindNoNonceFound       = Kind(iota + 1)
	KindMultipleNonceFound = Kind(iota + 1)
	KindDecompile          = Kind(iota + 1)
	KindHTTPRequest        = Kind(iota + 1)
	KindResponse           = Kind(iota + 1)
)

// String - for the fmt package
func (k Kind) String() string {
	switch k {
	case KindNoNonceFound:
		return "no nonce found"
	case KindMultipleNonceFound:
		return "multiple nonce found"
	case KindDecompile:
		return "decompile"
	case KindHTTPRequest:
		return "http request"
	case KindResponse:
		return "response"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// SubmissionError - every error returned from a submission
type SubmissionError struct {
	Kind Kind
	Err  error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s error: %s", e.Kind, e.Err)
}

// Unwrap - the original cause, unaltered
func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// HTTPError - the test network answered with a non-2xx status
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status: %d %q body: %q", e.StatusCode, e.Status, e.Body)
}

func submissionError(kind Kind, err error) error {
	return &SubmissionError{
		Kind: kind,
		Err:  err,
	}
}
