// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/pte-client/fault"
)

// optional '-', whole digits and a fraction of at most 18 digits
var decimalFormat = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{1,18})?$`)

// Decimal - fixed point amount kept in its canonical text form
type Decimal struct {
	text string
}

// NewDecimal - validate and canonicalise a decimal amount
//
// leading zeros and trailing fraction zeros are removed and a negative
// zero becomes "0"
func NewDecimal(s string) (Decimal, error) {
	if !decimalFormat.MatchString(s) {
		return Decimal{}, fault.ErrInvalidDecimal
	}
	d, err := decimal.NewFromString(s)
	if nil != err {
		return Decimal{}, fault.ErrInvalidDecimal
	}
	return Decimal{text: d.String()}, nil
}

// MustDecimal - for constant amounts in code, panics on invalid text
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if nil != err {
		panic("invalid decimal: " + s)
	}
	return d
}

// Value - the amount as an arbitrary precision number
func (d Decimal) Value() decimal.Decimal {
	if "" == d.text {
		return decimal.Zero
	}
	return decimal.RequireFromString(d.text)
}

// Sign - -1, 0 or +1
func (d Decimal) Sign() int {
	return d.Value().Sign()
}

// IsZero - true for the zero value of Decimal
func (d Decimal) IsZero() bool {
	return "" == d.text || "0" == d.text
}

// String - canonical text
func (d Decimal) String() string {
	if "" == d.text {
		return "0"
	}
	return d.text
}

// MarshalText - canonical text
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - validate text
func (d *Decimal) UnmarshalText(s []byte) error {
	v, err := NewDecimal(string(s))
	if nil != err {
		return err
	}
	*d = v
	return nil
}
