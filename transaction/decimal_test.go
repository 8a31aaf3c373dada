// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"10000", "10000"},
		{"0010", "10"},
		{"1.50", "1.5"},
		{"1.000", "1"},
		{"-2.25", "-2.25"},
		{"-0.0", "0"},
		{"0.000000000000000001", "0.000000000000000001"},
	}

	for i, item := range tests {
		d, err := transaction.NewDecimal(item.in)
		assert.Nil(t, err, "%d: %q", i, item.in)
		assert.Equal(t, item.out, d.String(), "%d: %q", i, item.in)
	}
}

func TestNewDecimalInvalid(t *testing.T) {
	tests := []string{
		"",
		"-",
		".5",
		"5.",
		"1.2.3",
		"1e6",
		"+1",
		"12a",
		"0.0000000000000000001",
	}

	for i, item := range tests {
		_, err := transaction.NewDecimal(item)
		assert.Equal(t, fault.ErrInvalidDecimal, err, "%d: %q", i, item)
	}
}

func TestDecimalZero(t *testing.T) {
	var d transaction.Decimal
	assert.True(t, d.IsZero(), "zero value")
	assert.Equal(t, "0", d.String(), "zero value text")
	assert.False(t, transaction.MustDecimal("0.1").IsZero(), "non-zero")
}

func TestDecimalJSON(t *testing.T) {
	var amounts struct {
		Amount transaction.Decimal `json:"amount"`
	}

	err := json.Unmarshal([]byte(`{"amount":"007.10"}`), &amounts)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, "7.1", amounts.Amount.String(), "amount")

	buffer, err := json.Marshal(amounts)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"amount":"7.1"}`, string(buffer), "json")

	err = json.Unmarshal([]byte(`{"amount":"seven"}`), &amounts)
	assert.Error(t, err, "invalid amount accepted")
}

func TestDecimalValue(t *testing.T) {
	tests := []struct {
		in   string
		sign int
	}{
		{"10000", 1},
		{"0.000000000000000001", 1},
		{"000.000", 0},
		{"-2.25", -1},
	}

	for i, item := range tests {
		d, err := transaction.NewDecimal(item.in)
		assert.Nil(t, err, "%d: %q", i, item.in)
		assert.Equal(t, item.sign, d.Sign(), "%d: %q sign", i, item.in)
		assert.Equal(t, d.String(), d.Value().String(), "%d: %q value", i, item.in)
	}

	var zero transaction.Decimal
	assert.Equal(t, 0, zero.Sign(), "zero value sign")

	sum := transaction.MustDecimal("1.5").Value().Add(transaction.MustDecimal("2.5").Value())
	assert.Equal(t, "4", sum.String(), "sum")
}

func TestMustDecimalPanics(t *testing.T) {
	assert.Panics(t, func() { transaction.MustDecimal("x") }, "no panic")
}
