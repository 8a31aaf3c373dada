// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/pte-client/configuration"
	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/keypair"
	"github.com/bitmark-inc/pte-client/pte"
	"github.com/bitmark-inc/pte-client/transaction"
)

const (
	defaultReceiver = "02c1d7add487dbcbb8c81da378aa8d4924d9844874d1cc3829a173"
	defaultAmount   = "10000"
)

var nonceFlag = cli.Uint64Flag{
	Name:  "nonce, n",
	Value: 0,
	Usage: " transaction `NONCE` [random]",
}

// transfer amounts must be positive
func parseAmount(text string) (transaction.Decimal, error) {
	amount, err := transaction.NewDecimal(text)
	if nil != err {
		return transaction.Decimal{}, err
	}
	if amount.Sign() <= 0 {
		return transaction.Decimal{}, fault.ErrAmountNotPositive
	}
	return amount, nil
}

// the key is a base58 seed, or the hex of an ECDSA private key
func loadKey(conf *configuration.Configuration) (*keypair.KeyPair, error) {
	if "" == conf.Key {
		return nil, fault.ErrRequiredKey
	}

	keyPair, err := keypair.FromSeed(conf.Key)
	if nil == err {
		return keyPair, nil
	}

	if _, hexErr := hex.DecodeString(conf.Key); nil != hexErr {
		return nil, err
	}
	return keypair.FromHex(transaction.EcdsaSecp256k1, conf.Key)
}

// a client for the configured endpoint, rate limited if configured
func newClient(m *metadata) *pte.Client {
	conf := m.config

	client := pte.New(conf.URL, pte.NewHTTPTransport(conf.TimeoutDuration()), logger.New("pte"))
	if conf.RateLimit > 0 {
		client.SetLimiter(rate.NewLimiter(rate.Limit(conf.RateLimit), 1))
	}
	if m.verbose {
		client.SetVerbose(m.e)
	}
	return client
}

// use the flag value unless zero, then a random value
func getNonce(c *cli.Context) (uint64, error) {
	if n := c.Uint64("nonce"); 0 != n {
		return n, nil
	}

	var buffer [8]byte
	if _, err := rand.Read(buffer[:]); nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(buffer[:]), nil
}
