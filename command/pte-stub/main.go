// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// A local stand in for the public test environment
//
// accepts POST /transaction and replies with synthetic receipts, so
// pte-cli can be run without network access:
//
//   pte-stub --listen=127.0.0.1:3000 &
//   pte-cli --url=http://127.0.0.1:3000 demo
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

const (
	defaultListen = "127.0.0.1:3000"
	defaultWindow = 10 * time.Minute

	logDirectory = "pte-stub"
	logFile      = "pte-stub.log"
)

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "listen", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "nonce-window", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--listen=HOST:PORT] [--nonce-window=DURATION]", program)
	}

	listen := defaultListen
	if len(options["listen"]) > 0 {
		listen = options["listen"][0]
	}

	window := defaultWindow
	if len(options["nonce-window"]) > 0 {
		window, err = time.ParseDuration(options["nonce-window"][0])
		if nil != err {
			exitwithstatus.Message("nonce window error: %s", err)
		}
	}

	level := "info"
	if len(options["verbose"]) > 0 {
		level = "debug"
	}

	directory := os.TempDir() + string(os.PathSeparator) + logDirectory
	if err := os.MkdirAll(directory, 0700); nil != err {
		exitwithstatus.Message("log directory error: %s", err)
	}
	logging := logger.Configuration{
		Directory: directory,
		File:      logFile,
		Size:      1024 * 1024,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("stub")
	log.Infof("listen: %s  nonce window: %s", listen, window)

	s := newServer(window, log)
	err = http.ListenAndServe(listen, s.router())
	log.Criticalf("server stopped: %s", err)
	exitwithstatus.Message("server error: %s", err)
}
