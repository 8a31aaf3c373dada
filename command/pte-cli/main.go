// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/pte-client/configuration"
)

type metadata struct {
	config  *configuration.Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "pte-cli"
	app.Usage = "submit transactions to the public test environment"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "url, u",
			Value: "",
			Usage: " test network `URL` [" + configuration.DefaultURL + "]",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " signing key `SEED` or ECDSA private key hex",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "ecdsa",
					Usage: " key `TYPE` [ecdsa|ed25519]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "create-account",
			Usage:     "create an account protected by the current key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				nonceFlag,
			},
			Action: runCreateAccount,
		},
		{
			Name:      "transfer",
			Usage:     "withdraw from an account and deposit to another",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account component `ADDRESS` owned by the current key",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving account component `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal `AMOUNT` to transfer",
				},
				cli.StringFlag{
					Name:  "resource, s",
					Value: "",
					Usage: " resource `ADDRESS` [XRD]",
				},
				nonceFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "demo",
			Usage:     "create an account then transfer XRD from it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: defaultReceiver,
					Usage: " receiving account component `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: defaultAmount,
					Usage: " decimal `AMOUNT` to transfer",
				},
			},
			Action: runDemo,
		},
		{
			Name:      "decompile",
			Usage:     "print the demo manifests without submitting",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account component `ADDRESS` for the transfer [placeholder]",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: defaultReceiver,
					Usage: " receiving account component `ADDRESS`",
				},
			},
			Action: runDecompile,
		},
		{
			Name:  "version",
			Usage: "display pte-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		variables := map[string]string{}
		if url := c.GlobalString("url"); "" != url {
			variables["url"] = url
		}
		if key := c.GlobalString("key"); "" != key {
			variables["key"] = key
		}

		conf, err := readConfiguration(c.GlobalString("config"), variables, verbose, e)
		if nil != err {
			return err
		}

		if err := conf.CreateLogDirectory(); nil != err {
			return err
		}
		if err := logger.Initialise(conf.Logging); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  url: %q", version, conf.URL)

		c.App.Metadata["config"] = &metadata{
			config:  conf,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// without a file the defaults are used and logs go to a temporary
// directory
//
// the command line variables are visible to the file as
// variables.url and variables.key and always override its values
func readConfiguration(file string, variables map[string]string, verbose bool, e io.Writer) (*configuration.Configuration, error) {
	var conf *configuration.Configuration
	if "" == file {
		conf = configuration.Default()
		conf.Logging.Directory = filepath.Join(os.TempDir(), "pte-cli")
	} else {
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		var err error
		conf, err = configuration.GetConfiguration(file, variables)
		if nil != err {
			return nil, err
		}
	}

	if url, ok := variables["url"]; ok {
		conf.URL = url
	}
	if key, ok := variables["key"]; ok {
		conf.Key = key
	}
	return conf, nil
}
