// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	DefaultURL = "https://pte01.radixdlt.com"

	defaultNetworkID     = 1
	defaultEpochWindow   = 100
	defaultCostUnitLimit = 1000000
	defaultTimeout       = 30 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "pte-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings for the test network client
type Configuration struct {
	URL           string               `gluamapper:"url" json:"url"`
	Key           string               `gluamapper:"key" json:"key"`
	NetworkID     int                  `gluamapper:"network_id" json:"network_id"`
	StartEpoch    uint64               `gluamapper:"start_epoch" json:"start_epoch"`
	EpochWindow   uint64               `gluamapper:"epoch_window" json:"epoch_window"`
	CostUnitLimit int                  `gluamapper:"cost_unit_limit" json:"cost_unit_limit"`
	TipPercentage int                  `gluamapper:"tip_percentage" json:"tip_percentage"`
	Timeout       int                  `gluamapper:"timeout" json:"timeout"`
	RateLimit     float64              `gluamapper:"rate_limit" json:"rate_limit"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		URL:           DefaultURL,
		NetworkID:     defaultNetworkID,
		EpochWindow:   defaultEpochWindow,
		CostUnitLimit: defaultCostUnitLimit,
		Timeout:       defaultTimeout,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	// force the log directory to be an absolute path
	// if not, assign it to the configuration file directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}

// Validate - check values that cannot be fixed up
func (conf *Configuration) Validate() error {
	if "" == conf.URL {
		return fault.ErrRequiredURL
	}
	if conf.NetworkID < 0 || conf.NetworkID > 255 {
		return fault.ErrInvalidNetworkID
	}
	if 0 == conf.EpochWindow {
		return fault.ErrInvalidEpochWindow
	}
	if conf.CostUnitLimit < 0 || conf.TipPercentage < 0 || conf.Timeout < 0 || conf.RateLimit < 0 {
		return fault.ErrNegativeValue
	}
	return nil
}

// Header - a transaction header for this network; the nonce and
// notary are supplied by the caller
func (conf *Configuration) Header(nonce uint64, notary transaction.PublicKey) transaction.Header {
	return transaction.Header{
		Version:             transaction.HeaderVersion,
		NetworkID:           uint8(conf.NetworkID),
		StartEpochInclusive: conf.StartEpoch,
		EndEpochExclusive:   conf.StartEpoch + conf.EpochWindow,
		Nonce:               nonce,
		NotaryPublicKey:     notary,
		NotaryAsSignatory:   true,
		CostUnitLimit:       uint32(conf.CostUnitLimit),
		TipPercentage:       uint32(conf.TipPercentage),
	}
}

// TimeoutDuration - HTTP timeout, zero for none
func (conf *Configuration) TimeoutDuration() time.Duration {
	return time.Duration(conf.Timeout) * time.Second
}

// CreateLogDirectory - ensure the log directory exists
func (conf *Configuration) CreateLogDirectory() error {
	return os.MkdirAll(conf.Logging.Directory, 0700)
}
