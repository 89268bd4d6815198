// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/chain"
	"github.com/bitmark-inc/accountinfod/configuration"
	"github.com/bitmark-inc/accountinfod/contract"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/rpc/listeners"
	"github.com/bitmark-inc/accountinfod/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultBitmarkDatabase  = chain.Bitmark + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "accountinfod.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultDepositAmount = 2000000000
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RegistryType - values applied by the install command
type RegistryType struct {
	Deployer      string            `gluamapper:"deployer" json:"deployer"`
	DepositAmount uint64            `gluamapper:"deposit_amount" json:"deposit_amount"`
	BurnAmount    uint64            `gluamapper:"burn_amount" json:"burn_amount"`
	Allocations   map[string]uint64 `gluamapper:"allocations" json:"allocations"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Registry  RegistryType               `gluamapper:"registry" json:"registry"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Bitmark,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBitmarkDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Registry: RegistryType{
			DepositAmount: defaultDepositAmount,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBitmarkDatabase {
		switch options.Chain {
		case chain.Bitmark:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// the deployer and install values from the registry section
func (options *Configuration) install() (*account.Account, *contract.Configuration, error) {
	if "" == options.Registry.Deployer {
		return nil, nil, fault.DeployerIsRequired
	}

	deployer, err := account.FromBase58(options.Registry.Deployer)
	if nil != err {
		return nil, nil, err
	}

	testing := chain.IsTesting(options.Chain)
	if deployer.IsTesting() != testing {
		return nil, nil, fault.InvalidChain
	}

	for name := range options.Registry.Allocations {
		a, err := account.FromBase58(name)
		if nil != err {
			return nil, nil, fault.CannotDecodeAccount
		}
		if a.IsTesting() != testing {
			return nil, nil, fault.InvalidChain
		}
	}

	c := &contract.Configuration{
		DepositAmount: options.Registry.DepositAmount,
		BurnAmount:    options.Registry.BurnAmount,
		Allocations:   options.Registry.Allocations,
	}
	return deployer, c, nil
}
