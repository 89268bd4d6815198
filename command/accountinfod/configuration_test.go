// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "%s"
M.registry = {
    deployer = "%s",
    deposit_amount = 1000,
    burn_amount = 10,
    allocations = {
        ["%s"] = 5000,
    },
}
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
return M
`

func writeConfiguration(t *testing.T, chainName string, deployer string, allocated string) (string, func()) {
	dir, err := ioutil.TempDir("", "accountinfod-conf")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "accountinfod.conf")
	content := fmt.Sprintf(testConfiguration, chainName, deployer, allocated)
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		_ = os.RemoveAll(dir)
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	deployer := fixtures.Account(1).String()
	user := fixtures.Account(3).String()

	fileName, cleanup := writeConfiguration(t, "Testing", deployer, user)
	defer cleanup()

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultTestingDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")

	_, err = os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory not created")

	a, c, err := options.install()
	assert.Nil(t, err, "wrong install")
	assert.Equal(t, deployer, a.String(), "wrong deployer")
	assert.Equal(t, uint64(1000), c.DepositAmount, "wrong deposit amount")
	assert.Equal(t, uint64(10), c.BurnAmount, "wrong burn amount")
	assert.Equal(t, map[string]uint64{user: 5000}, c.Allocations, "wrong allocations")
}

func TestGetConfigurationBadChain(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "moon", "", "x")
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "chain should be rejected")
}

func TestInstallValues(t *testing.T) {
	deployer := fixtures.Account(1).String()
	user := fixtures.Account(3).String()

	fileName, cleanup := writeConfiguration(t, "bitmark", deployer, user)
	defer cleanup()

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	_, _, err = options.install()
	assert.Equal(t, fault.InvalidChain, err, "testing deployer on live chain")

	options.Registry.Deployer = ""
	_, _, err = options.install()
	assert.Equal(t, fault.DeployerIsRequired, err, "missing deployer")

	options.Chain = "testing"
	options.Registry.Deployer = deployer
	options.Registry.Allocations = map[string]uint64{"not-an-account": 1}
	_, _, err = options.install()
	assert.Equal(t, fault.CannotDecodeAccount, err, "bad allocation")
}
