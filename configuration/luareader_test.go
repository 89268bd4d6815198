// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/configuration"
	"github.com/bitmark-inc/accountinfod/fault"
)

type registryType struct {
	DepositAmount uint64            `gluamapper:"deposit_amount"`
	Allocations   map[string]uint64 `gluamapper:"allocations"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Chain         string       `gluamapper:"chain"`
	Listen        []string     `gluamapper:"listen"`
	Registry      registryType `gluamapper:"registry"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "accountinfod-config")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() {
		_ = os.RemoveAll(dir)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.registry = {
    deposit_amount = 2000000000,
    allocations = {
        ["account-a"] = 500,
    },
}
return M
`)
	defer cleanup()

	c := testConfiguration{
		Chain: "local",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, ".", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", c.Chain, "default not overwritten")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "wrong listen")
	assert.Equal(t, uint64(2000000000), c.Registry.DepositAmount, "wrong deposit amount")
	assert.Equal(t, uint64(500), c.Registry.Allocations["account-a"], "wrong allocation")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { data_directory = "/tmp" }`)
	defer cleanup()

	c := testConfiguration{
		Chain: "local",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "/tmp", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "local", c.Chain, "default lost")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, `return {`)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.InvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile("/nonexistent/accountinfod.conf", &c)
	assert.NotNil(t, err, "missing file accepted")
}

func TestParseConfigurationFileWithoutTable(t *testing.T) {
	fileName, cleanup := writeFile(t, `x = 1`)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ConfigurationIsMissing, err, "missing table accepted")
}
