// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/command/accountinfo-cli/configuration"
	"github.com/bitmark-inc/accountinfod/fixtures"
)

func run(t *testing.T, arguments ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"accountinfo-cli"}, arguments...))
	return out.String(), err
}

func TestSetupAddList(t *testing.T) {
	dir, err := ioutil.TempDir("", "accountinfo-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	previous := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)
	defer os.Setenv("XDG_CONFIG_HOME", previous)

	_, err = run(t, "-n", "testing", "-i", "alice", "-p", "password1", "setup", "-c", "127.0.0.1:2130", "-d", "first")
	assert.Nil(t, err, "wrong setup")

	_, err = run(t, "-n", "testing", "-i", "alice", "-p", "password1", "setup", "-c", "127.0.0.1:2130", "-d", "first")
	assert.NotNil(t, err, "setup must not overwrite")

	_, err = run(t, "-n", "testing", "-i", "bob", "add", "-d", "watch", "-a", fixtures.Account(2).String())
	assert.Nil(t, err, "wrong add")

	_, err = run(t, "-n", "testing", "-i", "carol", "-p", "password1", "add", "-d", "key", "-k", fixtures.PrivateKey(3).String())
	assert.Nil(t, err, "wrong add with key")

	_, err = run(t, "-n", "testing", "-i", "dave", "add", "-d", "both", "-N", "-a", fixtures.Account(4).String())
	assert.Equal(t, ErrIncompatibleOptions, err, "conflicting options")

	out, err := run(t, "-n", "testing", "list")
	assert.Nil(t, err, "wrong list")

	var info []configuration.InfoIdentity
	err = json.Unmarshal([]byte(out), &info)
	assert.Nil(t, err, "list output is not JSON")
	assert.Equal(t, 3, len(info), "wrong identity count")
	assert.Equal(t, "alice", info[0].Name, "wrong first identity")
	assert.Equal(t, fixtures.Account(2).String(), info[1].Account, "wrong receive only account")
	assert.Equal(t, fixtures.Account(3).String(), info[2].Account, "wrong imported account")
}

func TestNetworkNames(t *testing.T) {
	for _, name := range []string{"bitmark", "live"} {
		n, err := checkNetwork(name)
		assert.Nil(t, err, "wrong network")
		assert.Equal(t, "bitmark", n, "wrong network name")
	}

	n, err := checkNetwork("test")
	assert.Nil(t, err, "wrong network")
	assert.Equal(t, "testing", n, "wrong network name")

	_, err = checkNetwork("moon")
	assert.Equal(t, ErrInvalidNetwork, err, "unknown network accepted")
}

func TestKeyFromOption(t *testing.T) {
	key, err := keyFromOption("", true, true)
	assert.Nil(t, err, "wrong generate")
	assert.True(t, key.Test, "wrong test flag")

	key, err = keyFromOption(fixtures.PrivateKey(5).String(), false, true)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, fixtures.Account(5).String(), key.Account().String(), "wrong account")

	_, err = keyFromOption("", false, true)
	assert.Equal(t, ErrIncompatibleOptions, err, "no key and no generate")
}
