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

	"github.com/bitmark-inc/accountinfod/command/accountinfo-cli/configuration"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
)

const password = "correct horse battery staple"

func TestIdentities(t *testing.T) {
	config := configuration.New(true, "127.0.0.1:2130")

	key := fixtures.PrivateKey(1)
	err := config.AddIdentity("alice", "first", key, password)
	assert.Nil(t, err, "wrong AddIdentity")
	assert.Equal(t, "alice", config.DefaultIdentity, "wrong default")

	err = config.AddIdentity("alice", "again", fixtures.PrivateKey(2), password)
	assert.Equal(t, fault.IdentityNameExists, err, "duplicate name")

	err = config.AddReceiveOnlyIdentity("bob", "watch", fixtures.Account(2).String())
	assert.Nil(t, err, "wrong AddReceiveOnlyIdentity")

	a, err := config.Account("alice")
	assert.Nil(t, err, "wrong Account")
	assert.Equal(t, key.Account().String(), a.String(), "wrong account")

	a, err = config.Account(fixtures.Account(3).String())
	assert.Nil(t, err, "base58 account should be accepted")
	assert.Equal(t, fixtures.Account(3).String(), a.String(), "wrong account")

	_, err = config.Account("carol")
	assert.Equal(t, fault.IdentityNameNotFound, err, "unknown name")

	private, err := config.PrivateKey(password, "alice")
	assert.Nil(t, err, "wrong PrivateKey")
	assert.Equal(t, key.String(), private.String(), "wrong private key")

	_, err = config.PrivateKey("not the password", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong password accepted")

	_, err = config.PrivateKey(password, "bob")
	assert.Equal(t, fault.NotPrivateKey, err, "receive only identity has no key")

	info := config.Info()
	assert.Equal(t, 2, len(info), "wrong info count")
	assert.Equal(t, "alice", info[0].Name, "wrong order")
	assert.False(t, info[0].ReceiveOnly, "alice has a key")
	assert.True(t, info[1].ReceiveOnly, "bob has no key")
}

func TestWrongChain(t *testing.T) {
	config := configuration.New(false, "127.0.0.1:2130")

	err := config.AddIdentity("alice", "first", fixtures.PrivateKey(1), password)
	assert.Equal(t, fault.InvalidChain, err, "testing key on live network")

	err = config.AddReceiveOnlyIdentity("bob", "watch", fixtures.Account(2).String())
	assert.Equal(t, fault.InvalidChain, err, "testing account on live network")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "accountinfo-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "sub", "testing-accountinfo-cli.json")

	config := configuration.New(true, "127.0.0.1:2130")
	err = config.AddIdentity("alice", "first", fixtures.PrivateKey(1), password)
	assert.Nil(t, err, "wrong AddIdentity")

	err = configuration.Save(filename, config)
	assert.Nil(t, err, "first save")

	// second save keeps a backup
	err = configuration.Save(filename, config)
	assert.Nil(t, err, "second save")
	_, err = os.Stat(filename + ".bk")
	assert.Nil(t, err, "missing backup")

	loaded, err := configuration.Load(filename)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, config, loaded, "loaded configuration differs")

	private, err := loaded.PrivateKey(password, "alice")
	assert.Nil(t, err, "wrong PrivateKey")
	assert.Equal(t, fixtures.PrivateKey(1).String(), private.String(), "wrong private key")
}
