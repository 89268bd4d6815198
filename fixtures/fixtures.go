// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/storage"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

var testingDirName string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "accountinfod-log")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove the log files
//
// the logger stays initialised for later tests in the same binary
func TeardownTestLogger() {
	if "" != testingDirName {
		_ = os.RemoveAll(testingDirName)
		testingDirName = ""
	}
}

// SetupTestStorage - open a fresh database, returns the cleanup function
func SetupTestStorage() func() {
	dir, err := ioutil.TempDir("", "accountinfod-db")
	if nil != err {
		panic(err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		_ = os.RemoveAll(dir)
		panic(err)
	}
	return func() {
		storage.Finalise()
		_ = os.RemoveAll(dir)
	}
}

// PrivateKey - deterministic test key, one per seed byte
func PrivateKey(b byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return key
}

// Account - deterministic test account, one per seed byte
func Account(b byte) *account.Account {
	return PrivateKey(b).Account()
}

// Certificate - fresh self signed PEM certificate and key for 127.0.0.1
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("accountinfod test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}
