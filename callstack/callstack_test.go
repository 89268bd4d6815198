// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package callstack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/fault"
)

func makeAccount(t *testing.T, b byte) *account.Account {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		t.Fatalf("make account error: %s", err)
	}
	return key.Account()
}

func TestCallerDirect(t *testing.T) {
	a := makeAccount(t, 1)
	s := callstack.New(a, "registry")

	caller, err := s.Caller()
	assert.Nil(t, err, "wrong error")
	assert.True(t, a.Equal(caller), "wrong caller")

	deployer, err := s.Deployer()
	assert.Nil(t, err, "wrong deployer error")
	assert.True(t, a.Equal(deployer), "wrong deployer")
}

func TestCallerStoredSession(t *testing.T) {
	a := makeAccount(t, 2)
	s := callstack.Stack{
		{Kind: callstack.StoredSession, Account: a, Contract: "helper"},
		{Kind: callstack.StoredContract, Contract: "registry"},
	}

	caller, err := s.Caller()
	assert.Nil(t, err, "wrong error")
	assert.True(t, a.Equal(caller), "wrong caller")
}

func TestCallerFromContract(t *testing.T) {
	a := makeAccount(t, 3)
	s := callstack.FromContract(a, "proxy", "registry")

	_, err := s.Caller()
	assert.Equal(t, fault.CallerIsNotAccount, err, "contract frame accepted")

	deployer, err := s.Deployer()
	assert.Nil(t, err, "wrong deployer error")
	assert.True(t, a.Equal(deployer), "wrong deployer")
}

func TestCallerShortStack(t *testing.T) {
	_, err := callstack.Stack{}.Caller()
	assert.Equal(t, fault.CallerIsNotAccount, err, "empty stack")

	_, err = callstack.Stack{{Kind: callstack.Session, Account: makeAccount(t, 4)}}.Caller()
	assert.Equal(t, fault.CallerIsNotAccount, err, "single frame")

	_, err = callstack.Stack{}.Deployer()
	assert.Equal(t, fault.EmptyCallStack, err, "empty deployer")

	_, err = callstack.Stack{{Kind: callstack.StoredContract}}.Deployer()
	assert.Equal(t, fault.DeployerIsRequired, err, "contract deployer")
}

func TestCallerMissingAccount(t *testing.T) {
	s := callstack.Stack{
		{Kind: callstack.Session},
		{Kind: callstack.StoredContract, Contract: "registry"},
	}
	_, err := s.Caller()
	assert.Equal(t, fault.CallerIsNotAccount, err, "nil account accepted")
}
