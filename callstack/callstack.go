// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package callstack - the chain of frames leading to a registry call
//
// the outermost frame is first, the registry's own frame is last
package callstack

import (
	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
)

// Kind - type of a single frame
type Kind int

// frame kinds
const (
	Session Kind = iota
	StoredSession
	StoredContract
)

// Element - one frame
//
// Account is set for Session and StoredSession, Contract for the
// stored kinds
type Element struct {
	Kind     Kind
	Account  *account.Account
	Contract string
}

// Stack - frames in call order
type Stack []Element

// New - a stack for a call made directly by an account
//
// the second frame stands for the registry itself
func New(caller *account.Account, contract string) Stack {
	return Stack{
		{Kind: Session, Account: caller},
		{Kind: StoredContract, Contract: contract},
	}
}

// FromContract - a stack for a call forwarded by another contract
func FromContract(origin *account.Account, via string, contract string) Stack {
	return Stack{
		{Kind: Session, Account: origin},
		{Kind: StoredContract, Contract: via},
		{Kind: StoredContract, Contract: contract},
	}
}

// Caller - the identity immediately below the registry frame
func (s Stack) Caller() (*account.Account, error) {
	if len(s) < 2 {
		return nil, fault.CallerIsNotAccount
	}

	e := s[len(s)-2]
	switch e.Kind {
	case Session, StoredSession:
		if nil == e.Account || nil == e.Account.AccountInterface {
			return nil, fault.CallerIsNotAccount
		}
		return e.Account, nil
	default:
		return nil, fault.CallerIsNotAccount
	}
}

// Deployer - the account that originated the stack
func (s Stack) Deployer() (*account.Account, error) {
	if 0 == len(s) {
		return nil, fault.EmptyCallStack
	}
	e := s[0]
	if Session != e.Kind || nil == e.Account || nil == e.Account.AccountInterface {
		return nil, fault.DeployerIsRequired
	}
	return e.Account, nil
}
