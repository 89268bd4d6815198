// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admins - the set of identities allowed to run privileged
// registry operations
//
// entries are never removed, only disabled, and the number of active
// entries is kept in a scalar that is updated with every change
package admins

import (
	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/storage"
)

// CountKey - scalar holding the number of active admins
var CountKey = []byte("admins_count")

// admin flag values
const (
	disabled = 0x00
	active   = 0x01
)

// Registry - admin operations inside one storage transaction
type Registry struct {
	trx     storage.Transaction
	admins  storage.Handle
	scalars storage.Handle
}

// New - admin registry over a transaction
func New(trx storage.Transaction, admins storage.Handle, scalars storage.Handle) *Registry {
	return &Registry{
		trx:     trx,
		admins:  admins,
		scalars: scalars,
	}
}

// Install - make the deployer the only admin
func (r *Registry) Install(deployer *account.Account) {
	r.trx.Put(r.admins, []byte(deployer.String()), []byte{active})
	r.trx.PutN(r.scalars, CountKey, 1)
}

// IsAdmin - true only for an active entry
func (r *Registry) IsAdmin(identity *account.Account) bool {
	if nil == identity {
		return false
	}
	flag := r.trx.Get(r.admins, []byte(identity.String()))
	return 1 == len(flag) && active == flag[0]
}

// Count - number of active admins
func (r *Registry) Count() uint64 {
	n, _ := r.trx.GetN(r.scalars, CountKey)
	return n
}

// Add - activate an identity
func (r *Registry) Add(identity *account.Account) error {
	if r.IsAdmin(identity) {
		return fault.AdminExists
	}
	r.trx.Put(r.admins, []byte(identity.String()), []byte{active})
	r.trx.PutN(r.scalars, CountKey, r.Count()+1)
	return nil
}

// Disable - deactivate an identity
//
// the last active admin cannot be disabled, this is checked before
// the target itself
func (r *Registry) Disable(identity *account.Account) error {
	count := r.Count()
	if count <= 1 {
		return fault.AdminCountTooLow
	}
	if !r.IsAdmin(identity) {
		return fault.AdminDoesntExist
	}
	r.trx.PutN(r.scalars, CountKey, count-1)
	r.trx.Put(r.admins, []byte(identity.String()), []byte{disabled})
	return nil
}

// AssertCallerIsAdmin - resolve the caller and require an active entry
func (r *Registry) AssertCallerIsAdmin(stack callstack.Stack) (*account.Account, error) {
	caller, err := stack.Caller()
	if nil != err {
		return nil, err
	}
	if !r.IsAdmin(caller) {
		return nil, fault.PermissionDenied
	}
	return caller, nil
}

// Entry - state of one admin record
type Entry struct {
	Identity string `json:"identity"`
	Active   bool   `json:"active"`
}

// List - all committed admin records in key order
func List(admins storage.Handle) ([]Entry, error) {
	entries := make([]Entry, 0)
	err := admins.Map(func(key []byte, value []byte) error {
		entries = append(entries, Entry{
			Identity: string(key),
			Active:   1 == len(value) && active == value[0],
		})
		return nil
	})
	return entries, err
}
