// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/admins"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/storage"
)

// Status - registry wide values
type Status struct {
	AdminCount    uint64         `json:"adminCount"`
	DepositAmount uint64         `json:"depositAmount"`
	BurnAmount    uint64         `json:"burnAmount"`
	Collected     uint64         `json:"collected"`
	Admins        []admins.Entry `json:"admins"`
}

// IsAdmin - admin flag of an identity
func (r *registryData) IsAdmin(identity *account.Account) (bool, error) {
	if nil == identity {
		return false, fault.AccountIsRequired
	}
	result := false
	err := r.query(func(s *state) error {
		result = s.admins.IsAdmin(identity)
		return nil
	})
	return result, err
}

// Deposit - amount held for an identity
func (r *registryData) Deposit(identity *account.Account) (uint64, error) {
	if nil == identity {
		return 0, fault.AccountIsRequired
	}
	amount := uint64(0)
	err := r.query(func(s *state) error {
		amount = s.deposits.Get(identity)
		return nil
	})
	return amount, err
}

// Balance - balance of any purse
func (r *registryData) Balance(purse ledger.Purse) (uint64, error) {
	amount := uint64(0)
	err := r.query(func(s *state) error {
		amount = s.ledger.Balance(purse)
		return nil
	})
	return amount, err
}

// Status - counters, amounts and the admin records
func (r *registryData) Status() (*Status, error) {
	var status *Status
	err := r.query(func(s *state) error {
		list, err := admins.List(storage.Pool.Admins)
		if nil != err {
			return err
		}
		status = &Status{
			AdminCount:    s.admins.Count(),
			DepositAmount: s.deposits.DepositAmount(),
			BurnAmount:    s.burnAmount(),
			Collected:     s.ledger.Balance(ledger.CollectionPurse),
			Admins:        list,
		}
		return nil
	})
	return status, err
}
