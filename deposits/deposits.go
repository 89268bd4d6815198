// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deposits - registration escrow held in the collection purse
//
// a recorded deposit is either zero or the required amount that was in
// force when it was taken
package deposits

import (
	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/storage"
)

// AmountKey - scalar holding the required deposit
var AmountKey = []byte("deposit_amount")

// Registry - deposit operations inside one storage transaction
type Registry struct {
	trx      storage.Transaction
	deposits storage.Handle
	scalars  storage.Handle
	ledger   ledger.Ledger
}

// New - deposit registry over a transaction
func New(trx storage.Transaction, deposits storage.Handle, scalars storage.Handle, l ledger.Ledger) *Registry {
	return &Registry{
		trx:      trx,
		deposits: deposits,
		scalars:  scalars,
		ledger:   l,
	}
}

// DepositAmount - currently required amount
func (r *Registry) DepositAmount() uint64 {
	n, _ := r.trx.GetN(r.scalars, AmountKey)
	return n
}

// SetDepositAmount - applies to future deposits only
func (r *Registry) SetDepositAmount(amount uint64) {
	r.trx.PutN(r.scalars, AmountKey, amount)
}

// Get - recorded deposit, zero if none
func (r *Registry) Get(identity *account.Account) uint64 {
	n, _ := r.trx.GetN(r.deposits, []byte(identity.String()))
	return n
}

// DepositIfNeeded - take the deposit once per registration
//
// the funding purse must belong to the identity and hold exactly the
// required amount, all of which moves to the collection purse; a
// required amount of zero disables the deposit
func (r *Registry) DepositIfNeeded(identity *account.Account, funding *ledger.Purse) error {
	if 0 != r.Get(identity) {
		return nil
	}

	amount := r.DepositAmount()
	if 0 == amount {
		return nil
	}
	if nil == funding {
		return fault.PurseIsNone
	}
	if !r.ledger.IsOwner(*funding, identity) {
		return fault.PurseAccessDenied
	}
	if r.ledger.Balance(*funding) != amount {
		return fault.IncorrectDepositAmount
	}

	err := r.ledger.Transfer(*funding, ledger.CollectionPurse, amount)
	if nil != err {
		return err
	}
	r.trx.PutN(r.deposits, []byte(identity.String()), amount)
	return nil
}

// Withdraw - return the recorded deposit to the identity's main purse
func (r *Registry) Withdraw(identity *account.Account) error {
	amount := r.Get(identity)
	if 0 == amount {
		return fault.NoDeposit
	}

	err := r.ledger.Transfer(ledger.CollectionPurse, ledger.MainPurse(identity), amount)
	if nil != err {
		return err
	}
	r.trx.PutN(r.deposits, []byte(identity.String()), 0)
	return nil
}
