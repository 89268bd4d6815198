// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - native token balances held in purses
//
// every purse is a key in the balances pool; temporary purses also
// record their owner so that only the owner can spend them
package ledger

import (
	"strings"

	uuid "github.com/hashicorp/go-uuid"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/storage"
)

// Purse - name of a ledger account
type Purse string

// fixed purses
const (
	CollectionPurse Purse = "collection"
	BurnPurse       Purse = "burn"
)

// purse name prefixes
const (
	mainPrefix      = "account:"
	temporaryPrefix = "purse:"
)

// MainPurse - the purse an account is refunded into
func MainPurse(a *account.Account) Purse {
	return Purse(mainPrefix + a.String())
}

// ParsePurse - validate a purse name received from a client
func ParsePurse(s string) (Purse, error) {
	switch {
	case Purse(s) == CollectionPurse, Purse(s) == BurnPurse:
		return Purse(s), nil
	case strings.HasPrefix(s, mainPrefix):
		if _, err := account.FromBase58(s[len(mainPrefix):]); nil != err {
			return "", fault.InvalidPurse
		}
		return Purse(s), nil
	case strings.HasPrefix(s, temporaryPrefix):
		if _, err := uuid.ParseUUID(s[len(temporaryPrefix):]); nil != err {
			return "", fault.InvalidPurse
		}
		return Purse(s), nil
	default:
		return "", fault.InvalidPurse
	}
}

// Ledger - token movements inside one storage transaction
type Ledger interface {
	Balance(Purse) uint64
	Burn(Purse, uint64) error
	CreatePurse(*account.Account, uint64) (Purse, error)
	Credit(Purse, uint64) error
	IsOwner(Purse, *account.Account) bool
	Transfer(Purse, Purse, uint64) error
}

type ledgerData struct {
	trx         storage.Transaction
	balances    storage.Handle
	purseOwners storage.Handle
}

// New - ledger view over a transaction
func New(trx storage.Transaction, balances storage.Handle, purseOwners storage.Handle) Ledger {
	return &ledgerData{
		trx:         trx,
		balances:    balances,
		purseOwners: purseOwners,
	}
}

// Balance - zero for an unknown purse
func (l *ledgerData) Balance(p Purse) uint64 {
	n, _ := l.trx.GetN(l.balances, []byte(p))
	return n
}

// Transfer - move an amount between purses
//
// nothing is written unless both sides can be updated
func (l *ledgerData) Transfer(from Purse, to Purse, amount uint64) error {
	fromBalance := l.Balance(from)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}
	if from == to || 0 == amount {
		return nil
	}

	toBalance := l.Balance(to)
	if toBalance+amount < toBalance {
		return fault.AmountOverflow
	}

	l.trx.PutN(l.balances, []byte(from), fromBalance-amount)
	l.trx.PutN(l.balances, []byte(to), toBalance+amount)
	return nil
}

// Credit - create tokens in a purse
func (l *ledgerData) Credit(p Purse, amount uint64) error {
	balance := l.Balance(p)
	if balance+amount < balance {
		return fault.AmountOverflow
	}
	l.trx.PutN(l.balances, []byte(p), balance+amount)
	return nil
}

// Burn - move tokens to the burn purse, which is never spent
func (l *ledgerData) Burn(from Purse, amount uint64) error {
	return l.Transfer(from, BurnPurse, amount)
}

// CreatePurse - new temporary purse funded from the owner's main purse
func (l *ledgerData) CreatePurse(owner *account.Account, amount uint64) (Purse, error) {
	id, err := uuid.GenerateUUID()
	if nil != err {
		return "", err
	}
	p := Purse(temporaryPrefix + id)

	err = l.Transfer(MainPurse(owner), p, amount)
	if nil != err {
		return "", err
	}

	l.trx.Put(l.purseOwners, []byte(p), []byte(owner.String()))
	return p, nil
}

// IsOwner - main purse of the account or a temporary purse it created
func (l *ledgerData) IsOwner(p Purse, a *account.Account) bool {
	if nil == a {
		return false
	}
	if p == MainPurse(a) {
		return true
	}
	owner := l.trx.Get(l.purseOwners, []byte(p))
	return nil != owner && string(owner) == a.String()
}
