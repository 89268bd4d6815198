// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/storage"
)

func newLedger(t *testing.T) (ledger.Ledger, storage.Transaction) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return ledger.New(trx, storage.Pool.Balances, storage.Pool.PurseOwners), trx
}

func TestTransfer(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	l, trx := newLedger(t)
	defer trx.Abort()

	a := ledger.MainPurse(fixtures.Account(1))

	assert.Equal(t, uint64(0), l.Balance(a), "unknown purse not empty")
	assert.Nil(t, l.Credit(a, 100), "credit error")

	err := l.Transfer(a, ledger.CollectionPurse, 101)
	assert.Equal(t, fault.InsufficientFunds, err, "overdraft accepted")
	assert.Equal(t, uint64(100), l.Balance(a), "failed transfer changed balance")

	err = l.Transfer(a, ledger.CollectionPurse, 60)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, uint64(40), l.Balance(a), "wrong source balance")
	assert.Equal(t, uint64(60), l.Balance(ledger.CollectionPurse), "wrong destination balance")

	err = l.Transfer(a, a, 40)
	assert.Nil(t, err, "self transfer error")
	assert.Equal(t, uint64(40), l.Balance(a), "self transfer changed balance")

	err = l.Burn(a, 40)
	assert.Nil(t, err, "burn error")
	assert.Equal(t, uint64(0), l.Balance(a), "burn did not debit")
	assert.Equal(t, uint64(40), l.Balance(ledger.BurnPurse), "burn did not credit sink")
}

func TestOverflow(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	l, trx := newLedger(t)
	defer trx.Abort()

	a := ledger.MainPurse(fixtures.Account(1))
	b := ledger.MainPurse(fixtures.Account(2))

	assert.Nil(t, l.Credit(a, math.MaxUint64), "credit error")
	assert.Equal(t, fault.AmountOverflow, l.Credit(a, 1), "credit overflow accepted")

	assert.Nil(t, l.Credit(b, 1), "credit error")
	assert.Equal(t, fault.AmountOverflow, l.Transfer(a, b, math.MaxUint64), "transfer overflow accepted")
	assert.Equal(t, uint64(1), l.Balance(b), "overflowed transfer changed balance")
}

func TestCreatePurse(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	l, trx := newLedger(t)
	defer trx.Abort()

	owner := fixtures.Account(1)
	other := fixtures.Account(2)
	main := ledger.MainPurse(owner)

	_, err := l.CreatePurse(owner, 10)
	assert.Equal(t, fault.InsufficientFunds, err, "unfunded purse created")

	_ = l.Credit(main, 25)
	p, err := l.CreatePurse(owner, 10)
	assert.Nil(t, err, "create purse error")
	assert.True(t, strings.HasPrefix(string(p), "purse:"), "wrong purse name: %s", p)
	assert.Equal(t, uint64(10), l.Balance(p), "wrong purse balance")
	assert.Equal(t, uint64(15), l.Balance(main), "wrong main balance")

	assert.True(t, l.IsOwner(p, owner), "owner not recognised")
	assert.True(t, l.IsOwner(main, owner), "main purse not owned")
	assert.False(t, l.IsOwner(p, other), "other account owns purse")
	assert.False(t, l.IsOwner(ledger.CollectionPurse, owner), "collection purse owned")
	assert.False(t, l.IsOwner(p, nil), "nil account owns purse")

	parsed, err := ledger.ParsePurse(string(p))
	assert.Nil(t, err, "parse purse error")
	assert.Equal(t, p, parsed, "wrong parsed purse")
}

func TestParsePurse(t *testing.T) {
	main := ledger.MainPurse(fixtures.Account(3))

	for _, s := range []string{"collection", "burn", string(main)} {
		p, err := ledger.ParsePurse(s)
		assert.Nil(t, err, "valid purse: %q", s)
		assert.Equal(t, ledger.Purse(s), p, "wrong purse: %q", s)
	}

	for _, s := range []string{"", "wallet", "account:xyz", "purse:not-a-uuid"} {
		_, err := ledger.ParsePurse(s)
		assert.Equal(t, fault.InvalidPurse, err, "invalid purse accepted: %q", s)
	}
}
