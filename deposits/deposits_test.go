// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposits_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/deposits"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/ledger/mocks"
	"github.com/bitmark-inc/accountinfod/storage"
)

const required = 2000000000

func setup(t *testing.T) (*deposits.Registry, ledger.Ledger, storage.Transaction) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	l := ledger.New(trx, storage.Pool.Balances, storage.Pool.PurseOwners)
	r := deposits.New(trx, storage.Pool.Deposits, storage.Pool.Scalars, l)
	r.SetDepositAmount(required)
	return r, l, trx
}

func TestDepositAndWithdraw(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, l, trx := setup(t)
	defer trx.Abort()

	id := fixtures.Account(1)
	main := ledger.MainPurse(id)
	assert.Nil(t, l.Credit(main, 5*required), "credit error")

	funding, err := l.CreatePurse(id, required)
	assert.Nil(t, err, "create purse error")

	err = r.DepositIfNeeded(id, &funding)
	assert.Nil(t, err, "deposit error")
	assert.Equal(t, uint64(required), r.Get(id), "wrong recorded deposit")
	assert.Equal(t, uint64(required), l.Balance(ledger.CollectionPurse), "wrong collection balance")
	assert.Equal(t, uint64(0), l.Balance(funding), "funding not emptied")
	assert.Equal(t, uint64(4*required), l.Balance(main), "wrong main balance")

	err = r.Withdraw(id)
	assert.Nil(t, err, "withdraw error")
	assert.Equal(t, uint64(0), r.Get(id), "deposit not reset")
	assert.Equal(t, uint64(0), l.Balance(ledger.CollectionPurse), "collection not emptied")
	assert.Equal(t, uint64(5*required), l.Balance(main), "refund not received")

	assert.Equal(t, fault.NoDeposit, r.Withdraw(id), "second withdraw allowed")
}

func TestDepositChargedOnce(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, l, trx := setup(t)
	defer trx.Abort()

	id := fixtures.Account(2)
	assert.Nil(t, l.Credit(ledger.MainPurse(id), 3*required), "credit error")

	first, _ := l.CreatePurse(id, required)
	second, _ := l.CreatePurse(id, required)

	assert.Nil(t, r.DepositIfNeeded(id, &first), "first deposit error")
	assert.Nil(t, r.DepositIfNeeded(id, &second), "second deposit error")
	assert.Nil(t, r.DepositIfNeeded(id, nil), "deposit without purse after charge")

	assert.Equal(t, uint64(required), l.Balance(second), "second purse charged")
	assert.Equal(t, uint64(required), l.Balance(ledger.CollectionPurse), "charged twice")
}

func TestDepositFailures(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, l, trx := setup(t)
	defer trx.Abort()

	id := fixtures.Account(3)
	other := fixtures.Account(4)
	assert.Nil(t, l.Credit(ledger.MainPurse(id), 10*required), "credit error")
	assert.Nil(t, l.Credit(ledger.MainPurse(other), 10*required), "credit error")

	assert.Equal(t, fault.PurseIsNone, r.DepositIfNeeded(id, nil), "missing purse accepted")

	low, _ := l.CreatePurse(id, required-1)
	high, _ := l.CreatePurse(id, required+1)
	assert.Equal(t, fault.IncorrectDepositAmount, r.DepositIfNeeded(id, &low), "low balance accepted")
	assert.Equal(t, fault.IncorrectDepositAmount, r.DepositIfNeeded(id, &high), "high balance accepted")

	foreign, _ := l.CreatePurse(other, required)
	assert.Equal(t, fault.PurseAccessDenied, r.DepositIfNeeded(id, &foreign), "foreign purse accepted")

	assert.Equal(t, uint64(0), r.Get(id), "deposit recorded")
	assert.Equal(t, uint64(0), l.Balance(ledger.CollectionPurse), "collection credited")
}

func TestAmountChangeNotRetroactive(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, l, trx := setup(t)
	defer trx.Abort()

	id := fixtures.Account(5)
	main := ledger.MainPurse(id)
	assert.Nil(t, l.Credit(main, required), "credit error")
	assert.Nil(t, r.DepositIfNeeded(id, &main), "deposit from main purse error")

	r.SetDepositAmount(7)
	assert.Equal(t, uint64(7), r.DepositAmount(), "amount not changed")
	assert.Equal(t, uint64(required), r.Get(id), "recorded deposit resized")

	assert.Nil(t, r.Withdraw(id), "withdraw error")
	assert.Equal(t, uint64(required), l.Balance(main), "wrong refund")
}

func TestZeroAmountDisablesDeposit(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, l, trx := setup(t)
	defer trx.Abort()

	r.SetDepositAmount(0)

	id := fixtures.Account(8)
	assert.Nil(t, r.DepositIfNeeded(id, nil), "purse required for zero amount")
	assert.Equal(t, uint64(0), r.Get(id), "deposit recorded")
	assert.Equal(t, uint64(0), l.Balance(ledger.CollectionPurse), "collection credited")
	assert.Equal(t, fault.NoDeposit, r.Withdraw(id), "withdraw without deposit")
}

func TestDepositChecksBeforeTransfer(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	defer trx.Abort()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	r := deposits.New(trx, storage.Pool.Deposits, storage.Pool.Scalars, l)
	r.SetDepositAmount(100)

	id := fixtures.Account(6)
	funding := ledger.MainPurse(id)

	// no Transfer is expected
	gomock.InOrder(
		l.EXPECT().IsOwner(funding, id).Return(true).Times(1),
		l.EXPECT().Balance(funding).Return(uint64(99)).Times(1),
	)

	err = r.DepositIfNeeded(id, &funding)
	assert.Equal(t, fault.IncorrectDepositAmount, err, "wrong error")
}

func TestWithdrawTransfersRecordedAmount(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	defer trx.Abort()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	r := deposits.New(trx, storage.Pool.Deposits, storage.Pool.Scalars, l)
	r.SetDepositAmount(100)

	id := fixtures.Account(7)
	funding := ledger.MainPurse(id)

	gomock.InOrder(
		l.EXPECT().IsOwner(funding, id).Return(true).Times(1),
		l.EXPECT().Balance(funding).Return(uint64(100)).Times(1),
		l.EXPECT().Transfer(funding, ledger.CollectionPurse, uint64(100)).Return(nil).Times(1),
		l.EXPECT().Transfer(ledger.CollectionPurse, funding, uint64(100)).Return(nil).Times(1),
	)

	assert.Nil(t, r.DepositIfNeeded(id, &funding), "deposit error")
	r.SetDepositAmount(500)
	assert.Nil(t, r.Withdraw(id), "withdraw error")
	assert.Equal(t, uint64(0), r.Get(id), "deposit not reset")
}
