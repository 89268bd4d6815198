// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admins_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/admins"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
	"github.com/bitmark-inc/accountinfod/storage"
	"github.com/bitmark-inc/accountinfod/storage/mocks"
)

func newRegistry(t *testing.T) (*admins.Registry, storage.Transaction) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return admins.New(trx, storage.Pool.Admins, storage.Pool.Scalars), trx
}

// count the active entries the slow way
func activeCount(t *testing.T) uint64 {
	entries, err := admins.List(storage.Pool.Admins)
	if nil != err {
		t.Fatalf("list error: %s", err)
	}
	n := uint64(0)
	for _, e := range entries {
		if e.Active {
			n += 1
		}
	}
	return n
}

func committedCount() uint64 {
	n, _ := storage.Pool.Scalars.GetN(admins.CountKey)
	return n
}

func TestInstall(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	a := fixtures.Account(1)

	r, trx := newRegistry(t)
	r.Install(a)
	assert.True(t, r.IsAdmin(a), "deployer not admin")
	assert.Equal(t, uint64(1), r.Count(), "wrong count")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, uint64(1), committedCount(), "wrong committed count")
	assert.Equal(t, uint64(1), activeCount(t), "wrong active entries")
}

func TestAddAndDisable(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	a := fixtures.Account(1)
	b := fixtures.Account(2)
	c := fixtures.Account(3)

	r, trx := newRegistry(t)
	r.Install(a)

	assert.False(t, r.IsAdmin(b), "never added identity is admin")
	assert.False(t, r.IsAdmin(nil), "nil identity is admin")

	assert.Nil(t, r.Add(b), "add error")
	assert.Equal(t, uint64(2), r.Count(), "wrong count after add")
	assert.Equal(t, fault.AdminExists, r.Add(b), "duplicate add accepted")
	assert.Equal(t, uint64(2), r.Count(), "failed add changed count")

	assert.Equal(t, fault.AdminDoesntExist, r.Disable(c), "disable of non admin accepted")

	assert.Nil(t, r.Disable(a), "disable error")
	assert.False(t, r.IsAdmin(a), "disabled identity still admin")
	assert.Equal(t, uint64(1), r.Count(), "wrong count after disable")

	// last admin
	assert.Equal(t, fault.AdminCountTooLow, r.Disable(b), "last admin disabled")
	// low count has priority over the target check
	assert.Equal(t, fault.AdminCountTooLow, r.Disable(c), "wrong error for non admin")
	assert.Equal(t, fault.AdminCountTooLow, r.Disable(a), "wrong error for disabled admin")

	// re-adding a disabled admin is a fresh add
	assert.Nil(t, r.Add(a), "re-add error")
	assert.True(t, r.IsAdmin(a), "re-added identity not admin")
	assert.Equal(t, uint64(2), r.Count(), "wrong count after re-add")

	assert.Nil(t, trx.Commit(), "commit error")
	assert.Equal(t, committedCount(), activeCount(t), "count drifted from entries")
}

func TestAssertCallerIsAdmin(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	a := fixtures.Account(1)
	b := fixtures.Account(2)

	r, trx := newRegistry(t)
	defer trx.Abort()
	r.Install(a)

	caller, err := r.AssertCallerIsAdmin(callstack.New(a, "registry"))
	assert.Nil(t, err, "admin rejected")
	assert.True(t, a.Equal(caller), "wrong caller")

	_, err = r.AssertCallerIsAdmin(callstack.New(b, "registry"))
	assert.Equal(t, fault.PermissionDenied, err, "non admin accepted")

	_, err = r.AssertCallerIsAdmin(callstack.FromContract(a, "proxy", "registry"))
	assert.Equal(t, fault.CallerIsNotAccount, err, "contract caller accepted")
}

// a sequence of adds and disables never lets the cached count drift
func TestCountMatchesEntries(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	ids := make([]*account.Account, 6)
	for i := range ids {
		ids[i] = fixtures.Account(byte(i + 1))
	}

	r, trx := newRegistry(t)
	r.Install(ids[0])
	assert.Nil(t, trx.Commit(), "commit error")

	steps := []struct {
		add bool
		id  int
	}{
		{true, 1}, {true, 2}, {false, 0}, {true, 2}, {false, 1},
		{false, 2}, {false, 3}, {true, 0}, {true, 4}, {false, 4},
		{false, 0}, {false, 2}, {true, 5}, {true, 1},
	}
	for i, s := range steps {
		r, trx = newRegistry(t)
		var err error
		if s.add {
			err = r.Add(ids[s.id])
		} else {
			err = r.Disable(ids[s.id])
		}
		if nil == err {
			assert.Nil(t, trx.Commit(), "%d: commit error", i)
		} else {
			trx.Abort()
		}
		n := committedCount()
		assert.Equal(t, activeCount(t), n, "%d: count drifted", i)
		assert.True(t, n >= 1, "%d: count below one", i)
	}
}

// the low count check must not look at the target entry
func TestDisableChecksCountFirst(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	adminPool := mocks.NewMockHandle(ctl)
	scalarPool := mocks.NewMockHandle(ctl)

	trx.EXPECT().GetN(scalarPool, admins.CountKey).Return(uint64(1), true).Times(1)

	r := admins.New(trx, adminPool, scalarPool)
	err := r.Disable(fixtures.Account(9))
	assert.Equal(t, fault.AdminCountTooLow, err, "wrong error")
}

func TestAddWritesEntryAndCount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	adminPool := mocks.NewMockHandle(ctl)
	scalarPool := mocks.NewMockHandle(ctl)

	id := fixtures.Account(7)
	key := []byte(id.String())

	gomock.InOrder(
		trx.EXPECT().Get(adminPool, key).Return(nil).Times(1),
		trx.EXPECT().Put(adminPool, key, []byte{0x01}).Times(1),
		trx.EXPECT().GetN(scalarPool, admins.CountKey).Return(uint64(3), true).Times(1),
		trx.EXPECT().PutN(scalarPool, admins.CountKey, uint64(4)).Times(1),
	)

	r := admins.New(trx, adminPool, scalarPool)
	assert.Nil(t, r.Add(id), "add error")
}
