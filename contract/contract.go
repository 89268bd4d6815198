// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the registry entry points
//
// each entry point runs alone inside a single storage transaction which
// is committed only if every step succeeds
package contract

import (
	"sync"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/admins"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/deposits"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/storage"
	"github.com/bitmark-inc/accountinfod/urls"
	"github.com/bitmark-inc/logger"
)

// Name - the frame name of the registry in a call stack
const Name = "accountinfo"

// scalar keys
var (
	installedKey  = []byte("installed")
	burnAmountKey = []byte("burn_amount")
)

// Configuration - values fixed at install time
type Configuration struct {
	DepositAmount uint64
	BurnAmount    uint64
	Allocations   map[string]uint64
}

// Registry - the entry points
type Registry interface {
	Install(callstack.Stack, *Configuration) error

	SetURL(callstack.Stack, string, *ledger.Purse) error
	GetURL(*account.Account) (string, error)
	DeleteURL(callstack.Stack) error
	SetURLForAccount(callstack.Stack, *account.Account, string) error
	DeleteURLForAccount(callstack.Stack, *account.Account) error
	AddAdmin(callstack.Stack, *account.Account) error
	DisableAdmin(callstack.Stack, *account.Account) error
	SetDepositAmount(callstack.Stack, uint64) error
	CreatePurse(callstack.Stack, uint64) (ledger.Purse, error)

	IsAdmin(*account.Account) (bool, error)
	Deposit(*account.Account) (uint64, error)
	Balance(ledger.Purse) (uint64, error)
	Status() (*Status, error)
}

type registryData struct {
	sync.Mutex
	log *logger.L
}

// New - registry over the opened storage pools
func New(log *logger.L) Registry {
	return &registryData{
		log: log,
	}
}

// the per call view of all pools
type state struct {
	trx      storage.Transaction
	ledger   ledger.Ledger
	admins   *admins.Registry
	urls     *urls.Registry
	deposits *deposits.Registry
}

func newState(trx storage.Transaction) *state {
	l := ledger.New(trx, storage.Pool.Balances, storage.Pool.PurseOwners)
	return &state{
		trx:      trx,
		ledger:   l,
		admins:   admins.New(trx, storage.Pool.Admins, storage.Pool.Scalars),
		urls:     urls.New(trx, storage.Pool.URLs),
		deposits: deposits.New(trx, storage.Pool.Deposits, storage.Pool.Scalars, l),
	}
}

func (s *state) installed() bool {
	return s.trx.Has(storage.Pool.Scalars, installedKey)
}

func (s *state) burnAmount() uint64 {
	n, _ := s.trx.GetN(storage.Pool.Scalars, burnAmountKey)
	return n
}

// run one entry point, committing only on success
func (r *registryData) execute(operation string, install bool, f func(*state) error) error {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		r.log.Errorf("%s: begin transaction error: %s", operation, err)
		return err
	}

	s := newState(trx)
	switch {
	case install && s.installed():
		err = fault.AlreadyInstalled
	case !install && !s.installed():
		err = fault.NotInstalled
	default:
		err = f(s)
	}

	if nil != err {
		trx.Abort()
		r.log.Warnf("%s: abort code: %d  error: %s", operation, fault.AbortCode(err), err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("%s: commit error: %s", operation, err)
		return err
	}
	r.log.Debugf("%s: committed", operation)
	return nil
}

// run a read only query, the transaction is always discarded
func (r *registryData) query(f func(*state) error) error {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	s := newState(trx)
	if !s.installed() {
		return fault.NotInstalled
	}
	return f(s)
}

// Install - set up an empty registry
//
// the deployer becomes the only admin and the genesis allocations are
// credited to their main purses
func (r *registryData) Install(stack callstack.Stack, configuration *Configuration) error {
	if nil == configuration {
		return fault.ConfigurationIsMissing
	}

	deployer, err := stack.Deployer()
	if nil != err {
		return err
	}

	return r.execute("install", true, func(s *state) error {
		for name, amount := range configuration.Allocations {
			a, err := account.FromBase58(name)
			if nil != err {
				return fault.CannotDecodeAccount
			}
			err = s.ledger.Credit(ledger.MainPurse(a), amount)
			if nil != err {
				return err
			}
		}

		s.admins.Install(deployer)
		s.deposits.SetDepositAmount(configuration.DepositAmount)
		s.trx.PutN(storage.Pool.Scalars, burnAmountKey, configuration.BurnAmount)
		s.trx.Put(storage.Pool.Scalars, installedKey, []byte{1})
		r.log.Infof("installed by: %s", deployer)
		return nil
	})
}
