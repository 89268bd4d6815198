// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
)

// SetURL - publish the caller's url
//
// the first registration takes the deposit if one is not held and
// burns the configured amount from the caller's main purse
func (r *registryData) SetURL(stack callstack.Stack, url string, funding *ledger.Purse) error {
	return r.execute("set_url", false, func(s *state) error {
		caller, err := stack.Caller()
		if nil != err {
			return err
		}

		first := !s.urls.IsRegistered(caller)

		err = s.urls.Set(caller, url)
		if nil != err {
			return err
		}

		err = s.deposits.DepositIfNeeded(caller, funding)
		if nil != err {
			return err
		}

		burn := s.burnAmount()
		if first && burn > 0 {
			return s.ledger.Burn(ledger.MainPurse(caller), burn)
		}
		return nil
	})
}

// GetURL - the url of any identity, NotFound if none or deleted
func (r *registryData) GetURL(identity *account.Account) (string, error) {
	if nil == identity {
		return "", fault.AccountIsRequired
	}

	url := ""
	err := r.query(func(s *state) error {
		u, ok := s.urls.Get(identity)
		if !ok || "" == u {
			return fault.NotFound
		}
		url = u
		return nil
	})
	return url, err
}

// DeleteURL - remove the caller's url and refund any deposit
func (r *registryData) DeleteURL(stack callstack.Stack) error {
	return r.execute("delete_url", false, func(s *state) error {
		caller, err := stack.Caller()
		if nil != err {
			return err
		}
		return s.deleteURL(caller)
	})
}

func (s *state) deleteURL(identity *account.Account) error {
	s.urls.Delete(identity)
	if 0 == s.deposits.Get(identity) {
		return nil
	}
	return s.deposits.Withdraw(identity)
}

// SetURLForAccount - admin override of any identity's url
func (r *registryData) SetURLForAccount(stack callstack.Stack, identity *account.Account, url string) error {
	return r.execute("set_url_for_account", false, func(s *state) error {
		_, err := s.admins.AssertCallerIsAdmin(stack)
		if nil != err {
			return err
		}
		if nil == identity {
			return fault.AccountIsRequired
		}
		return s.urls.Set(identity, url)
	})
}

// DeleteURLForAccount - admin removal of any identity's url
func (r *registryData) DeleteURLForAccount(stack callstack.Stack, identity *account.Account) error {
	return r.execute("delete_url_for_account", false, func(s *state) error {
		_, err := s.admins.AssertCallerIsAdmin(stack)
		if nil != err {
			return err
		}
		if nil == identity {
			return fault.AccountIsRequired
		}
		return s.deleteURL(identity)
	})
}

// AddAdmin - activate another admin
func (r *registryData) AddAdmin(stack callstack.Stack, identity *account.Account) error {
	return r.execute("add_admin", false, func(s *state) error {
		_, err := s.admins.AssertCallerIsAdmin(stack)
		if nil != err {
			return err
		}
		if nil == identity {
			return fault.AccountIsRequired
		}
		return s.admins.Add(identity)
	})
}

// DisableAdmin - deactivate an admin, never the last one
func (r *registryData) DisableAdmin(stack callstack.Stack, identity *account.Account) error {
	return r.execute("disable_admin", false, func(s *state) error {
		_, err := s.admins.AssertCallerIsAdmin(stack)
		if nil != err {
			return err
		}
		if nil == identity {
			return fault.AccountIsRequired
		}
		return s.admins.Disable(identity)
	})
}

// SetDepositAmount - change the deposit required of new registrations
func (r *registryData) SetDepositAmount(stack callstack.Stack, amount uint64) error {
	return r.execute("set_deposit_amount", false, func(s *state) error {
		_, err := s.admins.AssertCallerIsAdmin(stack)
		if nil != err {
			return err
		}
		s.deposits.SetDepositAmount(amount)
		return nil
	})
}

// CreatePurse - fund a temporary purse from the caller's main purse
func (r *registryData) CreatePurse(stack callstack.Stack, amount uint64) (ledger.Purse, error) {
	purse := ledger.Purse("")
	err := r.execute("create_purse", false, func(s *state) error {
		caller, err := stack.Caller()
		if nil != err {
			return err
		}
		purse, err = s.ledger.CreatePurse(caller, amount)
		return err
	})
	if nil != err {
		return "", err
	}
	return purse, nil
}
