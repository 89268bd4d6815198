// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"strconv"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/rpc/registry"
)

func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" request", arguments)

	err := client.client.Call("Registry."+method, arguments, reply)
	if nil != err {
		return err
	}

	client.printJson(method+" reply", reply)
	return nil
}

func (client *Client) checkKey(key *account.PrivateKey) error {
	if nil == key {
		return fault.NotPrivateKey
	}
	if key.Test != client.testnet {
		return fault.InvalidChain
	}
	return nil
}

// SetURL - publish the url for the key's account, an empty purse
// means no funding is offered
func (client *Client) SetURL(key *account.PrivateKey, url string, purse ledger.Purse) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.SetURLArguments{
		Authorisation: registry.Sign(key, "SetURL", url, string(purse)),
		URL:           url,
		Purse:         string(purse),
	}
	var reply registry.EmptyReply
	return client.call("SetURL", &arguments, &reply)
}

// GetURL - public lookup of an account's url
func (client *Client) GetURL(identity *account.Account) (string, error) {
	arguments := registry.GetURLArguments{
		Identity: identity,
	}
	var reply registry.GetURLReply
	if err := client.call("GetURL", &arguments, &reply); nil != err {
		return "", err
	}
	return reply.URL, nil
}

// DeleteURL - remove the key's own url
func (client *Client) DeleteURL(key *account.PrivateKey) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.DeleteURLArguments{
		Authorisation: registry.Sign(key, "DeleteURL"),
	}
	var reply registry.EmptyReply
	return client.call("DeleteURL", &arguments, &reply)
}

// SetURLForAccount - admin override of another account's url
func (client *Client) SetURLForAccount(key *account.PrivateKey, identity *account.Account, url string) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.AccountURLArguments{
		Authorisation: registry.Sign(key, "SetURLForAccount", identity.String(), url),
		Identity:      identity,
		URL:           url,
	}
	var reply registry.EmptyReply
	return client.call("SetURLForAccount", &arguments, &reply)
}

// DeleteURLForAccount - admin removal of another account's url
func (client *Client) DeleteURLForAccount(key *account.PrivateKey, identity *account.Account) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.AccountURLArguments{
		Authorisation: registry.Sign(key, "DeleteURLForAccount", identity.String()),
		Identity:      identity,
	}
	var reply registry.EmptyReply
	return client.call("DeleteURLForAccount", &arguments, &reply)
}

// AddAdmin - grant admin rights
func (client *Client) AddAdmin(key *account.PrivateKey, identity *account.Account) error {
	return client.admin("AddAdmin", key, identity)
}

// DisableAdmin - revoke admin rights
func (client *Client) DisableAdmin(key *account.PrivateKey, identity *account.Account) error {
	return client.admin("DisableAdmin", key, identity)
}

func (client *Client) admin(method string, key *account.PrivateKey, identity *account.Account) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.AdminArguments{
		Authorisation: registry.Sign(key, method, identity.String()),
		Identity:      identity,
	}
	var reply registry.EmptyReply
	return client.call(method, &arguments, &reply)
}

// SetDepositAmount - change the amount required from new registrations
func (client *Client) SetDepositAmount(key *account.PrivateKey, amount uint64) error {
	if err := client.checkKey(key); nil != err {
		return err
	}

	arguments := registry.AmountArguments{
		Authorisation: registry.Sign(key, "SetDepositAmount", strconv.FormatUint(amount, 10)),
		Amount:        amount,
	}
	var reply registry.EmptyReply
	return client.call("SetDepositAmount", &arguments, &reply)
}

// CreatePurse - move an amount from the key's main purse into a new purse
func (client *Client) CreatePurse(key *account.PrivateKey, amount uint64) (ledger.Purse, error) {
	if err := client.checkKey(key); nil != err {
		return "", err
	}

	arguments := registry.AmountArguments{
		Authorisation: registry.Sign(key, "CreatePurse", strconv.FormatUint(amount, 10)),
		Amount:        amount,
	}
	var reply registry.CreatePurseReply
	if err := client.call("CreatePurse", &arguments, &reply); nil != err {
		return "", err
	}
	return reply.Purse, nil
}

// IsAdmin - check admin rights of an account
func (client *Client) IsAdmin(identity *account.Account) (bool, error) {
	arguments := registry.IsAdminArguments{
		Identity: identity,
	}
	var reply registry.IsAdminReply
	if err := client.call("IsAdmin", &arguments, &reply); nil != err {
		return false, err
	}
	return reply.Admin, nil
}

// Deposit - amount held in escrow for an account
func (client *Client) Deposit(identity *account.Account) (uint64, error) {
	arguments := registry.DepositArguments{
		Identity: identity,
	}
	var reply registry.DepositReply
	if err := client.call("Deposit", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Amount, nil
}

// Balance - tokens held by a purse
func (client *Client) Balance(purse ledger.Purse) (*registry.BalanceReply, error) {
	arguments := registry.BalanceArguments{
		Purse: string(purse),
	}
	var reply registry.BalanceReply
	if err := client.call("Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Status - registry settings and admins
func (client *Client) Status() (*registry.StatusReply, error) {
	var reply registry.StatusReply
	if err := client.call("Status", &registry.StatusArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
