// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/contract"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/ledger"
	"github.com/bitmark-inc/accountinfod/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100

	// accepted distance between request and node clocks
	timestampWindow = 5 * time.Minute

	// frame name for requests that carry no signature
	forwarderName = "rpc-forwarder"
)

// Registry - type for RPC calls
type Registry struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract contract.Registry
	Testing  bool
}

// New - create the registry RPC service
func New(log *logger.L, c contract.Registry, testing bool) *Registry {
	return &Registry{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Contract: c,
		Testing:  testing,
	}
}

// Authorisation - signed caller identity carried by mutating requests
type Authorisation struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp int64             `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes covered by an authorisation signature
func Message(method string, timestamp int64, fields ...string) []byte {
	parts := append([]string{method, strconv.FormatInt(timestamp, 10)}, fields...)
	return []byte(strings.Join(parts, "|"))
}

// Sign - fill in an authorisation for a request made now
func Sign(key *account.PrivateKey, method string, fields ...string) Authorisation {
	timestamp := time.Now().Unix()
	return Authorisation{
		Caller:    key.Account(),
		Timestamp: timestamp,
		Signature: key.Sign(Message(method, timestamp, fields...)),
	}
}

// check that an account belongs to the chain this node runs
func (r *Registry) checkAccount(a *account.Account) error {
	if nil == a || nil == a.AccountInterface {
		return fault.AccountIsRequired
	}
	if a.IsTesting() != r.Testing {
		return fault.InvalidChain
	}
	return nil
}

// build the call stack for a request
//
// an unsigned request is treated as forwarded by another contract, so
// the registry sees no account in the calling frame
func (r *Registry) stack(method string, auth *Authorisation, fields ...string) (callstack.Stack, error) {
	err := r.checkAccount(auth.Caller)
	if nil != err {
		return nil, err
	}

	if 0 == len(auth.Signature) {
		return callstack.FromContract(auth.Caller, forwarderName, contract.Name), nil
	}

	delta := time.Since(time.Unix(auth.Timestamp, 0))
	if delta < -timestampWindow || delta > timestampWindow {
		return nil, fault.ExpiredRequest
	}

	err = auth.Caller.CheckSignature(Message(method, auth.Timestamp, fields...), auth.Signature)
	if nil != err {
		return nil, fault.InvalidSignature
	}

	return callstack.New(auth.Caller, contract.Name), nil
}

func amountString(amount uint64) string {
	return strconv.FormatUint(amount, 10)
}

// ---

// EmptyReply - reply for calls returning nothing
type EmptyReply struct{}

// SetURLArguments - arguments for set url
type SetURLArguments struct {
	Authorisation
	URL   string `json:"url"`
	Purse string `json:"purse"`
}

// SetURL - publish the caller's url, optionally funding the deposit
func (r *Registry) SetURL(arguments *SetURLArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("SetURL", &arguments.Authorisation, arguments.URL, arguments.Purse)
	if nil != err {
		return err
	}

	var funding *ledger.Purse
	if "" != arguments.Purse {
		p, err := ledger.ParsePurse(arguments.Purse)
		if nil != err {
			return err
		}
		funding = &p
	}

	r.Log.Infof("SetURL: caller: %s  url: %q", arguments.Caller, arguments.URL)
	return r.Contract.SetURL(stack, arguments.URL, funding)
}

// ---

// GetURLArguments - arguments for get url
type GetURLArguments struct {
	Identity *account.Account `json:"identity"`
}

// GetURLReply - result of get url
type GetURLReply struct {
	URL string `json:"url"`
}

// GetURL - public lookup
func (r *Registry) GetURL(arguments *GetURLArguments, reply *GetURLReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.checkAccount(arguments.Identity); nil != err {
		return err
	}

	url, err := r.Contract.GetURL(arguments.Identity)
	if nil != err {
		return err
	}
	reply.URL = url
	return nil
}

// ---

// DeleteURLArguments - arguments for delete url
type DeleteURLArguments struct {
	Authorisation
}

// DeleteURL - remove the caller's url
func (r *Registry) DeleteURL(arguments *DeleteURLArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("DeleteURL", &arguments.Authorisation)
	if nil != err {
		return err
	}

	r.Log.Infof("DeleteURL: caller: %s", arguments.Caller)
	return r.Contract.DeleteURL(stack)
}

// ---

// AccountURLArguments - arguments for the admin url calls
type AccountURLArguments struct {
	Authorisation
	Identity *account.Account `json:"identity"`
	URL      string           `json:"url"`
}

// SetURLForAccount - admin override
func (r *Registry) SetURLForAccount(arguments *AccountURLArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("SetURLForAccount", &arguments.Authorisation, identityString(arguments.Identity), arguments.URL)
	if nil != err {
		return err
	}

	r.Log.Infof("SetURLForAccount: caller: %s  identity: %s  url: %q", arguments.Caller, identityString(arguments.Identity), arguments.URL)
	return r.Contract.SetURLForAccount(stack, arguments.Identity, arguments.URL)
}

// DeleteURLForAccount - admin removal
func (r *Registry) DeleteURLForAccount(arguments *AccountURLArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("DeleteURLForAccount", &arguments.Authorisation, identityString(arguments.Identity))
	if nil != err {
		return err
	}

	r.Log.Infof("DeleteURLForAccount: caller: %s  identity: %s", arguments.Caller, identityString(arguments.Identity))
	return r.Contract.DeleteURLForAccount(stack, arguments.Identity)
}

// ---

// AdminArguments - arguments for admin changes
type AdminArguments struct {
	Authorisation
	Identity *account.Account `json:"identity"`
}

// AddAdmin - activate an admin
func (r *Registry) AddAdmin(arguments *AdminArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("AddAdmin", &arguments.Authorisation, identityString(arguments.Identity))
	if nil != err {
		return err
	}

	r.Log.Infof("AddAdmin: caller: %s  identity: %s", arguments.Caller, identityString(arguments.Identity))
	return r.Contract.AddAdmin(stack, arguments.Identity)
}

// DisableAdmin - deactivate an admin
func (r *Registry) DisableAdmin(arguments *AdminArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("DisableAdmin", &arguments.Authorisation, identityString(arguments.Identity))
	if nil != err {
		return err
	}

	r.Log.Infof("DisableAdmin: caller: %s  identity: %s", arguments.Caller, identityString(arguments.Identity))
	return r.Contract.DisableAdmin(stack, arguments.Identity)
}

// ---

// AmountArguments - arguments carrying a token amount
type AmountArguments struct {
	Authorisation
	Amount uint64 `json:"amount,string"`
}

// SetDepositAmount - change the required deposit
func (r *Registry) SetDepositAmount(arguments *AmountArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("SetDepositAmount", &arguments.Authorisation, amountString(arguments.Amount))
	if nil != err {
		return err
	}

	r.Log.Infof("SetDepositAmount: caller: %s  amount: %d", arguments.Caller, arguments.Amount)
	return r.Contract.SetDepositAmount(stack, arguments.Amount)
}

// CreatePurseReply - result of create purse
type CreatePurseReply struct {
	Purse ledger.Purse `json:"purse"`
}

// CreatePurse - move an amount from the caller's main purse into a new purse
func (r *Registry) CreatePurse(arguments *AmountArguments, reply *CreatePurseReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	stack, err := r.stack("CreatePurse", &arguments.Authorisation, amountString(arguments.Amount))
	if nil != err {
		return err
	}

	purse, err := r.Contract.CreatePurse(stack, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Purse = purse
	return nil
}

// ---

// IsAdminArguments - arguments for is admin
type IsAdminArguments struct {
	Identity *account.Account `json:"identity"`
}

// IsAdminReply - result of is admin
type IsAdminReply struct {
	Admin bool `json:"admin"`
}

// IsAdmin - admin flag of any identity
func (r *Registry) IsAdmin(arguments *IsAdminArguments, reply *IsAdminReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.checkAccount(arguments.Identity); nil != err {
		return err
	}

	admin, err := r.Contract.IsAdmin(arguments.Identity)
	if nil != err {
		return err
	}
	reply.Admin = admin
	return nil
}

// ---

// DepositArguments - arguments for deposit
type DepositArguments struct {
	Identity *account.Account `json:"identity"`
}

// DepositReply - result of deposit
type DepositReply struct {
	Amount uint64 `json:"amount,string"`
}

// Deposit - amount held in escrow for any identity
func (r *Registry) Deposit(arguments *DepositArguments, reply *DepositReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.checkAccount(arguments.Identity); nil != err {
		return err
	}

	amount, err := r.Contract.Deposit(arguments.Identity)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}

// ---

// BalanceArguments - arguments for balance
type BalanceArguments struct {
	Purse string `json:"purse"`
}

// BalanceReply - result of balance
type BalanceReply struct {
	Purse   ledger.Purse `json:"purse"`
	Balance uint64       `json:"balance,string"`
}

// Balance - balance of any purse
func (r *Registry) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	purse, err := ledger.ParsePurse(arguments.Purse)
	if nil != err {
		return err
	}

	balance, err := r.Contract.Balance(purse)
	if nil != err {
		return err
	}
	reply.Purse = purse
	reply.Balance = balance
	return nil
}

// ---

// StatusArguments - empty arguments for status
type StatusArguments struct{}

// StatusReply - registry wide values
type StatusReply struct {
	contract.Status
}

// Status - counters, amounts and admin records
func (r *Registry) Status(_ *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	status, err := r.Contract.Status()
	if nil != err {
		return err
	}
	reply.Status = *status
	return nil
}

func identityString(a *account.Account) string {
	if nil == a || nil == a.AccountInterface {
		return ""
	}
	return a.String()
}
