// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package urls - identity to published URL mapping
//
// a deleted entry is stored as the empty string
package urls

import (
	"strings"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/storage"
)

// accepted scheme prefixes, case sensitive
var schemes = []string{"http://", "https://"}

// IsValid - check the scheme prefix only
func IsValid(url string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(url, s) {
			return true
		}
	}
	return false
}

// Registry - url operations inside one storage transaction
type Registry struct {
	trx  storage.Transaction
	urls storage.Handle
}

// New - url registry over a transaction
func New(trx storage.Transaction, urls storage.Handle) *Registry {
	return &Registry{
		trx:  trx,
		urls: urls,
	}
}

// Set - overwrite the url of an identity
func (r *Registry) Set(identity *account.Account, url string) error {
	if !IsValid(url) {
		return fault.BadURLFormat
	}
	r.trx.Put(r.urls, []byte(identity.String()), []byte(url))
	return nil
}

// Get - the stored value and whether an entry exists
//
// a deleted entry gives "", true
func (r *Registry) Get(identity *account.Account) (string, bool) {
	if !r.trx.Has(r.urls, []byte(identity.String())) {
		return "", false
	}
	return string(r.trx.Get(r.urls, []byte(identity.String()))), true
}

// Delete - write the empty string
func (r *Registry) Delete(identity *account.Account) {
	r.trx.Put(r.urls, []byte(identity.String()), []byte{})
}

// IsRegistered - an entry exists and is not deleted
func (r *Registry) IsRegistered(identity *account.Account) bool {
	url, ok := r.Get(identity)
	return ok && "" != url
}
