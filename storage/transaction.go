// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - all-or-nothing group of writes across pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// TransactionData - Transaction over a single database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	t.access.Put(h.PrefixKey(key), value)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(h, key, buffer)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	t.access.Delete(h.PrefixKey(key))
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
