// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - read access to one pool plus the key mapping used by
// Transaction for writes
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	PrefixKey([]byte) []byte
	Map(func(key []byte, value []byte) error) error
}

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// PrefixKey - prepend the prefix onto the key
func (p *PoolHandle) PrefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// pending writes of the open transaction are visible
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.PrefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.PrefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// Map - run a function on all committed elements of the pool
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
	iter := p.dataAccess.Iterator(&maxRange)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// Elements - all committed elements of a pool in key order
func Elements(h Handle) ([]Element, error) {
	elements := make([]Element, 0)
	err := h.Map(func(key []byte, value []byte) error {
		elements = append(elements, Element{Key: key, Value: value})
		return nil
	})
	return elements, err
}
