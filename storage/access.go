// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/accountinfod/fault"
)

// Access - batched access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - Access backed by a LevelDB batch and a write cache
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and end the transaction
//
// the transaction ends even if the write fails
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.Abort()
	return err
}

func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	op, val, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	op, _, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard all pending writes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
