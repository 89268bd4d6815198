// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open transaction
//
// Get returns the operation, the value and whether the key has a
// pending write at all
type Cache interface {
	Get(string) (int, []byte, bool)
	Set(int, string, []byte)
	Clear()
}

// cached operations
const (
	dbPut = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries live until the transaction ends
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) (int, []byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return dbPut, nil, false
	}

	data := obj.(cacheData)
	return data.op, data.value, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
