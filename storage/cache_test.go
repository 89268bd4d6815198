// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetAndGet(t *testing.T) {
	c := newCache()

	_, _, found := c.Get("missing")
	assert.False(t, found, "missing key found")

	c.Set(dbPut, "key", []byte("value"))
	op, value, found := c.Get("key")
	assert.True(t, found, "key not found")
	assert.Equal(t, dbPut, op, "wrong operation")
	assert.Equal(t, []byte("value"), value, "wrong value")

	c.Set(dbDelete, "key", nil)
	op, _, found = c.Get("key")
	assert.True(t, found, "delete not recorded")
	assert.Equal(t, dbDelete, op, "wrong operation")

	c.Clear()
	_, _, found = c.Get("key")
	assert.False(t, found, "clear did not remove key")
}
