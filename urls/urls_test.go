// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package urls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/fixtures"
	"github.com/bitmark-inc/accountinfod/storage"
	"github.com/bitmark-inc/accountinfod/urls"
)

func newRegistry(t *testing.T) (*urls.Registry, storage.Transaction) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return urls.New(trx, storage.Pool.URLs), trx
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"http://localhost:80", true},
		{"https://127.0.0.1:90", true},
		{"https://", true},
		{"ftp://x", false},
		{"HTTP://upper.example.com", false},
		{"Https://mixed.example.com", false},
		{"http:/missing.example.com", false},
		{" https://leading-space.example.com", false},
		{"", false},
	}
	for i, item := range tests {
		assert.Equal(t, item.valid, urls.IsValid(item.url), "%d: wrong result for: %q", i, item.url)
	}
}

func TestSetGetDelete(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, trx := newRegistry(t)
	defer trx.Abort()

	id := fixtures.Account(1)

	_, ok := r.Get(id)
	assert.False(t, ok, "absent entry found")
	assert.False(t, r.IsRegistered(id), "absent entry registered")

	assert.Equal(t, fault.BadURLFormat, r.Set(id, "ftp://x"), "bad url accepted")
	_, ok = r.Get(id)
	assert.False(t, ok, "bad url written")

	assert.Nil(t, r.Set(id, "https://a"), "set error")
	url, ok := r.Get(id)
	assert.True(t, ok, "entry not found")
	assert.Equal(t, "https://a", url, "wrong url")

	assert.Nil(t, r.Set(id, "http://b"), "overwrite error")
	url, _ = r.Get(id)
	assert.Equal(t, "http://b", url, "not overwritten")
	assert.True(t, r.IsRegistered(id), "not registered")

	r.Delete(id)
	url, ok = r.Get(id)
	assert.True(t, ok, "tombstone missing")
	assert.Equal(t, "", url, "tombstone not empty")
	assert.False(t, r.IsRegistered(id), "tombstone registered")

	// deleting again is harmless
	r.Delete(id)
	url, ok = r.Get(id)
	assert.True(t, ok, "tombstone missing after second delete")
	assert.Equal(t, "", url, "tombstone changed")
}

func TestDeleteWithoutEntry(t *testing.T) {
	defer fixtures.SetupTestStorage()()

	r, trx := newRegistry(t)
	id := fixtures.Account(2)

	r.Delete(id)
	assert.Nil(t, trx.Commit(), "commit error")

	assert.True(t, storage.Pool.URLs.Has([]byte(id.String())), "tombstone not committed")
	assert.Equal(t, 0, len(storage.Pool.URLs.Get([]byte(id.String()))), "tombstone not empty")
}
