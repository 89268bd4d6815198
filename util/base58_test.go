// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/util"
)

func TestBase58(t *testing.T) {
	b := []byte{0x00, 0x01, 0x02, 0xfe, 0xff}
	s := util.ToBase58(b)
	assert.Equal(t, b, util.FromBase58(s), "wrong round trip")

	assert.Equal(t, "2g", util.ToBase58([]byte{'a'}), "wrong encoding")
	assert.Equal(t, []byte{}, util.FromBase58("0OIl"), "invalid characters should decode empty")
}
