// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accountinfod/chain"
	"github.com/bitmark-inc/accountinfod/counter"
	"github.com/bitmark-inc/accountinfod/fixtures"
	"github.com/bitmark-inc/accountinfod/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	now := time.Now().Add(-time.Minute)
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		chain.Testing,
		&c,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
